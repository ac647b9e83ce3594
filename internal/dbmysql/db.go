package dbmysql

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Models lists every table owned by the feed service.
func Models() []interface{} {
	return []interface{}{
		&Publication{},
		&Comment{},
		&MediaItem{},
		&Like{},
		&Relationship{},
		&UserProfile{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("✅ Database migration completed")
	return nil
}
