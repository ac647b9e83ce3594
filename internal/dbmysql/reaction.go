package dbmysql

import "time"

// Like enforces one row per (user, target) with a composite unique index.
type Like struct {
	ID           string    `gorm:"primaryKey;size:36;column:id"`
	UserID       string    `gorm:"column:user_id;size:36;not null;uniqueIndex:ux_likes_user_target,priority:1"`
	LikeableID   string    `gorm:"column:likeable_id;size:36;not null;uniqueIndex:ux_likes_user_target,priority:2;index:idx_likes_target,priority:1"`
	LikeableType string    `gorm:"column:likeable_type;size:20;not null;uniqueIndex:ux_likes_user_target,priority:3;index:idx_likes_target,priority:2"`
	Type         string    `gorm:"column:type;size:20;not null"` // reaction kind, "like"
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Like) TableName() string {
	return "likes"
}
