package dbmysql

import (
	"time"
)

// UserProfile is the read model used for people discovery.
type UserProfile struct {
	UserID      string    `gorm:"primaryKey;size:36;column:user_id" json:"user_id"`
	DisplayName string    `gorm:"column:display_name;size:100;not null;index" json:"display_name"`
	Bio         string    `gorm:"column:bio;type:text" json:"bio"`
	Location    string    `gorm:"column:location;size:100" json:"location"`
	AvatarURL   string    `gorm:"column:avatar_url;size:500" json:"avatar_url"`
	IsActive    bool      `gorm:"column:is_active;not null" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
