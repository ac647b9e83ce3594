package dbmysql

import (
	"time"
)

// Publication is the aggregate root row. Version backs optimistic concurrency.
type Publication struct {
	ID            string    `gorm:"primaryKey;size:36;column:id"`
	AuthorID      string    `gorm:"column:author_id;size:36;not null;index:idx_publications_author"`
	Content       string    `gorm:"column:content;type:text;not null"`
	Type          string    `gorm:"column:type;size:10;not null"`
	Visibility    string    `gorm:"column:visibility;size:10;not null;index:idx_publications_feed,priority:2"`
	LikesCount    int       `gorm:"column:likes_count;not null;default:0"`
	CommentsCount int       `gorm:"column:comments_count;not null;default:0"`
	IsActive      bool      `gorm:"column:is_active;not null;index:idx_publications_feed,priority:1"`
	Version       int64     `gorm:"column:version;not null;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`

	MediaItems []MediaItem `gorm:"foreignKey:PublicationID"`
	Comments   []Comment   `gorm:"foreignKey:PublicationID"`
}

func (Publication) TableName() string {
	return "publications"
}

type Comment struct {
	ID              string     `gorm:"primaryKey;size:36;column:id"`
	PublicationID   string     `gorm:"column:publication_id;size:36;not null;index"`
	AuthorID        string     `gorm:"column:author_id;size:36;not null"`
	Content         string     `gorm:"column:content;type:text;not null"`
	ParentCommentID *string    `gorm:"column:parent_comment_id;size:36;index"`
	Level           int        `gorm:"column:level;not null;default:0"`
	LikesCount      int        `gorm:"column:likes_count;not null;default:0"`
	IsActive        bool       `gorm:"column:is_active;not null"`
	IsEdited        bool       `gorm:"column:is_edited;not null"`
	EditedAt        *time.Time `gorm:"column:edited_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
