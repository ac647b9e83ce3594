package publication

import (
	"time"

	"socialfeed/internal/common"
)

// MaxCommentLevel caps reply depth. Deeper replies are stored at this level but keep
// their parent link.
const MaxCommentLevel = 5

type Type string

const (
	TypeText  Type = "text"
	TypeImage Type = "image"
	TypeVideo Type = "video"
	TypeMixed Type = "mixed"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeText, TypeImage, TypeVideo, TypeMixed:
		return true
	}
	return false
}

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityFriends Visibility = "friends"
)

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityFriends:
		return true
	}
	return false
}

type MediaItem struct {
	ID           string               `json:"id"`
	Type         common.MediaFileType `json:"type"`
	URL          string               `json:"url"`
	OriginalName string               `json:"original_name,omitempty"`
	Size         int64                `json:"size"`
	Order        int                  `json:"order"`
	Width        int                  `json:"width,omitempty"`
	Height       int                  `json:"height,omitempty"`
}

// Comment is owned by a Publication. Callers reach it only through the aggregate.
type Comment struct {
	ID              string     `json:"id"`
	PublicationID   string     `json:"publication_id"`
	AuthorID        string     `json:"author_id"`
	Text            string     `json:"text"`
	ParentCommentID *string    `json:"parent_comment_id,omitempty"`
	Level           int        `json:"level"`
	LikesCount      int        `json:"likes_count"`
	IsActive        bool       `json:"is_active"`
	IsEdited        bool       `json:"is_edited"`
	EditedAt        *time.Time `json:"edited_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (c *Comment) IncrementLikes() {
	c.LikesCount++
}

// DecrementLikes never goes below zero.
func (c *Comment) DecrementLikes() {
	if c.LikesCount > 0 {
		c.LikesCount--
	}
}

type CommentAddedEvent struct {
	CommentID       string    `json:"comment_id"`
	AuthorID        string    `json:"author_id"`
	PublicationID   string    `json:"publication_id"`
	ParentCommentID *string   `json:"parent_comment_id,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

type CommentDeletedEvent struct {
	CommentID     string    `json:"comment_id"`
	DeletedBy     string    `json:"deleted_by"`
	PublicationID string    `json:"publication_id"`
	Timestamp     time.Time `json:"timestamp"`
}
