package feed

import (
	"time"

	"socialfeed/internal/common"
	"socialfeed/internal/publication"
)

type CreatePublicationInput struct {
	AuthorID   string                  `json:"-"`
	Text       string                  `json:"text"`
	Type       publication.Type        `json:"type"`
	Visibility publication.Visibility  `json:"visibility"`
	MediaItems []publication.MediaItem `json:"media_items"`
}

type AddCommentInput struct {
	PublicationID   string  `json:"-"`
	AuthorID        string  `json:"-"`
	Text            string  `json:"text"`
	ParentCommentID *string `json:"parent_comment_id,omitempty"`
}

type FeedQuery struct {
	AuthorID string
	Page     common.Page
}

type PublicationView struct {
	ID              string                  `json:"id"`
	AuthorID        string                  `json:"author_id"`
	Author          *AuthorSummary          `json:"author,omitempty"`
	Text            string                  `json:"text"`
	Type            publication.Type        `json:"type"`
	Visibility      publication.Visibility  `json:"visibility"`
	LikesCount      int                     `json:"likes_count"`
	CommentsCount   int                     `json:"comments_count"`
	MediaItems      []publication.MediaItem `json:"media_items"`
	IsLikedByViewer bool                    `json:"is_liked_by_current_user"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type PublicationResult struct {
	Success     bool            `json:"success"`
	Publication PublicationView `json:"publication"`
	Crisis      bool            `json:"crisis"`
}

type FeedPage struct {
	Publications []PublicationView `json:"publications"`
	Total        int64             `json:"total"`
	Page         int               `json:"page"`
	Limit        int               `json:"limit"`
	Pages        int               `json:"pages"`
	HasMore      bool              `json:"has_more"`
}

type LikeResult struct {
	Success    bool   `json:"success"`
	TargetID   string `json:"target_id"`
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likes_count"`
}

// AddCommentResult carries the crisis flag as metadata; crisis content is never an error.
type AddCommentResult struct {
	Success       bool                          `json:"success"`
	Comment       publication.Comment           `json:"comment"`
	CommentsCount int                           `json:"comments_count"`
	Crisis        bool                          `json:"crisis"`
	Event         publication.CommentAddedEvent `json:"event"`
}

type CommentResult struct {
	Success bool                `json:"success"`
	Comment publication.Comment `json:"comment"`
	Crisis  bool                `json:"crisis"`
}

type DeleteCommentResult struct {
	Success       bool                            `json:"success"`
	CommentsCount int                             `json:"comments_count"`
	Event         publication.CommentDeletedEvent `json:"event"`
}

type CommentView struct {
	publication.Comment
	IsLikedByViewer bool `json:"is_liked_by_current_user"`
}

type CommentNode struct {
	CommentView
	Placeholder bool           `json:"placeholder,omitempty"`
	Replies     []*CommentNode `json:"replies"`
}

// CommentsResult fills Comments for flat listings and Tree for hierarchical ones.
type CommentsResult struct {
	Success       bool           `json:"success"`
	PublicationID string         `json:"publication_id"`
	Hierarchical  bool           `json:"hierarchical"`
	TotalComments int            `json:"total_comments"`
	CommentsCount int            `json:"comments_count"`
	Comments      []CommentView  `json:"comments,omitempty"`
	Tree          []*CommentNode `json:"tree,omitempty"`
}

type FlaggedItem struct {
	ID      string             `json:"id"`
	Kind    common.ContentKind `json:"kind"`
	Excerpt string             `json:"excerpt"`
	Reason  string             `json:"reason"`
}

type SweepReport struct {
	StartedAt           time.Time     `json:"started_at"`
	FinishedAt          time.Time     `json:"finished_at"`
	PublicationsScanned int           `json:"publications_scanned"`
	CommentsScanned     int           `json:"comments_scanned"`
	PublicationsRemoved int           `json:"publications_removed"`
	CommentsRemoved     int           `json:"comments_removed"`
	CrisisDetected      int           `json:"crisis_detected"`
	Flagged             []FlaggedItem `json:"flagged"`
}
