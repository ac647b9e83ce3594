// Package publication holds the publication aggregate: a publication, its comments and
// the counters derived from them. All comment and like mutations for a publication go
// through *Publication. It is not safe for concurrent use; repositories serialize
// writers with an optimistic version check.
package publication

import (
	"time"

	"socialfeed/internal/common"

	"github.com/google/uuid"
)

var (
	nowFunc = func() time.Time { return time.Now().UTC() }
	newID   = uuid.NewString
)

type Publication struct {
	id            string
	authorID      string
	text          string
	typ           Type
	visibility    Visibility
	likesCount    int
	commentsCount int
	mediaItems    []MediaItem
	comments      []*Comment
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
	version       int64
}

// State is the flat, persistable form of the aggregate.
type State struct {
	ID            string
	AuthorID      string
	Text          string
	Type          Type
	Visibility    Visibility
	LikesCount    int
	CommentsCount int
	MediaItems    []MediaItem
	Comments      []Comment
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

// New validates a publication draft. Moderation is the caller's job.
func New(authorID, text string, typ Type, visibility Visibility, media []MediaItem) (*Publication, error) {
	if err := common.RequireID("authorId", authorID); err != nil {
		return nil, err
	}
	text, err := common.RequireText("text", text)
	if err != nil {
		return nil, err
	}
	if typ == "" {
		typ = TypeText
	}
	if !typ.IsValid() {
		return nil, common.Validation("invalid publication type %q", typ)
	}
	if visibility == "" {
		visibility = VisibilityPublic
	}
	if !visibility.IsValid() {
		return nil, common.Validation("invalid visibility %q", visibility)
	}

	items := make([]MediaItem, len(media))
	for i, m := range media {
		if m.URL == "" {
			return nil, common.Validation("media item %d has no url", i)
		}
		if !m.Type.IsValid() {
			return nil, common.Validation("media item %d has invalid type %q", i, m.Type)
		}
		if m.ID == "" {
			m.ID = newID()
		}
		m.Order = i
		items[i] = m
	}

	now := nowFunc()
	return &Publication{
		id:         newID(),
		authorID:   authorID,
		text:       text,
		typ:        typ,
		visibility: visibility,
		mediaItems: items,
		isActive:   true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Rehydrate rebuilds an aggregate from stored state. Counters are taken as stored.
func Rehydrate(s State) *Publication {
	p := &Publication{
		id:            s.ID,
		authorID:      s.AuthorID,
		text:          s.Text,
		typ:           s.Type,
		visibility:    s.Visibility,
		likesCount:    s.LikesCount,
		commentsCount: s.CommentsCount,
		mediaItems:    append([]MediaItem(nil), s.MediaItems...),
		isActive:      s.IsActive,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		version:       s.Version,
	}
	p.comments = make([]*Comment, len(s.Comments))
	for i := range s.Comments {
		c := s.Comments[i]
		p.comments[i] = &c
	}
	return p
}

// State returns a deep copy of the aggregate.
func (p *Publication) State() State {
	s := State{
		ID:            p.id,
		AuthorID:      p.authorID,
		Text:          p.text,
		Type:          p.typ,
		Visibility:    p.visibility,
		LikesCount:    p.likesCount,
		CommentsCount: p.commentsCount,
		MediaItems:    append([]MediaItem(nil), p.mediaItems...),
		IsActive:      p.isActive,
		CreatedAt:     p.createdAt,
		UpdatedAt:     p.updatedAt,
		Version:       p.version,
	}
	s.Comments = make([]Comment, len(p.comments))
	for i, c := range p.comments {
		s.Comments[i] = *c
	}
	return s
}

func (p *Publication) ID() string             { return p.id }
func (p *Publication) AuthorID() string       { return p.authorID }
func (p *Publication) Text() string           { return p.text }
func (p *Publication) Type() Type             { return p.typ }
func (p *Publication) Visibility() Visibility { return p.visibility }
func (p *Publication) LikesCount() int        { return p.likesCount }
func (p *Publication) CommentsCount() int     { return p.commentsCount }
func (p *Publication) IsActive() bool         { return p.isActive }
func (p *Publication) CreatedAt() time.Time   { return p.createdAt }
func (p *Publication) UpdatedAt() time.Time   { return p.updatedAt }
func (p *Publication) Version() int64         { return p.version }

func (p *Publication) MediaItems() []MediaItem {
	return append([]MediaItem(nil), p.mediaItems...)
}

// SetVersion is called by repositories after a successful save.
func (p *Publication) SetVersion(v int64) { p.version = v }

// Comments returns copies of every comment, active or not, in insertion order.
func (p *Publication) Comments() []Comment {
	out := make([]Comment, len(p.comments))
	for i, c := range p.comments {
		out[i] = *c
	}
	return out
}

func (p *Publication) ActiveComments() []Comment {
	out := make([]Comment, 0, p.commentsCount)
	for _, c := range p.comments {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out
}

// EnsureAuthor fails with Forbidden unless userID authored the publication.
func (p *Publication) EnsureAuthor(userID string) error {
	if userID == "" || userID != p.authorID {
		return common.Forbidden("user %s is not the author of publication %s", userID, p.id)
	}
	return nil
}

// AddComment appends a comment. Text must already have passed moderation.
func (p *Publication) AddComment(authorID, text string, parentCommentID *string) (CommentAddedEvent, error) {
	if err := common.RequireID("authorId", authorID); err != nil {
		return CommentAddedEvent{}, err
	}
	text, err := common.RequireText("text", text)
	if err != nil {
		return CommentAddedEvent{}, err
	}
	if !p.isActive {
		return CommentAddedEvent{}, common.NotFound("publication %s not found", p.id)
	}

	level := 0
	var parentID *string
	if parentCommentID != nil && *parentCommentID != "" {
		parent := p.GetCommentByID(*parentCommentID)
		if parent == nil {
			return CommentAddedEvent{}, common.NotFound("parent comment %s not found", *parentCommentID)
		}
		level = parent.Level + 1
		if level > MaxCommentLevel {
			level = MaxCommentLevel
		}
		id := parent.ID
		parentID = &id
	}

	now := nowFunc()
	c := &Comment{
		ID:              newID(),
		PublicationID:   p.id,
		AuthorID:        authorID,
		Text:            text,
		ParentCommentID: parentID,
		Level:           level,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p.comments = append(p.comments, c)
	p.commentsCount++
	p.updatedAt = now

	return CommentAddedEvent{
		CommentID:       c.ID,
		AuthorID:        authorID,
		PublicationID:   p.id,
		ParentCommentID: parentID,
		Timestamp:       now,
	}, nil
}

// DeleteComment soft-deletes a comment. Only the comment's author may do this.
func (p *Publication) DeleteComment(commentID, userID string) (CommentDeletedEvent, error) {
	c := p.GetCommentByID(commentID)
	if c == nil {
		return CommentDeletedEvent{}, common.NotFound("comment %s not found", commentID)
	}
	if userID == "" || c.AuthorID != userID {
		return CommentDeletedEvent{}, common.Forbidden("user %s cannot delete comment %s", userID, commentID)
	}

	now := nowFunc()
	p.deactivateComment(c, now)

	return CommentDeletedEvent{
		CommentID:     commentID,
		DeletedBy:     userID,
		PublicationID: p.id,
		Timestamp:     now,
	}, nil
}

// RemoveComment deactivates a comment on behalf of moderation, bypassing authorship.
func (p *Publication) RemoveComment(commentID string) error {
	c := p.GetCommentByID(commentID)
	if c == nil {
		return common.NotFound("comment %s not found", commentID)
	}
	p.deactivateComment(c, nowFunc())
	return nil
}

func (p *Publication) deactivateComment(c *Comment, now time.Time) {
	c.IsActive = false
	c.UpdatedAt = now
	if p.commentsCount > 0 {
		p.commentsCount--
	}
	p.updatedAt = now
}

// EditComment replaces a comment's text. Only the comment's author may do this.
func (p *Publication) EditComment(commentID, userID, text string) error {
	c := p.GetCommentByID(commentID)
	if c == nil {
		return common.NotFound("comment %s not found", commentID)
	}
	if userID == "" || c.AuthorID != userID {
		return common.Forbidden("user %s cannot edit comment %s", userID, commentID)
	}
	text, err := common.RequireText("text", text)
	if err != nil {
		return err
	}

	now := nowFunc()
	c.Text = text
	c.IsEdited = true
	c.EditedAt = &now
	c.UpdatedAt = now
	p.updatedAt = now
	return nil
}

// GetCommentByID returns the live comment, or nil if it is absent or deleted.
func (p *Publication) GetCommentByID(commentID string) *Comment {
	for _, c := range p.comments {
		if c.ID == commentID && c.IsActive {
			return c
		}
	}
	return nil
}

func (p *Publication) UpdateText(userID, text string) error {
	if err := p.EnsureAuthor(userID); err != nil {
		return err
	}
	text, err := common.RequireText("text", text)
	if err != nil {
		return err
	}
	p.text = text
	p.updatedAt = nowFunc()
	return nil
}

// Deactivate soft-deletes the publication on behalf of its author.
func (p *Publication) Deactivate(userID string) error {
	if err := p.EnsureAuthor(userID); err != nil {
		return err
	}
	p.isActive = false
	p.updatedAt = nowFunc()
	return nil
}

// Takedown soft-deletes the publication on behalf of moderation.
func (p *Publication) Takedown() {
	p.isActive = false
	p.updatedAt = nowFunc()
}

func (p *Publication) IncrementLikes() {
	p.likesCount++
}

func (p *Publication) DecrementLikes() {
	if p.likesCount > 0 {
		p.likesCount--
	}
}
