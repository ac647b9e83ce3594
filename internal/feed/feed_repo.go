package feed

import (
	"context"
	"errors"

	"socialfeed/internal/common"
	"socialfeed/internal/dbmysql"
	"socialfeed/internal/like"
	"socialfeed/internal/publication"
	"socialfeed/internal/visibility"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStaleVersion marks a save that lost the optimistic version race.
var ErrStaleVersion = errors.New("stale publication version")

type PublicationQuery struct {
	Scope    visibility.Scope
	AuthorID string
	Page     common.Page
}

// AuthorSummary is the public face of a publication author.
type AuthorSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Store is the persistence boundary of the feed. SavePublication replaces the whole
// aggregate and fails with ErrStaleVersion when the stored version moved on.
type Store interface {
	FindPublicationByID(ctx context.Context, id string) (*publication.Publication, error)
	SavePublication(ctx context.Context, p *publication.Publication) error
	ListPublications(ctx context.Context, q PublicationQuery) ([]*publication.Publication, int64, error)
	ListActivePublicationIDs(ctx context.Context, afterID string, limit int) ([]string, error)
	RecordLike(ctx context.Context, l like.Like) error
	RemoveLike(ctx context.Context, userID string, target like.Target) (bool, error)
	FindLikedTargets(ctx context.Context, userID string, kind like.Kind, ids []string) (map[string]bool, error)
	FindAuthors(ctx context.Context, ids []string) (map[string]AuthorSummary, error)
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type FeedRepository struct {
	db *gorm.DB
}

var _ Store = (*FeedRepository)(nil)

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// --------- PUBLICATIONS ---------

func (r *FeedRepository) FindPublicationByID(ctx context.Context, id string) (*publication.Publication, error) {
	var row dbmysql.Publication
	err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		Preload("MediaItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_position ASC") }).
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound("publication %s not found", id)
	}
	if err != nil {
		return nil, common.Unavailable(err, "failed to load publication %s", id)
	}
	return toAggregate(row), nil
}

// SavePublication inserts a new aggregate (version 0) or compares-and-swaps an existing
// one, then upserts every comment row. It runs in a transaction, nested as a savepoint
// when called inside Transaction.
func (r *FeedRepository) SavePublication(ctx context.Context, p *publication.Publication) error {
	s := p.State()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := fromState(s)

		if s.Version == 0 {
			row.Version = 1
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return common.Conflict("publication %s already exists", s.ID)
				}
				return common.Unavailable(err, "failed to create publication")
			}
			if len(row.MediaItems) > 0 {
				if err := tx.Create(&row.MediaItems).Error; err != nil {
					return common.Unavailable(err, "failed to store media items")
				}
			}
		} else {
			res := tx.Model(&dbmysql.Publication{}).
				Where("id = ? AND version = ?", s.ID, s.Version).
				Updates(map[string]interface{}{
					"content":        row.Content,
					"type":           row.Type,
					"visibility":     row.Visibility,
					"likes_count":    row.LikesCount,
					"comments_count": row.CommentsCount,
					"is_active":      row.IsActive,
					"updated_at":     row.UpdatedAt,
					"version":        gorm.Expr("version + 1"),
				})
			if res.Error != nil {
				return common.Unavailable(res.Error, "failed to update publication")
			}
			if res.RowsAffected == 0 {
				return &common.Error{
					Kind:    common.KindConflict,
					Message: "publication " + s.ID + " was modified concurrently",
					Err:     ErrStaleVersion,
				}
			}
		}

		if len(row.Comments) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row.Comments).Error; err != nil {
				return common.Unavailable(err, "failed to store comments")
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	p.SetVersion(s.Version + 1)
	return nil
}

// ListPublications pages active publications admitted by q.Scope, newest first.
// The returned aggregates carry media but not comments.
func (r *FeedRepository) ListPublications(ctx context.Context, q PublicationQuery) ([]*publication.Publication, int64, error) {
	cond, args := visibilityCondition(q.Scope)
	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&dbmysql.Publication{}).Where("is_active = ?", true)
		if q.AuthorID != "" {
			query = query.Where("author_id = ?", q.AuthorID)
		}
		return query.Where(cond, args...)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, common.Unavailable(err, "failed to count publications")
	}

	var rows []dbmysql.Publication
	err := filtered().
		Preload("MediaItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_position ASC") }).
		Order("created_at DESC, id DESC").
		Offset(q.Page.Offset()).
		Limit(q.Page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, common.Unavailable(err, "failed to list publications")
	}

	out := make([]*publication.Publication, len(rows))
	for i, row := range rows {
		out[i] = toAggregate(row)
	}
	return out, total, nil
}

// visibilityCondition renders Scope.Admits as one WHERE expression.
func visibilityCondition(s visibility.Scope) (string, []interface{}) {
	public := string(publication.VisibilityPublic)
	if s.Anonymous() {
		return "visibility = ?", []interface{}{public}
	}

	cond := "(visibility = ? OR (visibility IN ? AND author_id = ?)"
	args := []interface{}{
		public,
		[]string{string(publication.VisibilityPrivate), string(publication.VisibilityFriends)},
		s.ViewerID,
	}
	if len(s.FriendIDs) > 0 {
		cond += " OR (visibility = ? AND author_id IN ?)"
		args = append(args, string(publication.VisibilityFriends), s.FriendIDs)
	}
	return cond + ")", args
}

// ListActivePublicationIDs walks active publications in id order for batch jobs.
func (r *FeedRepository) ListActivePublicationIDs(ctx context.Context, afterID string, limit int) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&dbmysql.Publication{}).
		Where("is_active = ? AND id > ?", true, afterID).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, common.Unavailable(err, "failed to list publication ids")
	}
	return ids, nil
}

// --------- LIKES ---------

// RecordLike relies on the unique (user, target) index. A second like for the same pair
// affects no rows and is reported as Conflict.
func (r *FeedRepository) RecordLike(ctx context.Context, l like.Like) error {
	row := dbmysql.Like{
		ID:           l.ID,
		UserID:       l.UserID,
		LikeableID:   l.Target.ID(),
		LikeableType: string(l.Target.Kind()),
		Type:         string(l.Reaction),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.CreatedAt,
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return common.Conflict("%s already liked by %s", l.Target, l.UserID)
		}
		return common.Unavailable(res.Error, "failed to record like")
	}
	if res.RowsAffected == 0 {
		return common.Conflict("%s already liked by %s", l.Target, l.UserID)
	}
	return nil
}

func (r *FeedRepository) RemoveLike(ctx context.Context, userID string, target like.Target) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND likeable_id = ? AND likeable_type = ?", userID, target.ID(), string(target.Kind())).
		Delete(&dbmysql.Like{})
	if res.Error != nil {
		return false, common.Unavailable(res.Error, "failed to remove like")
	}
	return res.RowsAffected > 0, nil
}

// FindLikedTargets maps every id to whether userID liked it. Anonymous viewers like nothing.
func (r *FeedRepository) FindLikedTargets(ctx context.Context, userID string, kind like.Kind, ids []string) (map[string]bool, error) {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = false
	}
	if userID == "" || len(ids) == 0 {
		return out, nil
	}

	var liked []string
	err := r.db.WithContext(ctx).Model(&dbmysql.Like{}).
		Where("user_id = ? AND likeable_type = ? AND likeable_id IN ?", userID, string(kind), ids).
		Pluck("likeable_id", &liked).Error
	if err != nil {
		return nil, common.Unavailable(err, "failed to load likes")
	}
	for _, id := range liked {
		out[id] = true
	}
	return out, nil
}

// --------- AUTHORS ---------

func (r *FeedRepository) FindAuthors(ctx context.Context, ids []string) (map[string]AuthorSummary, error) {
	out := make(map[string]AuthorSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var profiles []dbmysql.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, common.Unavailable(err, "failed to load authors")
	}
	for _, p := range profiles {
		out[p.UserID] = AuthorSummary{ID: p.UserID, DisplayName: p.DisplayName, AvatarURL: p.AvatarURL}
	}
	return out, nil
}

func (r *FeedRepository) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&FeedRepository{db: tx})
	})
}

// --------- MAPPING ---------

func toAggregate(row dbmysql.Publication) *publication.Publication {
	s := publication.State{
		ID:            row.ID,
		AuthorID:      row.AuthorID,
		Text:          row.Content,
		Type:          publication.Type(row.Type),
		Visibility:    publication.Visibility(row.Visibility),
		LikesCount:    row.LikesCount,
		CommentsCount: row.CommentsCount,
		IsActive:      row.IsActive,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		Version:       row.Version,
	}
	s.MediaItems = make([]publication.MediaItem, len(row.MediaItems))
	for i, m := range row.MediaItems {
		s.MediaItems[i] = publication.MediaItem{
			ID:           m.ID,
			Type:         common.MediaFileType(m.Type),
			URL:          m.URL,
			OriginalName: m.OriginalName,
			Size:         m.Size,
			Order:        m.OrderPosition,
			Width:        m.Width,
			Height:       m.Height,
		}
	}
	s.Comments = make([]publication.Comment, len(row.Comments))
	for i, c := range row.Comments {
		s.Comments[i] = publication.Comment{
			ID:              c.ID,
			PublicationID:   c.PublicationID,
			AuthorID:        c.AuthorID,
			Text:            c.Content,
			ParentCommentID: c.ParentCommentID,
			Level:           c.Level,
			LikesCount:      c.LikesCount,
			IsActive:        c.IsActive,
			IsEdited:        c.IsEdited,
			EditedAt:        c.EditedAt,
			CreatedAt:       c.CreatedAt,
			UpdatedAt:       c.UpdatedAt,
		}
	}
	return publication.Rehydrate(s)
}

func fromState(s publication.State) dbmysql.Publication {
	row := dbmysql.Publication{
		ID:            s.ID,
		AuthorID:      s.AuthorID,
		Content:       s.Text,
		Type:          string(s.Type),
		Visibility:    string(s.Visibility),
		LikesCount:    s.LikesCount,
		CommentsCount: s.CommentsCount,
		IsActive:      s.IsActive,
		Version:       s.Version,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for _, m := range s.MediaItems {
		row.MediaItems = append(row.MediaItems, dbmysql.MediaItem{
			ID:            m.ID,
			PublicationID: s.ID,
			Type:          string(m.Type),
			URL:           m.URL,
			OriginalName:  m.OriginalName,
			Size:          m.Size,
			OrderPosition: m.Order,
			Width:         m.Width,
			Height:        m.Height,
		})
	}
	for _, c := range s.Comments {
		row.Comments = append(row.Comments, dbmysql.Comment{
			ID:              c.ID,
			PublicationID:   c.PublicationID,
			AuthorID:        c.AuthorID,
			Content:         c.Text,
			ParentCommentID: c.ParentCommentID,
			Level:           c.Level,
			LikesCount:      c.LikesCount,
			IsActive:        c.IsActive,
			IsEdited:        c.IsEdited,
			EditedAt:        c.EditedAt,
			CreatedAt:       c.CreatedAt,
			UpdatedAt:       c.UpdatedAt,
		})
	}
	return row
}
