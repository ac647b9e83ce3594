package user

import (
	"context"
	"strings"
	"time"

	"socialfeed/internal/common"
	"socialfeed/internal/dbmysql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileQuery struct {
	Exclude []string
	Search  string
	Page    common.Page
}

type ProfileRepository interface {
	ListProfiles(ctx context.Context, q ProfileQuery) ([]dbmysql.UserProfile, int64, error)
	UpsertProfile(ctx context.Context, profile *dbmysql.UserProfile) error
	DeleteProfile(ctx context.Context, userID string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ListProfiles(ctx context.Context, q ProfileQuery) ([]dbmysql.UserProfile, int64, error) {
	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&dbmysql.UserProfile{}).Where("is_active = ?", true)
		if len(q.Exclude) > 0 {
			query = query.Where("user_id NOT IN ?", q.Exclude)
		}
		if s := strings.TrimSpace(q.Search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			query = query.Where("(LOWER(display_name) LIKE ? OR LOWER(bio) LIKE ? OR LOWER(location) LIKE ?)", like, like, like)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, common.Unavailable(err, "failed to count profiles")
	}

	var profiles []dbmysql.UserProfile
	err := filtered().
		Order("display_name ASC").
		Offset(q.Page.Offset()).
		Limit(q.Page.Limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, common.Unavailable(err, "failed to list profiles")
	}
	return profiles, total, nil
}

func (r *profileRepository) UpsertProfile(ctx context.Context, profile *dbmysql.UserProfile) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "bio", "location", "avatar_url", "is_active", "updated_at"}),
	}).Create(profile).Error
	if err != nil {
		return common.Unavailable(err, "failed to save profile")
	}
	return nil
}

// DeleteProfile deactivates a profile so it drops out of discovery.
func (r *profileRepository) DeleteProfile(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Model(&dbmysql.UserProfile{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return common.Unavailable(result.Error, "failed to delete profile %s", userID)
	}
	if result.RowsAffected == 0 {
		return common.NotFound("profile %s not found", userID)
	}
	return nil
}
