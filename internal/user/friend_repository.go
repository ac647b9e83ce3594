package user

import (
	"context"
	"errors"

	"socialfeed/internal/common"
	"socialfeed/internal/dbmysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock_repository_test.go -package=user socialfeed/internal/user FriendRepository,ProfileRepository,SocialService

type FriendRepository interface {
	FindRelationships(ctx context.Context, userID string) ([]RelationshipRecord, error)
	FindBetween(ctx context.Context, a, b string) (*RelationshipRecord, error)
	CreateRelationship(ctx context.Context, rec *RelationshipRecord) error
	UpdateRelationship(ctx context.Context, rec *RelationshipRecord) error
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// FindRelationships returns active records where userID is on either side.
func (r *friendRepository) FindRelationships(ctx context.Context, userID string) ([]RelationshipRecord, error) {
	var rows []dbmysql.Relationship
	err := r.db.WithContext(ctx).
		Where("(requester_id = ? OR addressee_id = ?) AND is_active = ?", userID, userID, true).
		Order("requested_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, common.Unavailable(err, "failed to list relationships")
	}

	out := make([]RelationshipRecord, len(rows))
	for i, row := range rows {
		out[i] = toRecord(row)
	}
	return out, nil
}

func (r *friendRepository) FindBetween(ctx context.Context, a, b string) (*RelationshipRecord, error) {
	var row dbmysql.Relationship
	err := r.db.WithContext(ctx).Where("pair_key = ?", pairKey(a, b)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound("no relationship between %s and %s", a, b)
	}
	if err != nil {
		return nil, common.Unavailable(err, "failed to load relationship")
	}
	rec := toRecord(row)
	return &rec, nil
}

func (r *friendRepository) CreateRelationship(ctx context.Context, rec *RelationshipRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	row := fromRecord(rec)
	err := r.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.Conflict("relationship between %s and %s already exists", rec.RequesterID, rec.AddresseeID)
	}
	if err != nil {
		return common.Unavailable(err, "failed to create relationship")
	}
	rec.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *friendRepository) UpdateRelationship(ctx context.Context, rec *RelationshipRecord) error {
	row := fromRecord(rec)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return common.Unavailable(err, "failed to update relationship")
	}
	rec.UpdatedAt = row.UpdatedAt
	return nil
}

func toRecord(row dbmysql.Relationship) RelationshipRecord {
	return RelationshipRecord{
		ID:          row.ID,
		RequesterID: row.RequesterID,
		AddresseeID: row.AddresseeID,
		Status:      Status(row.Status),
		IsActive:    row.IsActive,
		RequestedAt: row.RequestedAt,
		RespondedAt: row.RespondedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func fromRecord(rec *RelationshipRecord) dbmysql.Relationship {
	return dbmysql.Relationship{
		ID:          rec.ID,
		PairKey:     pairKey(rec.RequesterID, rec.AddresseeID),
		RequesterID: rec.RequesterID,
		AddresseeID: rec.AddresseeID,
		Status:      string(rec.Status),
		IsActive:    rec.IsActive,
		RequestedAt: rec.RequestedAt,
		RespondedAt: rec.RespondedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
