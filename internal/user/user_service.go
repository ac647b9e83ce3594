package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"socialfeed/internal/common"
	"socialfeed/internal/dbmysql"
)

// DefaultRerequestCooldown is how long a rejected requester must wait before asking again.
const DefaultRerequestCooldown = 30 * 24 * time.Hour

type SocialService interface {
	SendFriendRequest(ctx context.Context, userID, targetUserID string) (*RelationshipRecord, error)
	RespondToRequest(ctx context.Context, userID, requesterID string, accept bool) (*RelationshipRecord, error)
	BlockUser(ctx context.Context, userID, targetUserID string) (*RelationshipRecord, error)
	ListFriends(ctx context.Context, userID string) ([]string, error)
	AvailableUsers(ctx context.Context, currentUserID, search string, page common.Page) (*AvailableUsersPage, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*dbmysql.UserProfile, error)
	DeleteProfile(ctx context.Context, userID string) error
}

type ProfileInput struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	AvatarURL   string `json:"avatar_url"`
}

type AvailableUsersPage struct {
	Users   []dbmysql.UserProfile `json:"users"`
	Total   int64                 `json:"total"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
	Pages   int                   `json:"pages"`
	HasMore bool                  `json:"has_more"`
}

type socialService struct {
	friendRepo  FriendRepository
	profileRepo ProfileRepository
	graph       *Graph
	cooldown    time.Duration
	now         func() time.Time
}

func NewSocialService(friendRepo FriendRepository, profileRepo ProfileRepository, graph *Graph) SocialService {
	return &socialService{
		friendRepo:  friendRepo,
		profileRepo: profileRepo,
		graph:       graph,
		cooldown:    DefaultRerequestCooldown,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *socialService) SendFriendRequest(ctx context.Context, userID, targetUserID string) (*RelationshipRecord, error) {
	if err := requirePair(userID, targetUserID); err != nil {
		return nil, err
	}
	if userID == targetUserID {
		return nil, common.Validation("cannot send a friend request to yourself")
	}

	now := s.now()
	existing, err := s.friendRepo.FindBetween(ctx, userID, targetUserID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		rec := &RelationshipRecord{
			RequesterID: userID,
			AddresseeID: targetUserID,
			Status:      StatusPending,
			IsActive:    true,
			RequestedAt: now,
		}
		if err := s.friendRepo.CreateRelationship(ctx, rec); err != nil {
			return nil, err
		}
		return rec, nil
	}

	if existing.IsActive {
		switch existing.Status {
		case StatusAccepted:
			return nil, common.Conflict("already friends")
		case StatusPending:
			return nil, common.Conflict("friend request already pending")
		case StatusBlocked:
			return nil, common.Forbidden("relationship is blocked")
		case StatusRejected:
			if existing.RespondedAt != nil && now.Sub(*existing.RespondedAt) < s.cooldown {
				return nil, common.Conflict("friend request was rejected recently, try again later")
			}
		}
	}

	existing.RequesterID = userID
	existing.AddresseeID = targetUserID
	existing.Status = StatusPending
	existing.IsActive = true
	existing.RequestedAt = now
	existing.RespondedAt = nil
	if err := s.friendRepo.UpdateRelationship(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *socialService) RespondToRequest(ctx context.Context, userID, requesterID string, accept bool) (*RelationshipRecord, error) {
	if err := requirePair(userID, requesterID); err != nil {
		return nil, err
	}

	rec, err := s.friendRepo.FindBetween(ctx, requesterID, userID)
	if err != nil {
		return nil, err
	}
	if !rec.IsActive || rec.Status != StatusPending || rec.AddresseeID != userID {
		return nil, common.NotFound("no pending friend request from %s", requesterID)
	}

	now := s.now()
	rec.Status = StatusRejected
	if accept {
		rec.Status = StatusAccepted
	}
	rec.RespondedAt = &now
	if err := s.friendRepo.UpdateRelationship(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// BlockUser records the block with the blocker as requester.
func (s *socialService) BlockUser(ctx context.Context, userID, targetUserID string) (*RelationshipRecord, error) {
	if err := requirePair(userID, targetUserID); err != nil {
		return nil, err
	}
	if userID == targetUserID {
		return nil, common.Validation("cannot block yourself")
	}

	now := s.now()
	rec, err := s.friendRepo.FindBetween(ctx, userID, targetUserID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if rec == nil {
		rec = &RelationshipRecord{
			RequesterID: userID,
			AddresseeID: targetUserID,
			Status:      StatusBlocked,
			IsActive:    true,
			RequestedAt: now,
			RespondedAt: &now,
		}
		if err := s.friendRepo.CreateRelationship(ctx, rec); err != nil {
			return nil, err
		}
		return rec, nil
	}

	rec.RequesterID = userID
	rec.AddresseeID = targetUserID
	rec.Status = StatusBlocked
	rec.IsActive = true
	rec.RespondedAt = &now
	if err := s.friendRepo.UpdateRelationship(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *socialService) ListFriends(ctx context.Context, userID string) ([]string, error) {
	if err := common.RequireID("userId", userID); err != nil {
		return nil, err
	}
	return s.graph.FriendIDs(ctx, userID)
}

func (s *socialService) AvailableUsers(ctx context.Context, currentUserID, search string, page common.Page) (*AvailableUsersPage, error) {
	if err := common.RequireID("userId", currentUserID); err != nil {
		return nil, err
	}
	page = common.NewPage(page.Page, page.Limit)

	excluded, err := s.graph.ExclusionSet(ctx, currentUserID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(excluded))
	for id := range excluded {
		ids = append(ids, id)
	}

	users, total, err := s.profileRepo.ListProfiles(ctx, ProfileQuery{
		Exclude: ids,
		Search:  search,
		Page:    page,
	})
	if err != nil {
		return nil, err
	}

	return &AvailableUsersPage{
		Users:   users,
		Total:   total,
		Page:    page.Page,
		Limit:   page.Limit,
		Pages:   page.Pages(total),
		HasMore: page.HasMore(total),
	}, nil
}

func (s *socialService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*dbmysql.UserProfile, error) {
	if err := common.RequireID("userId", userID); err != nil {
		return nil, err
	}
	name, err := common.RequireText("display_name", in.DisplayName)
	if err != nil {
		return nil, err
	}

	now := s.now()
	profile := &dbmysql.UserProfile{
		UserID:      userID,
		DisplayName: name,
		Bio:         strings.TrimSpace(in.Bio),
		Location:    strings.TrimSpace(in.Location),
		AvatarURL:   strings.TrimSpace(in.AvatarURL),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *socialService) DeleteProfile(ctx context.Context, userID string) error {
	if err := common.RequireID("userId", userID); err != nil {
		return err
	}
	return s.profileRepo.DeleteProfile(ctx, userID)
}

func requirePair(userID, otherID string) error {
	if err := common.RequireID("userId", userID); err != nil {
		return err
	}
	return common.RequireID("targetUserId", otherID)
}
