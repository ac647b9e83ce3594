package user

import (
	"context"
	"fmt"
)

// Graph is the read-only query surface over relationship records.
type Graph struct {
	repo FriendRepository
}

func NewGraph(repo FriendRepository) *Graph {
	return &Graph{repo: repo}
}

// FriendIDs collapses accepted relationships touching userID to the other side.
func (g *Graph) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	records, err := g.repo.FindRelationships(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load relationships: %w", err)
	}
	return FriendIDsFrom(userID, records), nil
}

// ExclusionSet is the set of user ids never shown to userID in discovery, self included.
func (g *Graph) ExclusionSet(ctx context.Context, userID string) (map[string]struct{}, error) {
	records, err := g.repo.FindRelationships(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load relationships: %w", err)
	}
	return ExclusionSetFrom(userID, records), nil
}

// Between returns the relationship for a pair, or a NotFound error.
func (g *Graph) Between(ctx context.Context, a, b string) (*RelationshipRecord, error) {
	return g.repo.FindBetween(ctx, a, b)
}

func FriendIDsFrom(userID string, records []RelationshipRecord) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if !r.IsActive || r.Status != StatusAccepted {
			continue
		}
		other := r.Counterpart(userID)
		if other == "" {
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}
	return ids
}

func ExclusionSetFrom(userID string, records []RelationshipRecord) map[string]struct{} {
	set := map[string]struct{}{userID: {}}
	for _, r := range records {
		if !r.IsActive || !ExcludesFromDiscovery(r.Status) {
			continue
		}
		if other := r.Counterpart(userID); other != "" {
			set[other] = struct{}{}
		}
	}
	return set
}
