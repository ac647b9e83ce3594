// Package visibility decides which publications a viewer may see.
//
// The rule is one disjunction:
//
//	visibility = public
//	OR (visibility = private AND author = viewer)
//	OR (visibility = friends AND (author = viewer OR author IN friends(viewer)))
//
// Scope evaluates it in memory; repositories translate the same Scope into a single
// WHERE clause so paging and counting happen in the database.
package visibility

import (
	"context"
	"fmt"

	"socialfeed/internal/publication"
)

// FriendSource lists the accepted-friend counterparts of a user.
type FriendSource interface {
	FriendIDs(ctx context.Context, userID string) ([]string, error)
}

// Scope is the resolved visibility predicate for one viewer. An empty ViewerID is an
// anonymous viewer.
type Scope struct {
	ViewerID  string
	FriendIDs []string
	friendSet map[string]struct{}
}

func AnonymousScope() Scope { return Scope{} }

func NewScope(viewerID string, friendIDs []string) Scope {
	set := make(map[string]struct{}, len(friendIDs))
	for _, id := range friendIDs {
		set[id] = struct{}{}
	}
	return Scope{ViewerID: viewerID, FriendIDs: friendIDs, friendSet: set}
}

func (s Scope) Anonymous() bool { return s.ViewerID == "" }

func (s Scope) isFriend(authorID string) bool {
	if s.friendSet == nil {
		for _, id := range s.FriendIDs {
			if id == authorID {
				return true
			}
		}
		return false
	}
	_, ok := s.friendSet[authorID]
	return ok
}

// Admits evaluates the rule for one publication.
func (s Scope) Admits(authorID string, v publication.Visibility) bool {
	switch v {
	case publication.VisibilityPublic:
		return true
	case publication.VisibilityPrivate:
		return !s.Anonymous() && authorID == s.ViewerID
	case publication.VisibilityFriends:
		if s.Anonymous() {
			return false
		}
		return authorID == s.ViewerID || s.isFriend(authorID)
	default:
		return false
	}
}

type Resolver struct {
	friends FriendSource
}

func NewResolver(friends FriendSource) *Resolver {
	return &Resolver{friends: friends}
}

// ScopeFor resolves the viewer's friend set once. Anonymous viewers never hit the graph.
func (r *Resolver) ScopeFor(ctx context.Context, viewerID string) (Scope, error) {
	if viewerID == "" {
		return AnonymousScope(), nil
	}
	ids, err := r.friends.FriendIDs(ctx, viewerID)
	if err != nil {
		return Scope{}, fmt.Errorf("failed to resolve friends of %s: %w", viewerID, err)
	}
	return NewScope(viewerID, ids), nil
}

// Filter returns the admissible subset of candidates, preserving order.
func (r *Resolver) Filter(ctx context.Context, viewerID string, candidates []*publication.Publication) ([]*publication.Publication, error) {
	scope, err := r.ScopeFor(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	out := make([]*publication.Publication, 0, len(candidates))
	for _, p := range candidates {
		if scope.Admits(p.AuthorID(), p.Visibility()) {
			out = append(out, p)
		}
	}
	return out, nil
}

// CanView checks a single publication. Only public content is decided without a lookup.
func (r *Resolver) CanView(ctx context.Context, viewerID string, p *publication.Publication) (bool, error) {
	switch {
	case p.Visibility() == publication.VisibilityPublic:
		return true, nil
	case viewerID == "":
		return false, nil
	case viewerID == p.AuthorID():
		return true, nil
	case p.Visibility() == publication.VisibilityPrivate:
		return false, nil
	}
	scope, err := r.ScopeFor(ctx, viewerID)
	if err != nil {
		return false, err
	}
	return scope.Admits(p.AuthorID(), p.Visibility()), nil
}
