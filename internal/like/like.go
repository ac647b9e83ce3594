// Package like models likes against a publication or a comment.
package like

import (
	"time"

	"socialfeed/internal/common"

	"github.com/google/uuid"
)

type Kind string

const (
	KindPublication Kind = "publication"
	KindComment     Kind = "comment"
)

// Reaction is the reaction kind stored with a like. Only "like" exists today.
type Reaction string

const ReactionLike Reaction = "like"

// Target is either a publication or a comment. The zero Target is invalid; build one
// with PublicationTarget or CommentTarget.
type Target struct {
	kind Kind
	id   string
}

func PublicationTarget(id string) Target { return Target{kind: KindPublication, id: id} }

func CommentTarget(id string) Target { return Target{kind: KindComment, id: id} }

func (t Target) Kind() Kind { return t.kind }
func (t Target) ID() string { return t.id }

func (t Target) Validate() error {
	if t.kind != KindPublication && t.kind != KindComment {
		return common.Validation("invalid like target kind %q", t.kind)
	}
	return common.RequireID(string(t.kind)+"Id", t.id)
}

func (t Target) String() string { return string(t.kind) + ":" + t.id }

// Like is one row in the ledger. At most one exists per (UserID, Target).
type Like struct {
	ID        string
	UserID    string
	Target    Target
	Reaction  Reaction
	CreatedAt time.Time
}

func New(userID string, target Target) (Like, error) {
	if err := common.RequireID("userId", userID); err != nil {
		return Like{}, err
	}
	if err := target.Validate(); err != nil {
		return Like{}, err
	}
	return Like{
		ID:        uuid.NewString(),
		UserID:    userID,
		Target:    target,
		Reaction:  ReactionLike,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Restore rebuilds a Target from its stored columns.
func Restore(kind, id string) (Target, error) {
	t := Target{kind: Kind(kind), id: id}
	return t, t.Validate()
}
