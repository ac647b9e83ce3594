package user

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusBlocked  Status = "blocked"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusBlocked, StatusRejected:
		return true
	}
	return false
}

// RelationshipRecord describes an unordered pair of users.
type RelationshipRecord struct {
	ID          string     `json:"id"`
	RequesterID string     `json:"requester_id"`
	AddresseeID string     `json:"addressee_id"`
	Status      Status     `json:"status"`
	IsActive    bool       `json:"is_active"`
	RequestedAt time.Time  `json:"requested_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Counterpart returns the other side of the pair, or "" if userID is not part of it.
func (r RelationshipRecord) Counterpart(userID string) string {
	switch userID {
	case r.RequesterID:
		return r.AddresseeID
	case r.AddresseeID:
		return r.RequesterID
	}
	return ""
}

// ExcludesFromDiscovery reports whether a relationship in this state hides the
// counterpart from "people you may know". Rejected pairs stay discoverable.
func ExcludesFromDiscovery(s Status) bool {
	switch s {
	case StatusAccepted, StatusPending, StatusBlocked:
		return true
	}
	return false
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}
