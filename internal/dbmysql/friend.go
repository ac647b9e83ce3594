package dbmysql

import (
	"time"
)

// Relationship is one row per unordered user pair; PairKey is the sorted pair, so a
// request in either direction hits the same unique index. RequesterID started it.
type Relationship struct {
	ID          string     `gorm:"primaryKey;size:36;column:id" json:"id"`
	PairKey     string     `gorm:"column:pair_key;size:73;not null;uniqueIndex" json:"-"`
	RequesterID string     `gorm:"column:requester_id;size:36;not null;index" json:"requester_id"`
	AddresseeID string     `gorm:"column:addressee_id;size:36;not null;index" json:"addressee_id"`
	Status      string     `gorm:"column:status;size:10;not null" json:"status"` // pending, accepted, blocked, rejected
	IsActive    bool       `gorm:"column:is_active;not null" json:"is_active"`
	RequestedAt time.Time  `gorm:"column:requested_at" json:"requested_at"`
	RespondedAt *time.Time `gorm:"column:responded_at" json:"responded_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Relationship) TableName() string {
	return "relationships"
}
