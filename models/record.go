// Package models - system data models
package models

import "time"

// CapsuleRecord one committed, time-gated content fingerprint
//
// The fingerprint references data stored elsewhere; the registry only gates
// when the fingerprint itself becomes visible.
type CapsuleRecord struct {
	// ID capsule ID. Assigned sequentially starting at 0, never reused
	ID uint64 `json:"id" gorm:"column:id;primaryKey;autoIncrement:false"`

	// Owner identity of the creator
	Owner string `json:"owner" gorm:"column:owner;not null;index" validate:"required"`

	// Fingerprint opaque content hash of the externally stored payload
	Fingerprint string `json:"fingerprint" gorm:"column:fingerprint;not null" validate:"required"`

	// UnlockAt timestamp after which the fingerprint becomes disclosable
	UnlockAt time.Time `json:"unlock_at" gorm:"column:unlock_at;not null"`

	// Label free-text caption attached at creation
	Label string `json:"label" gorm:"column:label" validate:"max=100"`

	// Active whether the capsule is still live. Flips to false exactly once
	// on withdrawal, never back
	Active bool `json:"active" gorm:"column:active;not null"`

	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

// Disclosable whether the fingerprint may be revealed as of the given time
func (r *CapsuleRecord) Disclosable(now time.Time) bool {
	return r.Active && !now.Before(r.UnlockAt)
}

// CapsuleInfo fingerprint-free view of a capsule
type CapsuleInfo struct {
	// ID capsule ID
	ID uint64 `json:"id"`
	// Owner identity of the creator
	Owner string `json:"owner"`
	// Label free-text caption attached at creation
	Label string `json:"label"`
	// UnlockAt timestamp after which the fingerprint becomes disclosable
	UnlockAt time.Time `json:"unlock_at"`
	// CreatedAt capsule creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// Locked whether the capsule is still before its unlock time
	Locked bool `json:"locked"`
	// Active whether the capsule has not been withdrawn
	Active bool `json:"active"`
}

// Disclosure content returned when a capsule is disclosed post-unlock
type Disclosure struct {
	// ID capsule ID
	ID uint64 `json:"id"`
	// Fingerprint the revealed content hash
	Fingerprint string `json:"fingerprint"`
	// Label free-text caption attached at creation
	Label string `json:"label"`
	// Owner identity of the creator
	Owner string `json:"owner"`
	// CreatedAt capsule creation timestamp
	CreatedAt time.Time `json:"created_at"`
}
