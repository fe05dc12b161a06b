package models

import "time"

// RegistryParams registry operating parameters
//
// Singleton entry tracking the administrative pause flag and the monotonic
// counters the engine relies on.
type RegistryParams struct {
	// ID param entry ID. It must always be registry-parameters
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required,oneof=registry-parameters"`

	// Paused administrative circuit breaker gating all mutating operations
	Paused bool `json:"paused" gorm:"column:paused;not null"`

	// NextCapsuleID ID the next capsule will be assigned. Equals the total
	// number of capsules ever created
	NextCapsuleID uint64 `json:"next_capsule_id" gorm:"column:next_capsule_id;not null"`

	// ActiveCapsules count of capsules not yet withdrawn. Maintained
	// incrementally as an O(1) alternative to scanning the capsule table
	ActiveCapsules uint64 `json:"active_capsules" gorm:"column:active_capsules;not null"`

	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}
