package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// RegistryEventTypeENUMType registry event type ENUM value type
type RegistryEventTypeENUMType string

const (
	// RegistryEventTypeCapsuleCreated a new capsule was committed
	RegistryEventTypeCapsuleCreated RegistryEventTypeENUMType = "CAPSULE_CREATED"

	// RegistryEventTypeCapsuleDisclosed a capsule fingerprint was disclosed
	RegistryEventTypeCapsuleDisclosed RegistryEventTypeENUMType = "CAPSULE_DISCLOSED"

	// RegistryEventTypeCapsuleWithdrawn a capsule was withdrawn before unlock
	RegistryEventTypeCapsuleWithdrawn RegistryEventTypeENUMType = "CAPSULE_WITHDRAWN"

	// RegistryEventTypeEnginePaused the engine was paused by the administrator
	RegistryEventTypeEnginePaused RegistryEventTypeENUMType = "ENGINE_PAUSED"

	// RegistryEventTypeEngineUnpaused the engine was unpaused by the administrator
	RegistryEventTypeEngineUnpaused RegistryEventTypeENUMType = "ENGINE_UNPAUSED"
)

// RegistryEventAudit recording of events occurring at the registry level
//
// The audit trail is append-only; entries are never updated or removed once
// written, so external monitoring can treat it as a totally-ordered log.
type RegistryEventAudit struct {
	// ID audit entry ID
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required"`
	// EventType registry event type
	EventType RegistryEventTypeENUMType `json:"type" gorm:"column:type;not null" validate:"required,registry_event_type"`
	// Metadata a metadata relating to the event
	Metadata datatypes.JSON `json:"metadata,omitempty" gorm:"column:metadata;default:null"`
	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseMetadata parse the metadata based on the event type
func (a RegistryEventAudit) ParseMetadata(validator *validator.Validate) (interface{}, error) {
	switch a.EventType {
	case RegistryEventTypeCapsuleCreated:
		var parsed EventCapsuleCreated
		if err := json.Unmarshal(a.Metadata, &parsed); err != nil {
			return nil, fmt.Errorf("registry event '%s' metadata parse failed [%w]", a.EventType, err)
		}
		return parsed, validator.Struct(&parsed)

	case RegistryEventTypeCapsuleDisclosed:
		var parsed EventCapsuleDisclosed
		if err := json.Unmarshal(a.Metadata, &parsed); err != nil {
			return nil, fmt.Errorf("registry event '%s' metadata parse failed [%w]", a.EventType, err)
		}
		return parsed, validator.Struct(&parsed)

	case RegistryEventTypeCapsuleWithdrawn:
		var parsed EventCapsuleWithdrawn
		if err := json.Unmarshal(a.Metadata, &parsed); err != nil {
			return nil, fmt.Errorf("registry event '%s' metadata parse failed [%w]", a.EventType, err)
		}
		return parsed, validator.Struct(&parsed)

	// Pause state events share the same metadata shape
	case RegistryEventTypeEnginePaused:
		fallthrough
	case RegistryEventTypeEngineUnpaused:
		var parsed EventPauseStateChanged
		if err := json.Unmarshal(a.Metadata, &parsed); err != nil {
			return nil, fmt.Errorf("registry event '%s' metadata parse failed [%w]", a.EventType, err)
		}
		return parsed, validator.Struct(&parsed)
	}
	return nil, nil
}

// EventCapsuleCreated registry event metadata for capsule creation
type EventCapsuleCreated struct {
	// Owner identity of the creator
	Owner string `json:"owner" validate:"required"`
	// CapsuleID the assigned capsule ID
	CapsuleID uint64 `json:"capsule_id"`
	// Label free-text caption attached at creation
	Label string `json:"label" validate:"max=100"`
	// UnlockAt timestamp after which the fingerprint becomes disclosable
	UnlockAt time.Time `json:"unlock_at" validate:"required"`
	// CreatedAt capsule creation timestamp
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// EventCapsuleDisclosed registry event metadata for capsule disclosure
type EventCapsuleDisclosed struct {
	// Caller identity of the disclosing caller. Not restricted to the owner
	Caller string `json:"caller" validate:"required"`
	// CapsuleID the disclosed capsule ID
	CapsuleID uint64 `json:"capsule_id"`
	// Owner identity of the capsule creator
	Owner string `json:"owner" validate:"required"`
}

// EventCapsuleWithdrawn registry event metadata for capsule withdrawal
type EventCapsuleWithdrawn struct {
	// Owner identity of the withdrawing owner
	Owner string `json:"owner" validate:"required"`
	// CapsuleID the withdrawn capsule ID
	CapsuleID uint64 `json:"capsule_id"`
}

// EventPauseStateChanged registry event metadata for pause / unpause
type EventPauseStateChanged struct {
	// Admin identity of the administrator
	Admin string `json:"admin" validate:"required"`
}
