package db

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/goutils"
	"github.com/alwitt/timelock/models"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CommonListEntryQueryFilter common query filter when listing data entries
type CommonListEntryQueryFilter struct {
	Limit  *int
	Offset *int
}

// RegistryEventQueryFilter audit event query filter conditions
type RegistryEventQueryFilter struct {
	CommonListEntryQueryFilter
	// EventTypes the specific event types to query for
	EventTypes []models.RegistryEventTypeENUMType
	// EventsAfter filter for events after this timestamp
	EventsAfter *time.Time
	// EventsBefore filter for events before this timestamp
	EventsBefore *time.Time
}

// CapsuleQueryFilter capsule query filter conditions
type CapsuleQueryFilter struct {
	CommonListEntryQueryFilter
	// TargetOwner fetch only capsules created by this owner
	TargetOwner *string
	// ActiveOnly fetch only capsules not yet withdrawn
	ActiveOnly bool
}

// Database the database handle to interacting with the data base
//
// This layer is the authoritative capsule store. It performs no lifecycle
// validation; time-gating, ownership, and pause rules are the engine's
// responsibility. Each mutation appends its audit fact in the same
// transaction, so a transition and its fact commit or fail together.
type Database interface {
	// ------------------------------------------------------------------------------------
	// Registry audit events

	/*
		ListRegistryEvents list captured registry events

			@param ctx context.Context - execution context
			@param filters RegistryEventQueryFilter - entry listing filter
			@return list of registry events
	*/
	ListRegistryEvents(
		ctx context.Context, filters RegistryEventQueryFilter,
	) ([]models.RegistryEventAudit, error)

	// ------------------------------------------------------------------------------------
	// Registry parameters

	/*
		GetRegistryParams fetch the global singleton registry parameter entry

			@param ctx context.Context - execution context
			@returns the entry
	*/
	GetRegistryParams(ctx context.Context) (models.RegistryParams, error)

	/*
		MarkEnginePaused flip the pause flag on

			@param ctx context.Context - execution context
			@param admin string - administrator identity for the audit fact
	*/
	MarkEnginePaused(ctx context.Context, admin string) error

	/*
		MarkEngineUnpaused flip the pause flag off

			@param ctx context.Context - execution context
			@param admin string - administrator identity for the audit fact
	*/
	MarkEngineUnpaused(ctx context.Context, admin string) error

	// ------------------------------------------------------------------------------------
	// Capsules

	/*
		AppendCapsule store a new capsule

		The capsule is assigned the next sequential ID starting from 0; IDs are
		dense and never reused. Always succeeds on valid storage; lifecycle
		validation happens in the engine.

			@param ctx context.Context - execution context
			@param owner string - creator identity
			@param fingerprint string - opaque content hash
			@param label string - free-text caption
			@param unlockAt time.Time - timestamp after which disclosure is allowed
			@param createdAt time.Time - capsule creation timestamp
			@returns the stored capsule entry
	*/
	AppendCapsule(
		ctx context.Context,
		owner string,
		fingerprint string,
		label string,
		unlockAt time.Time,
		createdAt time.Time,
	) (models.CapsuleRecord, error)

	/*
		GetCapsule fetch a capsule by ID

			@param ctx context.Context - execution context
			@param capsuleID uint64 - capsule ID
			@returns capsule entry, by value
	*/
	GetCapsule(ctx context.Context, capsuleID uint64) (models.CapsuleRecord, error)

	/*
		MarkCapsuleInactive flip a capsule's active flag to false

		The engine guarantees this is called at most once per capsule and only
		while the capsule is currently active.

			@param ctx context.Context - execution context
			@param capsuleID uint64 - capsule ID
			@param owner string - owner identity for the audit fact
	*/
	MarkCapsuleInactive(ctx context.Context, capsuleID uint64, owner string) error

	/*
		LogCapsuleDisclosure append a disclosure audit fact

		Disclosure does not mutate the capsule itself; only the fact is recorded.

			@param ctx context.Context - execution context
			@param caller string - disclosing caller identity
			@param capsule models.CapsuleRecord - the disclosed capsule
	*/
	LogCapsuleDisclosure(
		ctx context.Context, caller string, capsule models.CapsuleRecord,
	) error

	/*
		ListCapsuleIDsByOwner list the IDs of capsules created by an owner

		IDs are returned in creation order. Entries are never removed, even
		after withdrawal.

			@param ctx context.Context - execution context
			@param owner string - owner identity
			@returns ordered capsule ID list, possibly empty
	*/
	ListCapsuleIDsByOwner(ctx context.Context, owner string) ([]uint64, error)

	/*
		ListCapsules list capsules

			@param ctx context.Context - execution context
			@param filters CapsuleQueryFilter - entry listing filter
			@return list of capsules
	*/
	ListCapsules(ctx context.Context, filters CapsuleQueryFilter) ([]models.CapsuleRecord, error)

	/*
		CapsuleCount total number of capsules ever created

			@param ctx context.Context - execution context
			@returns capsule count
	*/
	CapsuleCount(ctx context.Context) (uint64, error)

	/*
		CapsuleCountByOwner number of capsules ever created by an owner

		Monotonic; withdrawal does not decrement it.

			@param ctx context.Context - execution context
			@param owner string - owner identity
			@returns capsule count for the owner
	*/
	CapsuleCountByOwner(ctx context.Context, owner string) (uint64, error)

	/*
		ActiveCapsuleCount number of capsules not yet withdrawn

		Computed by scanning the capsule table, so the cost grows with the
		total number of capsules ever created regardless of how many are still
		active. Callers needing this at scale should read the incremental
		counter on the registry parameter entry instead.

			@param ctx context.Context - execution context
			@returns active capsule count
	*/
	ActiveCapsuleCount(ctx context.Context) (uint64, error)
}

// databaseImpl implements Database
type databaseImpl struct {
	goutils.Component
	db        *gorm.DB
	validator *validator.Validate
}

// newDatabase define a new database client
func newDatabase(_ context.Context, sqlClient *gorm.DB) (Database, error) {
	logTags := log.Fields{"package": "timelock", "module": "db", "component": "db-client"}

	instance := &databaseImpl{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		db:        sqlClient,
		validator: validator.New(),
	}

	if err := models.RegisterWithValidator(instance.validator); err != nil {
		return nil, fmt.Errorf("failed to install custom validation macros [%w]", err)
	}

	return instance, nil
}
