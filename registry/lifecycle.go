// Package registry - time-gated capsule lifecycle engine
package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/goutils"
	"github.com/alwitt/timelock/db"
	"github.com/alwitt/timelock/models"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
)

const (
	// MaxLabelLength longest allowed capsule label
	MaxLabelLength = 100

	// MaxUnlockHorizon furthest a capsule's unlock time may sit beyond its
	// creation time
	MaxUnlockHorizon = 3650 * 24 * time.Hour
)

/*
CapsuleRegistry the capsule lifecycle engine. It is solely responsible for
enforcing time-gating, ownership, and pause rules over the capsule store.

Every operation validates its preconditions against committed store state and
the injected clock, applies at most one state transition, and records the
resulting audit fact in the same transaction. Failed operations have no side
effects, so callers may always retry safely.
*/
type CapsuleRegistry interface {
	/*
		Create commit a new time-gated capsule

		Preconditions checked in order: engine not paused, fingerprint
		non-empty, unlock time strictly in the future, unlock time within the
		allowed horizon, label within length bound.

			@param ctx context.Context - execution context
			@param caller string - authenticated caller identity, becomes the owner
			@param fingerprint string - opaque content hash to commit
			@param unlockAt time.Time - timestamp after which disclosure is allowed
			@param label string - free-text caption
			@param activeDBClient Database - existing database transaction
			@returns the assigned capsule ID
	*/
	Create(
		ctx context.Context,
		caller string,
		fingerprint string,
		unlockAt time.Time,
		label string,
		activeDBClient db.Database,
	) (uint64, error)

	/*
		Disclose reveal a capsule's fingerprint once past its unlock time

		Any caller may disclose; ownership is not required. Disclosure is
		repeatable and non-mutating; each call re-records the disclosure fact.

			@param ctx context.Context - execution context
			@param caller string - authenticated caller identity
			@param capsuleID uint64 - capsule ID
			@param activeDBClient Database - existing database transaction
			@returns the disclosed capsule content
	*/
	Disclose(
		ctx context.Context, caller string, capsuleID uint64, activeDBClient db.Database,
	) (models.Disclosure, error)

	/*
		Withdraw permanently deactivate a capsule before its unlock time

		Owner only, and only strictly before the unlock time. One-way: a
		withdrawn capsule can never be disclosed or reactivated.

			@param ctx context.Context - execution context
			@param caller string - authenticated caller identity
			@param capsuleID uint64 - capsule ID
			@param activeDBClient Database - existing database transaction
	*/
	Withdraw(
		ctx context.Context, caller string, capsuleID uint64, activeDBClient db.Database,
	) error

	/*
		Info fetch a fingerprint-free view of an active capsule

		Not pause-gated. The capsule must still be active.

			@param ctx context.Context - execution context
			@param capsuleID uint64 - capsule ID
			@param activeDBClient Database - existing database transaction
			@returns capsule metadata
	*/
	Info(
		ctx context.Context, capsuleID uint64, activeDBClient db.Database,
	) (models.CapsuleInfo, error)

	/*
		TimeUntilUnlock remaining duration before a capsule unlocks

		Returns 0 once the capsule is already unlockable.

			@param ctx context.Context - execution context
			@param capsuleID uint64 - capsule ID
			@param activeDBClient Database - existing database transaction
			@returns remaining lock duration
	*/
	TimeUntilUnlock(
		ctx context.Context, capsuleID uint64, activeDBClient db.Database,
	) (time.Duration, error)

	/*
		ListMine list the IDs of capsules created by the caller

			@param ctx context.Context - execution context
			@param caller string - authenticated caller identity
			@param activeDBClient Database - existing database transaction
			@returns ordered capsule ID list, possibly empty
	*/
	ListMine(ctx context.Context, caller string, activeDBClient db.Database) ([]uint64, error)

	/*
		ListFor list the IDs of capsules created by an owner

			@param ctx context.Context - execution context
			@param owner string - owner identity
			@param activeDBClient Database - existing database transaction
			@returns ordered capsule ID list, possibly empty
	*/
	ListFor(ctx context.Context, owner string, activeDBClient db.Database) ([]uint64, error)

	/*
		ActiveCount number of capsules not yet withdrawn

		Scans the capsule table; cost grows with the total number of capsules
		ever created. Use ActiveCountFast when that matters.

			@param ctx context.Context - execution context
			@param activeDBClient Database - existing database transaction
			@returns active capsule count
	*/
	ActiveCount(ctx context.Context, activeDBClient db.Database) (uint64, error)

	/*
		ActiveCountFast number of capsules not yet withdrawn, from the
		incrementally maintained counter

			@param ctx context.Context - execution context
			@param activeDBClient Database - existing database transaction
			@returns active capsule count
	*/
	ActiveCountFast(ctx context.Context, activeDBClient db.Database) (uint64, error)

	/*
		TotalCapsuleCount total number of capsules ever created

			@param ctx context.Context - execution context
			@param activeDBClient Database - existing database transaction
			@returns capsule count
	*/
	TotalCapsuleCount(ctx context.Context, activeDBClient db.Database) (uint64, error)

	/*
		CreatedCountFor number of capsules ever created by an owner

		Monotonic; withdrawal does not decrement it.

			@param ctx context.Context - execution context
			@param owner string - owner identity
			@param activeDBClient Database - existing database transaction
			@returns capsule count for the owner
	*/
	CreatedCountFor(
		ctx context.Context, owner string, activeDBClient db.Database,
	) (uint64, error)

	/*
		GetCapsule direct by-ID capsule lookup

		Works for withdrawn capsules as well. The fingerprint is redacted
		unless the capsule is active and past its unlock time.

			@param ctx context.Context - execution context
			@param capsuleID uint64 - capsule ID
			@param activeDBClient Database - existing database transaction
			@returns capsule entry
	*/
	GetCapsule(
		ctx context.Context, capsuleID uint64, activeDBClient db.Database,
	) (models.CapsuleRecord, error)

	/*
		Pause engage the administrative circuit breaker

		Administrator only. Creation, disclosure, and withdrawal are rejected
		while paused; pure reads are unaffected.

			@param ctx context.Context - execution context
			@param caller string - authenticated caller identity
			@param activeDBClient Database - existing database transaction
	*/
	Pause(ctx context.Context, caller string, activeDBClient db.Database) error

	/*
		Unpause release the administrative circuit breaker

		Administrator only.

			@param ctx context.Context - execution context
			@param caller string - authenticated caller identity
			@param activeDBClient Database - existing database transaction
	*/
	Unpause(ctx context.Context, caller string, activeDBClient db.Database) error

	/*
		IsPaused whether the engine is currently paused

			@param ctx context.Context - execution context
			@param activeDBClient Database - existing database transaction
			@returns pause flag
	*/
	IsPaused(ctx context.Context, activeDBClient db.Database) (bool, error)

	/*
		Administrator the identity allowed to pause and unpause the engine

			@returns administrator identity
	*/
	Administrator() string

	/*
		CurrentTime the engine's clock reading, exposed for client convenience

			@returns current time
	*/
	CurrentTime() time.Time
}

// capsuleRegistry implements CapsuleRegistry
type capsuleRegistry struct {
	goutils.Component

	persistence db.Client
	validator   *validator.Validate

	clock Clock
	admin string
}

// CapsuleRegistryParams capsule lifecycle engine init parameters
type CapsuleRegistryParams struct {
	// Persistence persistence layer client
	Persistence db.Client `validate:"-"`
	// Administrator identity allowed to pause and unpause the engine
	Administrator string `validate:"required"`
	// TimeSource trusted clock read for all time gating
	TimeSource Clock `validate:"required"`
}

/*
NewCapsuleRegistry define new capsule lifecycle engine

	@param ctx context.Context - execution context
	@param params CapsuleRegistryParams - engine parameters
	@returns engine instance
*/
func NewCapsuleRegistry(
	_ context.Context, params CapsuleRegistryParams,
) (CapsuleRegistry, error) {
	logTags := log.Fields{"module": "registry", "component": "capsule-registry"}

	instance := &capsuleRegistry{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		persistence: params.Persistence,
		validator:   validator.New(),
		clock:       params.TimeSource,
		admin:       params.Administrator,
	}
	if err := models.RegisterWithValidator(instance.validator); err != nil {
		return nil, fmt.Errorf("failed to install custom validation macros [%w]", err)
	}

	if err := instance.validator.Struct(&params); err != nil {
		return nil, fmt.Errorf("invalid engine init parameters [%w]", err)
	}

	return instance, nil
}

// requireNotPaused fail with an ENGINE_PAUSED kind when the pause flag is set
func (r *capsuleRegistry) requireNotPaused(ctx context.Context, dbClient db.Database) error {
	params, err := dbClient.GetRegistryParams(ctx)
	if err != nil {
		return fmt.Errorf("unable to fetch registry parameter entry [%w]", err)
	}
	if params.Paused {
		return models.NewFailure(models.FailureKindEnginePaused, "engine is paused")
	}
	return nil
}

/*
Create commit a new time-gated capsule

	@param ctx context.Context - execution context
	@param caller string - authenticated caller identity, becomes the owner
	@param fingerprint string - opaque content hash to commit
	@param unlockAt time.Time - timestamp after which disclosure is allowed
	@param label string - free-text caption
	@param activeDBClient Database - existing database transaction
	@returns the assigned capsule ID
*/
func (r *capsuleRegistry) Create(
	ctx context.Context,
	caller string,
	fingerprint string,
	unlockAt time.Time,
	label string,
	activeDBClient db.Database,
) (uint64, error) {
	var capsuleID uint64

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			now := r.clock.Now()

			if err := r.requireNotPaused(dbCtx, dbClient); err != nil {
				return err
			}
			if fingerprint == "" {
				return models.NewFailure(
					models.FailureKindInvalidArgument, "fingerprint must not be empty",
				)
			}
			if !unlockAt.After(now) {
				return models.NewFailure(
					models.FailureKindTimingViolation, "unlock time must be strictly in the future",
				)
			}
			if unlockAt.After(now.Add(MaxUnlockHorizon)) {
				return models.NewFailure(
					models.FailureKindTimingViolation,
					"unlock time exceeds the %v horizon", MaxUnlockHorizon,
				)
			}
			if len(label) > MaxLabelLength {
				return models.NewFailure(
					models.FailureKindInvalidArgument,
					"label exceeds %d characters", MaxLabelLength,
				)
			}

			entry, err := dbClient.AppendCapsule(dbCtx, caller, fingerprint, label, unlockAt, now)
			if err != nil {
				return fmt.Errorf("failed to store new capsule [%w]", err)
			}
			capsuleID = entry.ID
			return nil
		},
	); dbErr != nil {
		return 0, dbErr
	}

	return capsuleID, nil
}

/*
Disclose reveal a capsule's fingerprint once past its unlock time

	@param ctx context.Context - execution context
	@param caller string - authenticated caller identity
	@param capsuleID uint64 - capsule ID
	@param activeDBClient Database - existing database transaction
	@returns the disclosed capsule content
*/
func (r *capsuleRegistry) Disclose(
	ctx context.Context, caller string, capsuleID uint64, activeDBClient db.Database,
) (models.Disclosure, error) {
	var disclosed models.Disclosure

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			now := r.clock.Now()

			if err := r.requireNotPaused(dbCtx, dbClient); err != nil {
				return err
			}

			capsule, err := dbClient.GetCapsule(dbCtx, capsuleID)
			if err != nil {
				return err
			}
			if !capsule.Active {
				return models.NewFailure(
					models.FailureKindInvalidState, "capsule %d was withdrawn", capsuleID,
				)
			}
			if now.Before(capsule.UnlockAt) {
				return models.NewFailure(
					models.FailureKindTimingViolation, "capsule %d is still locked", capsuleID,
				)
			}

			if err := dbClient.LogCapsuleDisclosure(dbCtx, caller, capsule); err != nil {
				return fmt.Errorf("failed to record disclosure of capsule %d [%w]", capsuleID, err)
			}

			disclosed = models.Disclosure{
				ID:          capsule.ID,
				Fingerprint: capsule.Fingerprint,
				Label:       capsule.Label,
				Owner:       capsule.Owner,
				CreatedAt:   capsule.CreatedAt,
			}
			return nil
		},
	); dbErr != nil {
		return models.Disclosure{}, dbErr
	}

	return disclosed, nil
}

/*
Withdraw permanently deactivate a capsule before its unlock time

	@param ctx context.Context - execution context
	@param caller string - authenticated caller identity
	@param capsuleID uint64 - capsule ID
	@param activeDBClient Database - existing database transaction
*/
func (r *capsuleRegistry) Withdraw(
	ctx context.Context, caller string, capsuleID uint64, activeDBClient db.Database,
) error {
	return db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			now := r.clock.Now()

			if err := r.requireNotPaused(dbCtx, dbClient); err != nil {
				return err
			}

			capsule, err := dbClient.GetCapsule(dbCtx, capsuleID)
			if err != nil {
				return err
			}
			if !capsule.Active {
				return models.NewFailure(
					models.FailureKindInvalidState, "capsule %d was already withdrawn", capsuleID,
				)
			}
			if caller != capsule.Owner {
				return models.NewFailure(
					models.FailureKindPermissionDenied,
					"caller is not the owner of capsule %d", capsuleID,
				)
			}
			if !now.Before(capsule.UnlockAt) {
				return models.NewFailure(
					models.FailureKindTimingViolation,
					"capsule %d already unlocked; withdrawal window closed", capsuleID,
				)
			}

			if err := dbClient.MarkCapsuleInactive(dbCtx, capsuleID, caller); err != nil {
				return fmt.Errorf("failed to withdraw capsule %d [%w]", capsuleID, err)
			}
			return nil
		},
	)
}

/*
Info fetch a fingerprint-free view of an active capsule

	@param ctx context.Context - execution context
	@param capsuleID uint64 - capsule ID
	@param activeDBClient Database - existing database transaction
	@returns capsule metadata
*/
func (r *capsuleRegistry) Info(
	ctx context.Context, capsuleID uint64, activeDBClient db.Database,
) (models.CapsuleInfo, error) {
	var info models.CapsuleInfo

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			capsule, err := r.getActiveCapsule(dbCtx, dbClient, capsuleID)
			if err != nil {
				return err
			}

			info = models.CapsuleInfo{
				ID:        capsule.ID,
				Owner:     capsule.Owner,
				Label:     capsule.Label,
				UnlockAt:  capsule.UnlockAt,
				CreatedAt: capsule.CreatedAt,
				Locked:    r.clock.Now().Before(capsule.UnlockAt),
				Active:    capsule.Active,
			}
			return nil
		},
	); dbErr != nil {
		return models.CapsuleInfo{}, dbErr
	}

	return info, nil
}

// getActiveCapsule fetch a capsule which must still be active
func (r *capsuleRegistry) getActiveCapsule(
	ctx context.Context, dbClient db.Database, capsuleID uint64,
) (models.CapsuleRecord, error) {
	capsule, err := dbClient.GetCapsule(ctx, capsuleID)
	if err != nil {
		return models.CapsuleRecord{}, err
	}
	if !capsule.Active {
		return models.CapsuleRecord{}, models.NewFailure(
			models.FailureKindInvalidState, "capsule %d was withdrawn", capsuleID,
		)
	}
	return capsule, nil
}

/*
TimeUntilUnlock remaining duration before a capsule unlocks

	@param ctx context.Context - execution context
	@param capsuleID uint64 - capsule ID
	@param activeDBClient Database - existing database transaction
	@returns remaining lock duration
*/
func (r *capsuleRegistry) TimeUntilUnlock(
	ctx context.Context, capsuleID uint64, activeDBClient db.Database,
) (time.Duration, error) {
	var remaining time.Duration

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			capsule, err := r.getActiveCapsule(dbCtx, dbClient, capsuleID)
			if err != nil {
				return err
			}

			now := r.clock.Now()
			if !now.Before(capsule.UnlockAt) {
				remaining = 0
				return nil
			}
			remaining = capsule.UnlockAt.Sub(now)
			return nil
		},
	); dbErr != nil {
		return 0, dbErr
	}

	return remaining, nil
}

/*
ListMine list the IDs of capsules created by the caller

	@param ctx context.Context - execution context
	@param caller string - authenticated caller identity
	@param activeDBClient Database - existing database transaction
	@returns ordered capsule ID list, possibly empty
*/
func (r *capsuleRegistry) ListMine(
	ctx context.Context, caller string, activeDBClient db.Database,
) ([]uint64, error) {
	return r.ListFor(ctx, caller, activeDBClient)
}

/*
ListFor list the IDs of capsules created by an owner

	@param ctx context.Context - execution context
	@param owner string - owner identity
	@param activeDBClient Database - existing database transaction
	@returns ordered capsule ID list, possibly empty
*/
func (r *capsuleRegistry) ListFor(
	ctx context.Context, owner string, activeDBClient db.Database,
) ([]uint64, error) {
	var capsuleIDs []uint64

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			ids, err := dbClient.ListCapsuleIDsByOwner(dbCtx, owner)
			if err != nil {
				return err
			}
			capsuleIDs = ids
			return nil
		},
	); dbErr != nil {
		return nil, dbErr
	}

	return capsuleIDs, nil
}

/*
ActiveCount number of capsules not yet withdrawn

	@param ctx context.Context - execution context
	@param activeDBClient Database - existing database transaction
	@returns active capsule count
*/
func (r *capsuleRegistry) ActiveCount(
	ctx context.Context, activeDBClient db.Database,
) (uint64, error) {
	var count uint64

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			c, err := dbClient.ActiveCapsuleCount(dbCtx)
			if err != nil {
				return err
			}
			count = c
			return nil
		},
	); dbErr != nil {
		return 0, dbErr
	}

	return count, nil
}

/*
ActiveCountFast number of capsules not yet withdrawn, from the incrementally
maintained counter

	@param ctx context.Context - execution context
	@param activeDBClient Database - existing database transaction
	@returns active capsule count
*/
func (r *capsuleRegistry) ActiveCountFast(
	ctx context.Context, activeDBClient db.Database,
) (uint64, error) {
	var count uint64

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			params, err := dbClient.GetRegistryParams(dbCtx)
			if err != nil {
				return err
			}
			count = params.ActiveCapsules
			return nil
		},
	); dbErr != nil {
		return 0, dbErr
	}

	return count, nil
}

/*
TotalCapsuleCount total number of capsules ever created

	@param ctx context.Context - execution context
	@param activeDBClient Database - existing database transaction
	@returns capsule count
*/
func (r *capsuleRegistry) TotalCapsuleCount(
	ctx context.Context, activeDBClient db.Database,
) (uint64, error) {
	var count uint64

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			c, err := dbClient.CapsuleCount(dbCtx)
			if err != nil {
				return err
			}
			count = c
			return nil
		},
	); dbErr != nil {
		return 0, dbErr
	}

	return count, nil
}

/*
CreatedCountFor number of capsules ever created by an owner

	@param ctx context.Context - execution context
	@param owner string - owner identity
	@param activeDBClient Database - existing database transaction
	@returns capsule count for the owner
*/
func (r *capsuleRegistry) CreatedCountFor(
	ctx context.Context, owner string, activeDBClient db.Database,
) (uint64, error) {
	var count uint64

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			c, err := dbClient.CapsuleCountByOwner(dbCtx, owner)
			if err != nil {
				return err
			}
			count = c
			return nil
		},
	); dbErr != nil {
		return 0, dbErr
	}

	return count, nil
}

/*
GetCapsule direct by-ID capsule lookup

The fingerprint is redacted unless the capsule is active and past its unlock
time.

	@param ctx context.Context - execution context
	@param capsuleID uint64 - capsule ID
	@param activeDBClient Database - existing database transaction
	@returns capsule entry
*/
func (r *capsuleRegistry) GetCapsule(
	ctx context.Context, capsuleID uint64, activeDBClient db.Database,
) (models.CapsuleRecord, error) {
	var capsule models.CapsuleRecord

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			entry, err := dbClient.GetCapsule(dbCtx, capsuleID)
			if err != nil {
				return err
			}
			if !entry.Disclosable(r.clock.Now()) {
				entry.Fingerprint = ""
			}
			capsule = entry
			return nil
		},
	); dbErr != nil {
		return models.CapsuleRecord{}, dbErr
	}

	return capsule, nil
}

// changePauseState shared administrator checks for Pause and Unpause
func (r *capsuleRegistry) changePauseState(
	ctx context.Context, caller string, paused bool, activeDBClient db.Database,
) error {
	return db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			if caller != r.admin {
				return models.NewFailure(
					models.FailureKindPermissionDenied, "caller is not the administrator",
				)
			}

			params, err := dbClient.GetRegistryParams(dbCtx)
			if err != nil {
				return fmt.Errorf("unable to fetch registry parameter entry [%w]", err)
			}
			if params.Paused == paused {
				if paused {
					return models.NewFailure(models.FailureKindInvalidState, "engine already paused")
				}
				return models.NewFailure(models.FailureKindInvalidState, "engine is not paused")
			}

			if paused {
				return dbClient.MarkEnginePaused(dbCtx, caller)
			}
			return dbClient.MarkEngineUnpaused(dbCtx, caller)
		},
	)
}

/*
Pause engage the administrative circuit breaker

	@param ctx context.Context - execution context
	@param caller string - authenticated caller identity
	@param activeDBClient Database - existing database transaction
*/
func (r *capsuleRegistry) Pause(
	ctx context.Context, caller string, activeDBClient db.Database,
) error {
	return r.changePauseState(ctx, caller, true, activeDBClient)
}

/*
Unpause release the administrative circuit breaker

	@param ctx context.Context - execution context
	@param caller string - authenticated caller identity
	@param activeDBClient Database - existing database transaction
*/
func (r *capsuleRegistry) Unpause(
	ctx context.Context, caller string, activeDBClient db.Database,
) error {
	return r.changePauseState(ctx, caller, false, activeDBClient)
}

/*
IsPaused whether the engine is currently paused

	@param ctx context.Context - execution context
	@param activeDBClient Database - existing database transaction
	@returns pause flag
*/
func (r *capsuleRegistry) IsPaused(
	ctx context.Context, activeDBClient db.Database,
) (bool, error) {
	var paused bool

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, r.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			params, err := dbClient.GetRegistryParams(dbCtx)
			if err != nil {
				return err
			}
			paused = params.Paused
			return nil
		},
	); dbErr != nil {
		return false, dbErr
	}

	return paused, nil
}

/*
Administrator the identity allowed to pause and unpause the engine

	@returns administrator identity
*/
func (r *capsuleRegistry) Administrator() string {
	return r.admin
}

/*
CurrentTime the engine's clock reading, exposed for client convenience

	@returns current time
*/
func (r *capsuleRegistry) CurrentTime() time.Time {
	return r.clock.Now()
}
