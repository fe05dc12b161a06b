package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alwitt/timelock/models"
	"gorm.io/gorm"
)

// ======================================================================================
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
func (d *databaseImpl) AppendCapsule(
	_ context.Context,
	owner string,
	fingerprint string,
	label string,
	unlockAt time.Time,
	createdAt time.Time,
) (models.CapsuleRecord, error) {
	params, err := d.getRegistryParamsEntry()
	if err != nil {
		return models.CapsuleRecord{}, fmt.Errorf(
			"unable to fetch registry parameter entry [%w]", err,
		)
	}

	newEntry := CapsuleRecordDBEntry{
		CapsuleRecord: models.CapsuleRecord{
			ID:          params.NextCapsuleID,
			Owner:       owner,
			Fingerprint: fingerprint,
			UnlockAt:    unlockAt,
			Label:       label,
			Active:      true,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		},
	}

	if err := d.validator.Struct(&newEntry); err != nil {
		return models.CapsuleRecord{}, fmt.Errorf(
			"new capsule for '%s' is not valid [%w]", owner, err,
		)
	}

	if tmp := d.db.Create(&newEntry); tmp.Error != nil {
		return models.CapsuleRecord{}, fmt.Errorf(
			"new capsule for '%s' failed insert [%w]", owner, tmp.Error,
		)
	}

	// Advance the monotonic counters
	params.NextCapsuleID++
	params.ActiveCapsules++
	if tmp := d.db.Save(&params); tmp.Error != nil {
		return models.CapsuleRecord{}, fmt.Errorf(
			"registry counter update failed [%w]", tmp.Error,
		)
	}

	// Record this event
	if _, err := d.defineNewRegistryEvent(
		models.RegistryEventTypeCapsuleCreated,
		models.EventCapsuleCreated{
			Owner:     owner,
			CapsuleID: newEntry.ID,
			Label:     label,
			UnlockAt:  unlockAt,
			CreatedAt: createdAt,
		},
	); err != nil {
		return models.CapsuleRecord{}, fmt.Errorf(
			"failed to log capsule %d creation audit event [%w]", newEntry.ID, err,
		)
	}

	return newEntry.CapsuleRecord, nil
}

// getCapsuleEntry find a capsule by ID
func (d *databaseImpl) getCapsuleEntry(capsuleID uint64) (CapsuleRecordDBEntry, error) {
	var entry CapsuleRecordDBEntry
	err := d.db.Where("id = ?", capsuleID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = models.NewFailure(
			models.FailureKindNotFound, "capsule %d does not exist", capsuleID,
		)
	}
	return entry, err
}

/*
GetCapsule fetch a capsule by ID

	@param ctx context.Context - execution context
	@param capsuleID uint64 - capsule ID
	@returns capsule entry, by value
*/
func (d *databaseImpl) GetCapsule(
	_ context.Context, capsuleID uint64,
) (models.CapsuleRecord, error) {
	entry, err := d.getCapsuleEntry(capsuleID)
	if err != nil {
		return models.CapsuleRecord{}, fmt.Errorf("failed to fetch capsule %d [%w]", capsuleID, err)
	}

	return entry.CapsuleRecord, nil
}

/*
MarkCapsuleInactive flip a capsule's active flag to false

The engine guarantees this is called at most once per capsule and only
while the capsule is currently active.

	@param ctx context.Context - execution context
	@param capsuleID uint64 - capsule ID
	@param owner string - owner identity for the audit fact
*/
func (d *databaseImpl) MarkCapsuleInactive(
	_ context.Context, capsuleID uint64, owner string,
) error {
	if _, err := d.getCapsuleEntry(capsuleID); err != nil {
		return fmt.Errorf("failed to fetch capsule %d [%w]", capsuleID, err)
	}

	if tmp := d.db.
		Model(&CapsuleRecordDBEntry{}).
		Where("id = ?", capsuleID).
		Update("active", false); tmp.Error != nil {
		return fmt.Errorf("failed to deactivate capsule %d [%w]", capsuleID, tmp.Error)
	}

	// Maintain the incremental active counter
	params, err := d.getRegistryParamsEntry()
	if err != nil {
		return fmt.Errorf("unable to fetch registry parameter entry [%w]", err)
	}
	params.ActiveCapsules--
	if tmp := d.db.Save(&params); tmp.Error != nil {
		return fmt.Errorf("registry counter update failed [%w]", tmp.Error)
	}

	// Record this event
	if _, err := d.defineNewRegistryEvent(
		models.RegistryEventTypeCapsuleWithdrawn,
		models.EventCapsuleWithdrawn{Owner: owner, CapsuleID: capsuleID},
	); err != nil {
		return fmt.Errorf(
			"failed to log capsule %d withdrawal audit event [%w]", capsuleID, err,
		)
	}

	return nil
}

/*
LogCapsuleDisclosure append a disclosure audit fact

Disclosure does not mutate the capsule itself; only the fact is recorded.

	@param ctx context.Context - execution context
	@param caller string - disclosing caller identity
	@param capsule models.CapsuleRecord - the disclosed capsule
*/
func (d *databaseImpl) LogCapsuleDisclosure(
	_ context.Context, caller string, capsule models.CapsuleRecord,
) error {
	if _, err := d.defineNewRegistryEvent(
		models.RegistryEventTypeCapsuleDisclosed,
		models.EventCapsuleDisclosed{Caller: caller, CapsuleID: capsule.ID, Owner: capsule.Owner},
	); err != nil {
		return fmt.Errorf(
			"failed to log capsule %d disclosure audit event [%w]", capsule.ID, err,
		)
	}
	return nil
}

/*
ListCapsuleIDsByOwner list the IDs of capsules created by an owner

IDs are returned in creation order. Entries are never removed, even
after withdrawal.

	@param ctx context.Context - execution context
	@param owner string - owner identity
	@returns ordered capsule ID list, possibly empty
*/
func (d *databaseImpl) ListCapsuleIDsByOwner(
	_ context.Context, owner string,
) ([]uint64, error) {
	capsuleIDs := []uint64{}
	if tmp := d.db.
		Model(&CapsuleRecordDBEntry{}).
		Where("owner = ?", owner).
		Order("id").
		Pluck("id", &capsuleIDs); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list capsules of '%s' [%w]", owner, tmp.Error)
	}

	return capsuleIDs, nil
}

/*
ListCapsules list capsules

	@param ctx context.Context - execution context
	@param filters CapsuleQueryFilter - entry listing filter
	@return list of capsules
*/
func (d *databaseImpl) ListCapsules(
	_ context.Context, filters CapsuleQueryFilter,
) ([]models.CapsuleRecord, error) {
	query := d.db.Model(&CapsuleRecordDBEntry{})

	if filters.TargetOwner != nil {
		query = query.Where("owner = ?", *filters.TargetOwner)
	}
	if filters.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	if filters.Limit != nil {
		query = query.Limit(*filters.Limit)
	}
	if filters.Offset != nil {
		query = query.Offset(*filters.Offset)
	}

	query = query.Order("id")

	var entries []CapsuleRecordDBEntry
	if tmp := query.Find(&entries); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list capsules [%w]", tmp.Error)
	}

	result := []models.CapsuleRecord{}
	for _, entry := range entries {
		result = append(result, entry.CapsuleRecord)
	}

	return result, nil
}

/*
CapsuleCount total number of capsules ever created

	@param ctx context.Context - execution context
	@returns capsule count
*/
func (d *databaseImpl) CapsuleCount(_ context.Context) (uint64, error) {
	var count int64
	if tmp := d.db.Model(&CapsuleRecordDBEntry{}).Count(&count); tmp.Error != nil {
		return 0, fmt.Errorf("failed to count capsules [%w]", tmp.Error)
	}
	return uint64(count), nil
}

/*
CapsuleCountByOwner number of capsules ever created by an owner

Monotonic; withdrawal does not decrement it.

	@param ctx context.Context - execution context
	@param owner string - owner identity
	@returns capsule count for the owner
*/
func (d *databaseImpl) CapsuleCountByOwner(_ context.Context, owner string) (uint64, error) {
	var count int64
	if tmp := d.db.
		Model(&CapsuleRecordDBEntry{}).
		Where("owner = ?", owner).
		Count(&count); tmp.Error != nil {
		return 0, fmt.Errorf("failed to count capsules of '%s' [%w]", owner, tmp.Error)
	}
	return uint64(count), nil
}

/*
ActiveCapsuleCount number of capsules not yet withdrawn

Computed by scanning the capsule table, so the cost grows with the total
number of capsules ever created regardless of how many are still active.
Callers needing this at scale should read the incremental counter on the
registry parameter entry instead.

	@param ctx context.Context - execution context
	@returns active capsule count
*/
func (d *databaseImpl) ActiveCapsuleCount(_ context.Context) (uint64, error) {
	var count int64
	if tmp := d.db.
		Model(&CapsuleRecordDBEntry{}).
		Where("active = ?", true).
		Count(&count); tmp.Error != nil {
		return 0, fmt.Errorf("failed to count active capsules [%w]", tmp.Error)
	}
	return uint64(count), nil
}
