package db

import (
	"context"
	"fmt"

	"github.com/alwitt/timelock/models"
)

// GlobalRegistryParamEntryID ID of the singleton registry parameter entry
const GlobalRegistryParamEntryID = "registry-parameters"

// getRegistryParamsEntry fetch the registry param entry
//
// If the entry does not exist, initialize a new one.
func (d *databaseImpl) getRegistryParamsEntry() (RegistryParamsDBEntry, error) {
	var entries []RegistryParamsDBEntry
	dbErr := d.db.Where("id = ?", GlobalRegistryParamEntryID).Find(&entries).Error
	if dbErr != nil {
		return RegistryParamsDBEntry{}, fmt.Errorf("failed to read registry params table [%w]", dbErr)
	}
	if len(entries) == 0 {
		// Make a new one
		newEntry := RegistryParamsDBEntry{
			RegistryParams: models.RegistryParams{
				ID:             GlobalRegistryParamEntryID,
				Paused:         false,
				NextCapsuleID:  0,
				ActiveCapsules: 0,
			},
		}
		if dbErr = d.db.Create(&newEntry).Error; dbErr != nil {
			return RegistryParamsDBEntry{}, fmt.Errorf(
				"failed to setup singleton registry params table [%w]", dbErr,
			)
		}
		return newEntry, nil
	}
	return entries[0], nil
}

/*
GetRegistryParams fetch the global singleton registry parameter entry

	@param ctx context.Context - execution context
	@returns the entry
*/
func (d *databaseImpl) GetRegistryParams(_ context.Context) (models.RegistryParams, error) {
	entry, err := d.getRegistryParamsEntry()
	if err != nil {
		return entry.RegistryParams, fmt.Errorf("unable to fetch registry parameter entry [%w]", err)
	}
	return entry.RegistryParams, nil
}

// updatePauseFlag update the registry parameter entry with new pause state
//
// The engine verifies the administrator identity and the current pause state
// before calling; this only persists the flip and its audit fact.
func (d *databaseImpl) updatePauseFlag(
	paused bool, admin string, eventType models.RegistryEventTypeENUMType,
) error {
	entry, err := d.getRegistryParamsEntry()
	if err != nil {
		return fmt.Errorf("unable to fetch registry parameter entry [%w]", err)
	}

	entry.Paused = paused
	if tmp := d.db.Save(&entry); tmp.Error != nil {
		return fmt.Errorf("pause state change update failed [%w]", tmp.Error)
	}

	// record this event
	if _, err := d.defineNewRegistryEvent(
		eventType, models.EventPauseStateChanged{Admin: admin},
	); err != nil {
		return fmt.Errorf("failed to log pause state change audit event [%w]", err)
	}

	return nil
}

/*
MarkEnginePaused flip the pause flag on

	@param ctx context.Context - execution context
	@param admin string - administrator identity for the audit fact
*/
func (d *databaseImpl) MarkEnginePaused(_ context.Context, admin string) error {
	return d.updatePauseFlag(true, admin, models.RegistryEventTypeEnginePaused)
}

/*
MarkEngineUnpaused flip the pause flag off

	@param ctx context.Context - execution context
	@param admin string - administrator identity for the audit fact
*/
func (d *databaseImpl) MarkEngineUnpaused(_ context.Context, admin string) error {
	return d.updatePauseFlag(false, admin, models.RegistryEventTypeEngineUnpaused)
}
