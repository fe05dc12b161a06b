// Package db - persistence layer
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alwitt/timelock/models"
	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
)

// defineNewRegistryEvent record a new registry event
func (d *databaseImpl) defineNewRegistryEvent(
	eventType models.RegistryEventTypeENUMType, metadata interface{},
) (models.RegistryEventAudit, error) {

	newEntry := RegistryEventAuditDBEntry{
		RegistryEventAudit: models.RegistryEventAudit{ID: ulid.Make().String(), EventType: eventType},
	}

	if metadata != nil {
		if err := d.validator.Struct(metadata); err != nil {
			return models.RegistryEventAudit{}, fmt.Errorf(
				"new registry event '%s' metadata entry is not valid [%w]", eventType, err,
			)
		}

		metadataStr, _ := json.Marshal(&metadata)
		newEntry.Metadata = datatypes.JSON(metadataStr)
	}

	if err := d.validator.Struct(&newEntry); err != nil {
		return models.RegistryEventAudit{}, fmt.Errorf(
			"new registry event '%s' entry is not valid [%w]", eventType, err,
		)
	}

	if tmp := d.db.Create(&newEntry); tmp.Error != nil {
		return models.RegistryEventAudit{}, fmt.Errorf(
			"new registry event '%s' insert failed [%w]", eventType, tmp.Error,
		)
	}

	return newEntry.RegistryEventAudit, nil
}

/*
ListRegistryEvents list captured registry events

	@param ctx context.Context - execution context
	@param filters RegistryEventQueryFilter - entry listing filter
	@return list of registry events
*/
func (d *databaseImpl) ListRegistryEvents(
	_ context.Context, filters RegistryEventQueryFilter,
) ([]models.RegistryEventAudit, error) {
	query := d.db.Model(&RegistryEventAuditDBEntry{})

	if len(filters.EventTypes) > 0 {
		query = query.Where("type in ?", filters.EventTypes)
	}

	if filters.EventsAfter != nil {
		query = query.Where("created_at >= ?", *filters.EventsAfter)
	}
	if filters.EventsBefore != nil {
		query = query.Where("created_at <= ?", *filters.EventsBefore)
	}

	if filters.Limit != nil {
		query = query.Limit(*filters.Limit)
	}
	if filters.Offset != nil {
		query = query.Offset(*filters.Offset)
	}

	// ULID entry IDs break ties within one timestamp granularity
	query = query.Order("created_at").Order("id")

	var entries []RegistryEventAuditDBEntry
	if tmp := query.Find(&entries); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list captured registry events [%w]", tmp.Error)
	}

	result := []models.RegistryEventAudit{}
	for _, entry := range entries {
		result = append(result, entry.RegistryEventAudit)
	}

	return result, nil
}
