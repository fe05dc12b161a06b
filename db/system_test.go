package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alwitt/timelock/db"
	"github.com/alwitt/timelock/models"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

// TestDBRegistryParams verifies the lazily initialized singleton parameter
// entry and the pause flag transitions.
func TestDBRegistryParams(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	// Create a unique temporary DB file for this test
	testDB := fmt.Sprintf("/tmp/timelock_ut_%s.db", ulid.Make().String())
	log.WithField("db", testDB).Debug("Test database")

	uut, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)
	assert.Nil(uut.RunSQLInTransaction(utCtx, db.DefineTables))

	admin := uuid.NewString()

	// -------------------------------------------------------------------------
	// 1 – First read initializes the singleton with defaults
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		params, err := dbClient.GetRegistryParams(ctx)
		if err != nil {
			return err
		}
		assert.Equal(db.GlobalRegistryParamEntryID, params.ID)
		assert.False(params.Paused)
		assert.Equal(uint64(0), params.NextCapsuleID)
		assert.Equal(uint64(0), params.ActiveCapsules)
		return nil
	})
	assert.Nil(err)

	// -------------------------------------------------------------------------
	// 2 – Pause the engine
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		return dbClient.MarkEnginePaused(ctx, admin)
	})
	assert.Nil(err)

	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		params, err := dbClient.GetRegistryParams(ctx)
		if err != nil {
			return err
		}
		assert.True(params.Paused)
		return nil
	})
	assert.Nil(err)

	// -------------------------------------------------------------------------
	// 3 – Unpause the engine
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		return dbClient.MarkEngineUnpaused(ctx, admin)
	})
	assert.Nil(err)

	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		params, err := dbClient.GetRegistryParams(ctx)
		if err != nil {
			return err
		}
		assert.False(params.Paused)
		return nil
	})
	assert.Nil(err)

	// -------------------------------------------------------------------------
	// 4 – Both transitions left audit facts naming the administrator
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		events, err := dbClient.ListRegistryEvents(ctx, db.RegistryEventQueryFilter{
			EventTypes: []models.RegistryEventTypeENUMType{
				models.RegistryEventTypeEnginePaused,
				models.RegistryEventTypeEngineUnpaused,
			},
		})
		if err != nil {
			return err
		}
		assert.Len(events, 2)
		assert.Equal(models.RegistryEventTypeEnginePaused, events[0].EventType)
		assert.Equal(models.RegistryEventTypeEngineUnpaused, events[1].EventType)

		checker := validator.New()
		assert.Nil(models.RegisterWithValidator(checker))
		for _, event := range events {
			parsed, err := event.ParseMetadata(checker)
			if err != nil {
				return err
			}
			metadata, ok := parsed.(models.EventPauseStateChanged)
			assert.True(ok)
			assert.Equal(admin, metadata.Admin)
		}
		return nil
	})
	assert.Nil(err)
}
