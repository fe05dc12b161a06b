package timelock_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alwitt/timelock"
	"github.com/alwitt/timelock/db"
	"github.com/alwitt/timelock/models"
	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

// steppableClock test clock whose current time is steered manually
type steppableClock struct {
	current time.Time
}

func (c *steppableClock) Now() time.Time {
	return c.current
}

// TestCapsuleRegistryEndToEnd performs a full end-to-end test of the capsule
// registry. A temporary SQLite database is created, the
// `timelock.NewCapsuleRegistry` constructor is exercised, and a capsule is
// committed, queried while locked, disclosed after its unlock time, and a
// second capsule is withdrawn before unlock.
func TestCapsuleRegistryEndToEnd(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	// ------------------------------------------------------------------
	// 1. Create a temporary SQLite database
	// ------------------------------------------------------------------
	ctx := context.Background()

	testDB := fmt.Sprintf("/tmp/timelock_ut_%s.db", ulid.Make().String())
	dbClient, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)

	// Create tables
	assert.Nil(dbClient.RunSQLInTransaction(ctx, db.DefineTables))

	// ------------------------------------------------------------------
	// 2. Create the capsule registry with a steerable clock
	// ------------------------------------------------------------------
	admin := uuid.NewString()
	clock := &steppableClock{current: time.Date(2031, 3, 15, 9, 0, 0, 0, time.UTC)}

	uut, err := timelock.NewCapsuleRegistry(
		ctx, db.GetSqliteDialector(testDB), logger.Error, admin, clock,
	)
	assert.Nil(err)
	assert.Equal(admin, uut.Administrator())

	// ------------------------------------------------------------------
	// 3. Commit the first capsule
	// ------------------------------------------------------------------
	owner := uuid.NewString()
	fingerprint := uuid.NewString()
	unlockAt := clock.current.Add(10 * time.Second)

	capsuleID, err := uut.Create(ctx, owner, fingerprint, unlockAt, "A", nil)
	assert.Nil(err)
	assert.Equal(uint64(0), capsuleID)

	// ------------------------------------------------------------------
	// 4. While locked, metadata is visible but the fingerprint is not
	// ------------------------------------------------------------------
	info, err := uut.Info(ctx, capsuleID, nil)
	assert.Nil(err)
	assert.True(info.Locked)
	assert.Equal("A", info.Label)

	_, err = uut.Disclose(ctx, owner, capsuleID, nil)
	assert.Error(err)
	assert.Equal(models.FailureKindTimingViolation, models.FailureKindOf(err))

	// ------------------------------------------------------------------
	// 5. Advance past the unlock time and disclose
	// ------------------------------------------------------------------
	clock.current = clock.current.Add(10 * time.Second)

	disclosed, err := uut.Disclose(ctx, uuid.NewString(), capsuleID, nil)
	assert.Nil(err)
	assert.Equal(fingerprint, disclosed.Fingerprint)
	assert.Equal(owner, disclosed.Owner)

	// The withdrawal window is now closed
	err = uut.Withdraw(ctx, owner, capsuleID, nil)
	assert.Error(err)
	assert.Equal(models.FailureKindTimingViolation, models.FailureKindOf(err))

	// ------------------------------------------------------------------
	// 6. Commit a second capsule and withdraw it before unlock
	// ------------------------------------------------------------------
	capsule2, err := uut.Create(
		ctx, owner, uuid.NewString(), clock.current.Add(time.Hour), "B", nil,
	)
	assert.Nil(err)
	assert.Equal(uint64(1), capsule2)

	assert.Nil(uut.Withdraw(ctx, owner, capsule2, nil))

	clock.current = clock.current.Add(2 * time.Hour)
	_, err = uut.Disclose(ctx, owner, capsule2, nil)
	assert.Error(err)
	assert.Equal(models.FailureKindInvalidState, models.FailureKindOf(err))

	// ------------------------------------------------------------------
	// 7. Verify the aggregate counters
	// ------------------------------------------------------------------
	total, err := uut.TotalCapsuleCount(ctx, nil)
	assert.Nil(err)
	assert.Equal(uint64(2), total)

	active, err := uut.ActiveCount(ctx, nil)
	assert.Nil(err)
	assert.Equal(uint64(1), active)

	created, err := uut.CreatedCountFor(ctx, owner, nil)
	assert.Nil(err)
	assert.Equal(uint64(2), created)

	// ------------------------------------------------------------------
	// 8. Pause the engine; reads keep working, mutations do not
	// ------------------------------------------------------------------
	assert.Nil(uut.Pause(ctx, admin, nil))

	_, err = uut.Create(ctx, owner, uuid.NewString(), clock.current.Add(time.Hour), "C", nil)
	assert.Error(err)
	assert.Equal(models.FailureKindEnginePaused, models.FailureKindOf(err))

	_, err = uut.Info(ctx, capsuleID, nil)
	assert.Nil(err)

	assert.Nil(uut.Unpause(ctx, admin, nil))

	// ------------------------------------------------------------------
	// 9. The audit trail recorded every transition
	// ------------------------------------------------------------------
	err = dbClient.UseDatabaseInTransaction(ctx, func(ctx context.Context, dbClient db.Database) error {
		events, err := dbClient.ListRegistryEvents(ctx, db.RegistryEventQueryFilter{})
		if err != nil {
			return err
		}
		// 2 creations, 1 disclosure, 1 withdrawal, 1 pause, 1 unpause
		assert.Len(events, 6)
		return nil
	})
	assert.Nil(err)
}
