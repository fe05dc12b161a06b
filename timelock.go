// Package timelock - time-gated content fingerprint registry
package timelock

import (
	"context"
	"fmt"

	"github.com/alwitt/timelock/db"
	"github.com/alwitt/timelock/registry"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
NewCapsuleRegistry initialize a capsule registry instance.

Each instance is backed by a SQL database; two instances using the same database are
essentially copies of each other.

	@param ctx context.Context - execution context
	@param dbDialector gorm.Dialector - GORM dialector
	@param dbLogLevel logger.LogLevel - SQL log level
	@param administrator string - identity allowed to pause and unpause the engine
	@param timeSource registry.Clock - trusted clock; nil selects the host wall clock
	@returns new registry instance
*/
func NewCapsuleRegistry(
	ctx context.Context,
	dbDialector gorm.Dialector,
	dbLogLevel logger.LogLevel,
	administrator string,
	timeSource registry.Clock,
) (registry.CapsuleRegistry, error) {
	// Prepare persistence
	persistence, err := db.NewConnection(dbDialector, dbLogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialized persistence client [%w]", err)
	}

	if timeSource == nil {
		timeSource = registry.SystemClock()
	}

	engine, err := registry.NewCapsuleRegistry(ctx, registry.CapsuleRegistryParams{
		Persistence:   persistence,
		Administrator: administrator,
		TimeSource:    timeSource,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialized capsule lifecycle engine [%w]", err)
	}

	return engine, nil
}
