package db

import (
	"context"

	"github.com/alwitt/timelock/models"
	"gorm.io/gorm"
)

// --------------------------------------------------------------------------------------
// Registry audit events

// RegistryEventAuditDBEntry registry audit event DB entry
type RegistryEventAuditDBEntry struct {
	models.RegistryEventAudit
}

// TableName hard code table name
func (RegistryEventAuditDBEntry) TableName() string {
	return "registry_audit_events"
}

// --------------------------------------------------------------------------------------
// Registry parameters

// RegistryParamsDBEntry registry parameter singleton DB entry
type RegistryParamsDBEntry struct {
	models.RegistryParams
}

// TableName hard code table name
func (RegistryParamsDBEntry) TableName() string {
	return "registry_params"
}

// --------------------------------------------------------------------------------------
// Capsules

// CapsuleRecordDBEntry time-gated capsule DB entry
type CapsuleRecordDBEntry struct {
	models.CapsuleRecord
}

// TableName hard code table name
func (CapsuleRecordDBEntry) TableName() string {
	return "capsule_records"
}

// --------------------------------------------------------------------------------------

// DefineTables helper function meant to be used for unit-testing to prepare a
// database with tables
func DefineTables(_ context.Context, db *gorm.DB) error {
	return db.AutoMigrate(
		RegistryEventAuditDBEntry{},
		RegistryParamsDBEntry{},
		CapsuleRecordDBEntry{},
	)
}
