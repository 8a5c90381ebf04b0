// Code generated by ent, DO NOT EDIT.

package ent

import (
	"notted/ent/backupconfig"
	"notted/ent/entitlement"
	"notted/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	backupconfigFields := schema.BackupConfig{}.Fields()
	_ = backupconfigFields
	// backupconfigDescAutoBackupEnabled is the schema descriptor for auto_backup_enabled field.
	backupconfigDescAutoBackupEnabled := backupconfigFields[8].Descriptor()
	// backupconfig.DefaultAutoBackupEnabled holds the default value on creation for the auto_backup_enabled field.
	backupconfig.DefaultAutoBackupEnabled = backupconfigDescAutoBackupEnabled.Default.(bool)
	// backupconfigDescBackupSchedule is the schema descriptor for backup_schedule field.
	backupconfigDescBackupSchedule := backupconfigFields[9].Descriptor()
	// backupconfig.DefaultBackupSchedule holds the default value on creation for the backup_schedule field.
	backupconfig.DefaultBackupSchedule = backupconfigDescBackupSchedule.Default.(string)
	// backupconfigDescCreatedAt is the schema descriptor for created_at field.
	backupconfigDescCreatedAt := backupconfigFields[11].Descriptor()
	// backupconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	backupconfig.DefaultCreatedAt = backupconfigDescCreatedAt.Default.(func() time.Time)
	// backupconfigDescUpdatedAt is the schema descriptor for updated_at field.
	backupconfigDescUpdatedAt := backupconfigFields[12].Descriptor()
	// backupconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	backupconfig.DefaultUpdatedAt = backupconfigDescUpdatedAt.Default.(func() time.Time)
	// backupconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	backupconfig.UpdateDefaultUpdatedAt = backupconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	entitlementFields := schema.Entitlement{}.Fields()
	_ = entitlementFields
	// entitlementDescEmail is the schema descriptor for email field.
	entitlementDescEmail := entitlementFields[0].Descriptor()
	// entitlement.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	entitlement.EmailValidator = entitlementDescEmail.Validators[0].(func(string) error)
	// entitlementDescOrderID is the schema descriptor for order_id field.
	entitlementDescOrderID := entitlementFields[1].Descriptor()
	// entitlement.OrderIDValidator is a validator for the "order_id" field. It is called by the builders before save.
	entitlement.OrderIDValidator = entitlementDescOrderID.Validators[0].(func(string) error)
	// entitlementDescCurrency is the schema descriptor for currency field.
	entitlementDescCurrency := entitlementFields[5].Descriptor()
	// entitlement.DefaultCurrency holds the default value on creation for the currency field.
	entitlement.DefaultCurrency = entitlementDescCurrency.Default.(string)
	// entitlementDescCreatedAt is the schema descriptor for created_at field.
	entitlementDescCreatedAt := entitlementFields[6].Descriptor()
	// entitlement.DefaultCreatedAt holds the default value on creation for the created_at field.
	entitlement.DefaultCreatedAt = entitlementDescCreatedAt.Default.(func() time.Time)
}
