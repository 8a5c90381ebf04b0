// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BackupConfigsColumns holds the columns for the "backup_configs" table.
	BackupConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "webdav_url", Type: field.TypeString, Nullable: true},
		{Name: "webdav_user", Type: field.TypeString, Nullable: true},
		{Name: "webdav_password", Type: field.TypeString, Nullable: true},
		{Name: "s3_endpoint", Type: field.TypeString, Nullable: true},
		{Name: "s3_region", Type: field.TypeString, Nullable: true},
		{Name: "s3_bucket", Type: field.TypeString, Nullable: true},
		{Name: "s3_access_key", Type: field.TypeString, Nullable: true},
		{Name: "s3_secret_key", Type: field.TypeString, Nullable: true},
		{Name: "auto_backup_enabled", Type: field.TypeBool, Default: false},
		{Name: "backup_schedule", Type: field.TypeString, Default: "daily"},
		{Name: "last_backup_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BackupConfigsTable holds the schema information for the "backup_configs" table.
	BackupConfigsTable = &schema.Table{
		Name:       "backup_configs",
		Columns:    BackupConfigsColumns,
		PrimaryKey: []*schema.Column{BackupConfigsColumns[0]},
	}
	// EntitlementsColumns holds the columns for the "entitlements" table.
	EntitlementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "order_id", Type: field.TypeString, Unique: true},
		{Name: "product_id", Type: field.TypeString, Nullable: true},
		{Name: "customer_id", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeInt64, Nullable: true},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EntitlementsTable holds the schema information for the "entitlements" table.
	EntitlementsTable = &schema.Table{
		Name:       "entitlements",
		Columns:    EntitlementsColumns,
		PrimaryKey: []*schema.Column{EntitlementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entitlement_email",
				Unique:  false,
				Columns: []*schema.Column{EntitlementsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BackupConfigsTable,
		EntitlementsTable,
	}
)

func init() {
}
