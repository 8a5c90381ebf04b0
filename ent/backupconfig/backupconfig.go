// Code generated by ent, DO NOT EDIT.

package backupconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the backupconfig type in the database.
	Label = "backup_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWebdavURL holds the string denoting the webdav_url field in the database.
	FieldWebdavURL = "webdav_url"
	// FieldWebdavUser holds the string denoting the webdav_user field in the database.
	FieldWebdavUser = "webdav_user"
	// FieldWebdavPassword holds the string denoting the webdav_password field in the database.
	FieldWebdavPassword = "webdav_password"
	// FieldS3Endpoint holds the string denoting the s3_endpoint field in the database.
	FieldS3Endpoint = "s3_endpoint"
	// FieldS3Region holds the string denoting the s3_region field in the database.
	FieldS3Region = "s3_region"
	// FieldS3Bucket holds the string denoting the s3_bucket field in the database.
	FieldS3Bucket = "s3_bucket"
	// FieldS3AccessKey holds the string denoting the s3_access_key field in the database.
	FieldS3AccessKey = "s3_access_key"
	// FieldS3SecretKey holds the string denoting the s3_secret_key field in the database.
	FieldS3SecretKey = "s3_secret_key"
	// FieldAutoBackupEnabled holds the string denoting the auto_backup_enabled field in the database.
	FieldAutoBackupEnabled = "auto_backup_enabled"
	// FieldBackupSchedule holds the string denoting the backup_schedule field in the database.
	FieldBackupSchedule = "backup_schedule"
	// FieldLastBackupAt holds the string denoting the last_backup_at field in the database.
	FieldLastBackupAt = "last_backup_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the backupconfig in the database.
	Table = "backup_configs"
)

// Columns holds all SQL columns for backupconfig fields.
var Columns = []string{
	FieldID,
	FieldWebdavURL,
	FieldWebdavUser,
	FieldWebdavPassword,
	FieldS3Endpoint,
	FieldS3Region,
	FieldS3Bucket,
	FieldS3AccessKey,
	FieldS3SecretKey,
	FieldAutoBackupEnabled,
	FieldBackupSchedule,
	FieldLastBackupAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAutoBackupEnabled holds the default value on creation for the "auto_backup_enabled" field.
	DefaultAutoBackupEnabled bool
	// DefaultBackupSchedule holds the default value on creation for the "backup_schedule" field.
	DefaultBackupSchedule string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BackupConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWebdavURL orders the results by the webdav_url field.
func ByWebdavURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebdavURL, opts...).ToFunc()
}

// ByWebdavUser orders the results by the webdav_user field.
func ByWebdavUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebdavUser, opts...).ToFunc()
}

// ByWebdavPassword orders the results by the webdav_password field.
func ByWebdavPassword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebdavPassword, opts...).ToFunc()
}

// ByS3Endpoint orders the results by the s3_endpoint field.
func ByS3Endpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldS3Endpoint, opts...).ToFunc()
}

// ByS3Region orders the results by the s3_region field.
func ByS3Region(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldS3Region, opts...).ToFunc()
}

// ByS3Bucket orders the results by the s3_bucket field.
func ByS3Bucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldS3Bucket, opts...).ToFunc()
}

// ByS3AccessKey orders the results by the s3_access_key field.
func ByS3AccessKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldS3AccessKey, opts...).ToFunc()
}

// ByS3SecretKey orders the results by the s3_secret_key field.
func ByS3SecretKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldS3SecretKey, opts...).ToFunc()
}

// ByAutoBackupEnabled orders the results by the auto_backup_enabled field.
func ByAutoBackupEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoBackupEnabled, opts...).ToFunc()
}

// ByBackupSchedule orders the results by the backup_schedule field.
func ByBackupSchedule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackupSchedule, opts...).ToFunc()
}

// ByLastBackupAt orders the results by the last_backup_at field.
func ByLastBackupAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBackupAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
