// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"notted/ent/backupconfig"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// BackupConfig is the model entity for the BackupConfig schema.
type BackupConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WebdavURL holds the value of the "webdav_url" field.
	WebdavURL string `json:"webdav_url,omitempty"`
	// WebdavUser holds the value of the "webdav_user" field.
	WebdavUser string `json:"webdav_user,omitempty"`
	// WebdavPassword holds the value of the "webdav_password" field.
	WebdavPassword string `json:"-"`
	// S3Endpoint holds the value of the "s3_endpoint" field.
	S3Endpoint string `json:"s3_endpoint,omitempty"`
	// S3Region holds the value of the "s3_region" field.
	S3Region string `json:"s3_region,omitempty"`
	// S3Bucket holds the value of the "s3_bucket" field.
	S3Bucket string `json:"s3_bucket,omitempty"`
	// S3AccessKey holds the value of the "s3_access_key" field.
	S3AccessKey string `json:"s3_access_key,omitempty"`
	// S3SecretKey holds the value of the "s3_secret_key" field.
	S3SecretKey string `json:"-"`
	// AutoBackupEnabled holds the value of the "auto_backup_enabled" field.
	AutoBackupEnabled bool `json:"auto_backup_enabled,omitempty"`
	// BackupSchedule holds the value of the "backup_schedule" field.
	BackupSchedule string `json:"backup_schedule,omitempty"`
	// LastBackupAt holds the value of the "last_backup_at" field.
	LastBackupAt time.Time `json:"last_backup_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BackupConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case backupconfig.FieldAutoBackupEnabled:
			values[i] = new(sql.NullBool)
		case backupconfig.FieldID:
			values[i] = new(sql.NullInt64)
		case backupconfig.FieldWebdavURL, backupconfig.FieldWebdavUser, backupconfig.FieldWebdavPassword, backupconfig.FieldS3Endpoint, backupconfig.FieldS3Region, backupconfig.FieldS3Bucket, backupconfig.FieldS3AccessKey, backupconfig.FieldS3SecretKey, backupconfig.FieldBackupSchedule:
			values[i] = new(sql.NullString)
		case backupconfig.FieldLastBackupAt, backupconfig.FieldCreatedAt, backupconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BackupConfig fields.
func (_m *BackupConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case backupconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case backupconfig.FieldWebdavURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webdav_url", values[i])
			} else if value.Valid {
				_m.WebdavURL = value.String
			}
		case backupconfig.FieldWebdavUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webdav_user", values[i])
			} else if value.Valid {
				_m.WebdavUser = value.String
			}
		case backupconfig.FieldWebdavPassword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webdav_password", values[i])
			} else if value.Valid {
				_m.WebdavPassword = value.String
			}
		case backupconfig.FieldS3Endpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s3_endpoint", values[i])
			} else if value.Valid {
				_m.S3Endpoint = value.String
			}
		case backupconfig.FieldS3Region:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s3_region", values[i])
			} else if value.Valid {
				_m.S3Region = value.String
			}
		case backupconfig.FieldS3Bucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s3_bucket", values[i])
			} else if value.Valid {
				_m.S3Bucket = value.String
			}
		case backupconfig.FieldS3AccessKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s3_access_key", values[i])
			} else if value.Valid {
				_m.S3AccessKey = value.String
			}
		case backupconfig.FieldS3SecretKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s3_secret_key", values[i])
			} else if value.Valid {
				_m.S3SecretKey = value.String
			}
		case backupconfig.FieldAutoBackupEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_backup_enabled", values[i])
			} else if value.Valid {
				_m.AutoBackupEnabled = value.Bool
			}
		case backupconfig.FieldBackupSchedule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field backup_schedule", values[i])
			} else if value.Valid {
				_m.BackupSchedule = value.String
			}
		case backupconfig.FieldLastBackupAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_backup_at", values[i])
			} else if value.Valid {
				_m.LastBackupAt = value.Time
			}
		case backupconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case backupconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BackupConfig.
// This includes values selected through modifiers, order, etc.
func (_m *BackupConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BackupConfig.
// Note that you need to call BackupConfig.Unwrap() before calling this method if this BackupConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BackupConfig) Update() *BackupConfigUpdateOne {
	return NewBackupConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BackupConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BackupConfig) Unwrap() *BackupConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BackupConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BackupConfig) String() string {
	var builder strings.Builder
	builder.WriteString("BackupConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("webdav_url=")
	builder.WriteString(_m.WebdavURL)
	builder.WriteString(", ")
	builder.WriteString("webdav_user=")
	builder.WriteString(_m.WebdavUser)
	builder.WriteString(", ")
	builder.WriteString("webdav_password=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("s3_endpoint=")
	builder.WriteString(_m.S3Endpoint)
	builder.WriteString(", ")
	builder.WriteString("s3_region=")
	builder.WriteString(_m.S3Region)
	builder.WriteString(", ")
	builder.WriteString("s3_bucket=")
	builder.WriteString(_m.S3Bucket)
	builder.WriteString(", ")
	builder.WriteString("s3_access_key=")
	builder.WriteString(_m.S3AccessKey)
	builder.WriteString(", ")
	builder.WriteString("s3_secret_key=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("auto_backup_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoBackupEnabled))
	builder.WriteString(", ")
	builder.WriteString("backup_schedule=")
	builder.WriteString(_m.BackupSchedule)
	builder.WriteString(", ")
	builder.WriteString("last_backup_at=")
	builder.WriteString(_m.LastBackupAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BackupConfigs is a parsable slice of BackupConfig.
type BackupConfigs []*BackupConfig
