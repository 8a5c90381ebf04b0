// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"notted/ent/backupconfig"
	"notted/ent/entitlement"
	"notted/ent/predicate"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBackupConfig = "BackupConfig"
	TypeEntitlement  = "Entitlement"
)

// BackupConfigMutation represents an operation that mutates the BackupConfig nodes in the graph.
type BackupConfigMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	webdav_url          *string
	webdav_user         *string
	webdav_password     *string
	s3_endpoint         *string
	s3_region           *string
	s3_bucket           *string
	s3_access_key       *string
	s3_secret_key       *string
	auto_backup_enabled *bool
	backup_schedule     *string
	last_backup_at      *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*BackupConfig, error)
	predicates          []predicate.BackupConfig
}

var _ ent.Mutation = (*BackupConfigMutation)(nil)

// backupconfigOption allows management of the mutation configuration using functional options.
type backupconfigOption func(*BackupConfigMutation)

// newBackupConfigMutation creates new mutation for the BackupConfig entity.
func newBackupConfigMutation(c config, op Op, opts ...backupconfigOption) *BackupConfigMutation {
	m := &BackupConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeBackupConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBackupConfigID sets the ID field of the mutation.
func withBackupConfigID(id int) backupconfigOption {
	return func(m *BackupConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *BackupConfig
		)
		m.oldValue = func(ctx context.Context) (*BackupConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BackupConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBackupConfig sets the old BackupConfig of the mutation.
func withBackupConfig(node *BackupConfig) backupconfigOption {
	return func(m *BackupConfigMutation) {
		m.oldValue = func(context.Context) (*BackupConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BackupConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BackupConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BackupConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BackupConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BackupConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWebdavURL sets the "webdav_url" field.
func (m *BackupConfigMutation) SetWebdavURL(s string) {
	m.webdav_url = &s
}

// WebdavURL returns the value of the "webdav_url" field in the mutation.
func (m *BackupConfigMutation) WebdavURL() (r string, exists bool) {
	v := m.webdav_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebdavURL returns the old "webdav_url" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldWebdavURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebdavURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebdavURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebdavURL: %w", err)
	}
	return oldValue.WebdavURL, nil
}

// ClearWebdavURL clears the value of the "webdav_url" field.
func (m *BackupConfigMutation) ClearWebdavURL() {
	m.webdav_url = nil
	m.clearedFields[backupconfig.FieldWebdavURL] = struct{}{}
}

// WebdavURLCleared returns if the "webdav_url" field was cleared in this mutation.
func (m *BackupConfigMutation) WebdavURLCleared() bool {
	_, ok := m.clearedFields[backupconfig.FieldWebdavURL]
	return ok
}

// ResetWebdavURL resets all changes to the "webdav_url" field.
func (m *BackupConfigMutation) ResetWebdavURL() {
	m.webdav_url = nil
	delete(m.clearedFields, backupconfig.FieldWebdavURL)
}

// SetWebdavUser sets the "webdav_user" field.
func (m *BackupConfigMutation) SetWebdavUser(s string) {
	m.webdav_user = &s
}

// WebdavUser returns the value of the "webdav_user" field in the mutation.
func (m *BackupConfigMutation) WebdavUser() (r string, exists bool) {
	v := m.webdav_user
	if v == nil {
		return
	}
	return *v, true
}

// OldWebdavUser returns the old "webdav_user" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldWebdavUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebdavUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebdavUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebdavUser: %w", err)
	}
	return oldValue.WebdavUser, nil
}

// ClearWebdavUser clears the value of the "webdav_user" field.
func (m *BackupConfigMutation) ClearWebdavUser() {
	m.webdav_user = nil
	m.clearedFields[backupconfig.FieldWebdavUser] = struct{}{}
}

// WebdavUserCleared returns if the "webdav_user" field was cleared in this mutation.
func (m *BackupConfigMutation) WebdavUserCleared() bool {
	_, ok := m.clearedFields[backupconfig.FieldWebdavUser]
	return ok
}

// ResetWebdavUser resets all changes to the "webdav_user" field.
func (m *BackupConfigMutation) ResetWebdavUser() {
	m.webdav_user = nil
	delete(m.clearedFields, backupconfig.FieldWebdavUser)
}

// SetWebdavPassword sets the "webdav_password" field.
func (m *BackupConfigMutation) SetWebdavPassword(s string) {
	m.webdav_password = &s
}

// WebdavPassword returns the value of the "webdav_password" field in the mutation.
func (m *BackupConfigMutation) WebdavPassword() (r string, exists bool) {
	v := m.webdav_password
	if v == nil {
		return
	}
	return *v, true
}

// OldWebdavPassword returns the old "webdav_password" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldWebdavPassword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebdavPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebdavPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebdavPassword: %w", err)
	}
	return oldValue.WebdavPassword, nil
}

// ClearWebdavPassword clears the value of the "webdav_password" field.
func (m *BackupConfigMutation) ClearWebdavPassword() {
	m.webdav_password = nil
	m.clearedFields[backupconfig.FieldWebdavPassword] = struct{}{}
}

// WebdavPasswordCleared returns if the "webdav_password" field was cleared in this mutation.
func (m *BackupConfigMutation) WebdavPasswordCleared() bool {
	_, ok := m.clearedFields[backupconfig.FieldWebdavPassword]
	return ok
}

// ResetWebdavPassword resets all changes to the "webdav_password" field.
func (m *BackupConfigMutation) ResetWebdavPassword() {
	m.webdav_password = nil
	delete(m.clearedFields, backupconfig.FieldWebdavPassword)
}

// SetS3Endpoint sets the "s3_endpoint" field.
func (m *BackupConfigMutation) SetS3Endpoint(s string) {
	m.s3_endpoint = &s
}

// S3Endpoint returns the value of the "s3_endpoint" field in the mutation.
func (m *BackupConfigMutation) S3Endpoint() (r string, exists bool) {
	v := m.s3_endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Endpoint returns the old "s3_endpoint" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldS3Endpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Endpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Endpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Endpoint: %w", err)
	}
	return oldValue.S3Endpoint, nil
}

// ClearS3Endpoint clears the value of the "s3_endpoint" field.
func (m *BackupConfigMutation) ClearS3Endpoint() {
	m.s3_endpoint = nil
	m.clearedFields[backupconfig.FieldS3Endpoint] = struct{}{}
}

// S3EndpointCleared returns if the "s3_endpoint" field was cleared in this mutation.
func (m *BackupConfigMutation) S3EndpointCleared() bool {
	_, ok := m.clearedFields[backupconfig.FieldS3Endpoint]
	return ok
}

// ResetS3Endpoint resets all changes to the "s3_endpoint" field.
func (m *BackupConfigMutation) ResetS3Endpoint() {
	m.s3_endpoint = nil
	delete(m.clearedFields, backupconfig.FieldS3Endpoint)
}

// SetS3Region sets the "s3_region" field.
func (m *BackupConfigMutation) SetS3Region(s string) {
	m.s3_region = &s
}

// S3Region returns the value of the "s3_region" field in the mutation.
func (m *BackupConfigMutation) S3Region() (r string, exists bool) {
	v := m.s3_region
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Region returns the old "s3_region" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldS3Region(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Region is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Region requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Region: %w", err)
	}
	return oldValue.S3Region, nil
}

// ClearS3Region clears the value of the "s3_region" field.
func (m *BackupConfigMutation) ClearS3Region() {
	m.s3_region = nil
	m.clearedFields[backupconfig.FieldS3Region] = struct{}{}
}

// S3RegionCleared returns if the "s3_region" field was cleared in this mutation.
func (m *BackupConfigMutation) S3RegionCleared() bool {
	_, ok := m.clearedFields[backupconfig.FieldS3Region]
	return ok
}

// ResetS3Region resets all changes to the "s3_region" field.
func (m *BackupConfigMutation) ResetS3Region() {
	m.s3_region = nil
	delete(m.clearedFields, backupconfig.FieldS3Region)
}

// SetS3Bucket sets the "s3_bucket" field.
func (m *BackupConfigMutation) SetS3Bucket(s string) {
	m.s3_bucket = &s
}

// S3Bucket returns the value of the "s3_bucket" field in the mutation.
func (m *BackupConfigMutation) S3Bucket() (r string, exists bool) {
	v := m.s3_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Bucket returns the old "s3_bucket" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldS3Bucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Bucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Bucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Bucket: %w", err)
	}
	return oldValue.S3Bucket, nil
}

// ClearS3Bucket clears the value of the "s3_bucket" field.
func (m *BackupConfigMutation) ClearS3Bucket() {
	m.s3_bucket = nil
	m.clearedFields[backupconfig.FieldS3Bucket] = struct{}{}
}

// S3BucketCleared returns if the "s3_bucket" field was cleared in this mutation.
func (m *BackupConfigMutation) S3BucketCleared() bool {
	_, ok := m.clearedFields[backupconfig.FieldS3Bucket]
	return ok
}

// ResetS3Bucket resets all changes to the "s3_bucket" field.
func (m *BackupConfigMutation) ResetS3Bucket() {
	m.s3_bucket = nil
	delete(m.clearedFields, backupconfig.FieldS3Bucket)
}

// SetS3AccessKey sets the "s3_access_key" field.
func (m *BackupConfigMutation) SetS3AccessKey(s string) {
	m.s3_access_key = &s
}

// S3AccessKey returns the value of the "s3_access_key" field in the mutation.
func (m *BackupConfigMutation) S3AccessKey() (r string, exists bool) {
	v := m.s3_access_key
	if v == nil {
		return
	}
	return *v, true
}

// OldS3AccessKey returns the old "s3_access_key" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldS3AccessKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3AccessKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3AccessKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3AccessKey: %w", err)
	}
	return oldValue.S3AccessKey, nil
}

// ClearS3AccessKey clears the value of the "s3_access_key" field.
func (m *BackupConfigMutation) ClearS3AccessKey() {
	m.s3_access_key = nil
	m.clearedFields[backupconfig.FieldS3AccessKey] = struct{}{}
}

// S3AccessKeyCleared returns if the "s3_access_key" field was cleared in this mutation.
func (m *BackupConfigMutation) S3AccessKeyCleared() bool {
	_, ok := m.clearedFields[backupconfig.FieldS3AccessKey]
	return ok
}

// ResetS3AccessKey resets all changes to the "s3_access_key" field.
func (m *BackupConfigMutation) ResetS3AccessKey() {
	m.s3_access_key = nil
	delete(m.clearedFields, backupconfig.FieldS3AccessKey)
}

// SetS3SecretKey sets the "s3_secret_key" field.
func (m *BackupConfigMutation) SetS3SecretKey(s string) {
	m.s3_secret_key = &s
}

// S3SecretKey returns the value of the "s3_secret_key" field in the mutation.
func (m *BackupConfigMutation) S3SecretKey() (r string, exists bool) {
	v := m.s3_secret_key
	if v == nil {
		return
	}
	return *v, true
}

// OldS3SecretKey returns the old "s3_secret_key" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldS3SecretKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3SecretKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3SecretKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3SecretKey: %w", err)
	}
	return oldValue.S3SecretKey, nil
}

// ClearS3SecretKey clears the value of the "s3_secret_key" field.
func (m *BackupConfigMutation) ClearS3SecretKey() {
	m.s3_secret_key = nil
	m.clearedFields[backupconfig.FieldS3SecretKey] = struct{}{}
}

// S3SecretKeyCleared returns if the "s3_secret_key" field was cleared in this mutation.
func (m *BackupConfigMutation) S3SecretKeyCleared() bool {
	_, ok := m.clearedFields[backupconfig.FieldS3SecretKey]
	return ok
}

// ResetS3SecretKey resets all changes to the "s3_secret_key" field.
func (m *BackupConfigMutation) ResetS3SecretKey() {
	m.s3_secret_key = nil
	delete(m.clearedFields, backupconfig.FieldS3SecretKey)
}

// SetAutoBackupEnabled sets the "auto_backup_enabled" field.
func (m *BackupConfigMutation) SetAutoBackupEnabled(b bool) {
	m.auto_backup_enabled = &b
}

// AutoBackupEnabled returns the value of the "auto_backup_enabled" field in the mutation.
func (m *BackupConfigMutation) AutoBackupEnabled() (r bool, exists bool) {
	v := m.auto_backup_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoBackupEnabled returns the old "auto_backup_enabled" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldAutoBackupEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoBackupEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoBackupEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoBackupEnabled: %w", err)
	}
	return oldValue.AutoBackupEnabled, nil
}

// ResetAutoBackupEnabled resets all changes to the "auto_backup_enabled" field.
func (m *BackupConfigMutation) ResetAutoBackupEnabled() {
	m.auto_backup_enabled = nil
}

// SetBackupSchedule sets the "backup_schedule" field.
func (m *BackupConfigMutation) SetBackupSchedule(s string) {
	m.backup_schedule = &s
}

// BackupSchedule returns the value of the "backup_schedule" field in the mutation.
func (m *BackupConfigMutation) BackupSchedule() (r string, exists bool) {
	v := m.backup_schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldBackupSchedule returns the old "backup_schedule" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldBackupSchedule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackupSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackupSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackupSchedule: %w", err)
	}
	return oldValue.BackupSchedule, nil
}

// ResetBackupSchedule resets all changes to the "backup_schedule" field.
func (m *BackupConfigMutation) ResetBackupSchedule() {
	m.backup_schedule = nil
}

// SetLastBackupAt sets the "last_backup_at" field.
func (m *BackupConfigMutation) SetLastBackupAt(t time.Time) {
	m.last_backup_at = &t
}

// LastBackupAt returns the value of the "last_backup_at" field in the mutation.
func (m *BackupConfigMutation) LastBackupAt() (r time.Time, exists bool) {
	v := m.last_backup_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBackupAt returns the old "last_backup_at" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldLastBackupAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBackupAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBackupAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBackupAt: %w", err)
	}
	return oldValue.LastBackupAt, nil
}

// ClearLastBackupAt clears the value of the "last_backup_at" field.
func (m *BackupConfigMutation) ClearLastBackupAt() {
	m.last_backup_at = nil
	m.clearedFields[backupconfig.FieldLastBackupAt] = struct{}{}
}

// LastBackupAtCleared returns if the "last_backup_at" field was cleared in this mutation.
func (m *BackupConfigMutation) LastBackupAtCleared() bool {
	_, ok := m.clearedFields[backupconfig.FieldLastBackupAt]
	return ok
}

// ResetLastBackupAt resets all changes to the "last_backup_at" field.
func (m *BackupConfigMutation) ResetLastBackupAt() {
	m.last_backup_at = nil
	delete(m.clearedFields, backupconfig.FieldLastBackupAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *BackupConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BackupConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BackupConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BackupConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BackupConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BackupConfig entity.
// If the BackupConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BackupConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BackupConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BackupConfigMutation builder.
func (m *BackupConfigMutation) Where(ps ...predicate.BackupConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BackupConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BackupConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BackupConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BackupConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BackupConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BackupConfig).
func (m *BackupConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BackupConfigMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.webdav_url != nil {
		fields = append(fields, backupconfig.FieldWebdavURL)
	}
	if m.webdav_user != nil {
		fields = append(fields, backupconfig.FieldWebdavUser)
	}
	if m.webdav_password != nil {
		fields = append(fields, backupconfig.FieldWebdavPassword)
	}
	if m.s3_endpoint != nil {
		fields = append(fields, backupconfig.FieldS3Endpoint)
	}
	if m.s3_region != nil {
		fields = append(fields, backupconfig.FieldS3Region)
	}
	if m.s3_bucket != nil {
		fields = append(fields, backupconfig.FieldS3Bucket)
	}
	if m.s3_access_key != nil {
		fields = append(fields, backupconfig.FieldS3AccessKey)
	}
	if m.s3_secret_key != nil {
		fields = append(fields, backupconfig.FieldS3SecretKey)
	}
	if m.auto_backup_enabled != nil {
		fields = append(fields, backupconfig.FieldAutoBackupEnabled)
	}
	if m.backup_schedule != nil {
		fields = append(fields, backupconfig.FieldBackupSchedule)
	}
	if m.last_backup_at != nil {
		fields = append(fields, backupconfig.FieldLastBackupAt)
	}
	if m.created_at != nil {
		fields = append(fields, backupconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, backupconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BackupConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case backupconfig.FieldWebdavURL:
		return m.WebdavURL()
	case backupconfig.FieldWebdavUser:
		return m.WebdavUser()
	case backupconfig.FieldWebdavPassword:
		return m.WebdavPassword()
	case backupconfig.FieldS3Endpoint:
		return m.S3Endpoint()
	case backupconfig.FieldS3Region:
		return m.S3Region()
	case backupconfig.FieldS3Bucket:
		return m.S3Bucket()
	case backupconfig.FieldS3AccessKey:
		return m.S3AccessKey()
	case backupconfig.FieldS3SecretKey:
		return m.S3SecretKey()
	case backupconfig.FieldAutoBackupEnabled:
		return m.AutoBackupEnabled()
	case backupconfig.FieldBackupSchedule:
		return m.BackupSchedule()
	case backupconfig.FieldLastBackupAt:
		return m.LastBackupAt()
	case backupconfig.FieldCreatedAt:
		return m.CreatedAt()
	case backupconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BackupConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case backupconfig.FieldWebdavURL:
		return m.OldWebdavURL(ctx)
	case backupconfig.FieldWebdavUser:
		return m.OldWebdavUser(ctx)
	case backupconfig.FieldWebdavPassword:
		return m.OldWebdavPassword(ctx)
	case backupconfig.FieldS3Endpoint:
		return m.OldS3Endpoint(ctx)
	case backupconfig.FieldS3Region:
		return m.OldS3Region(ctx)
	case backupconfig.FieldS3Bucket:
		return m.OldS3Bucket(ctx)
	case backupconfig.FieldS3AccessKey:
		return m.OldS3AccessKey(ctx)
	case backupconfig.FieldS3SecretKey:
		return m.OldS3SecretKey(ctx)
	case backupconfig.FieldAutoBackupEnabled:
		return m.OldAutoBackupEnabled(ctx)
	case backupconfig.FieldBackupSchedule:
		return m.OldBackupSchedule(ctx)
	case backupconfig.FieldLastBackupAt:
		return m.OldLastBackupAt(ctx)
	case backupconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case backupconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BackupConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BackupConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case backupconfig.FieldWebdavURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebdavURL(v)
		return nil
	case backupconfig.FieldWebdavUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebdavUser(v)
		return nil
	case backupconfig.FieldWebdavPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebdavPassword(v)
		return nil
	case backupconfig.FieldS3Endpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Endpoint(v)
		return nil
	case backupconfig.FieldS3Region:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Region(v)
		return nil
	case backupconfig.FieldS3Bucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Bucket(v)
		return nil
	case backupconfig.FieldS3AccessKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3AccessKey(v)
		return nil
	case backupconfig.FieldS3SecretKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3SecretKey(v)
		return nil
	case backupconfig.FieldAutoBackupEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoBackupEnabled(v)
		return nil
	case backupconfig.FieldBackupSchedule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackupSchedule(v)
		return nil
	case backupconfig.FieldLastBackupAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBackupAt(v)
		return nil
	case backupconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case backupconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BackupConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BackupConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BackupConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BackupConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BackupConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BackupConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(backupconfig.FieldWebdavURL) {
		fields = append(fields, backupconfig.FieldWebdavURL)
	}
	if m.FieldCleared(backupconfig.FieldWebdavUser) {
		fields = append(fields, backupconfig.FieldWebdavUser)
	}
	if m.FieldCleared(backupconfig.FieldWebdavPassword) {
		fields = append(fields, backupconfig.FieldWebdavPassword)
	}
	if m.FieldCleared(backupconfig.FieldS3Endpoint) {
		fields = append(fields, backupconfig.FieldS3Endpoint)
	}
	if m.FieldCleared(backupconfig.FieldS3Region) {
		fields = append(fields, backupconfig.FieldS3Region)
	}
	if m.FieldCleared(backupconfig.FieldS3Bucket) {
		fields = append(fields, backupconfig.FieldS3Bucket)
	}
	if m.FieldCleared(backupconfig.FieldS3AccessKey) {
		fields = append(fields, backupconfig.FieldS3AccessKey)
	}
	if m.FieldCleared(backupconfig.FieldS3SecretKey) {
		fields = append(fields, backupconfig.FieldS3SecretKey)
	}
	if m.FieldCleared(backupconfig.FieldLastBackupAt) {
		fields = append(fields, backupconfig.FieldLastBackupAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BackupConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BackupConfigMutation) ClearField(name string) error {
	switch name {
	case backupconfig.FieldWebdavURL:
		m.ClearWebdavURL()
		return nil
	case backupconfig.FieldWebdavUser:
		m.ClearWebdavUser()
		return nil
	case backupconfig.FieldWebdavPassword:
		m.ClearWebdavPassword()
		return nil
	case backupconfig.FieldS3Endpoint:
		m.ClearS3Endpoint()
		return nil
	case backupconfig.FieldS3Region:
		m.ClearS3Region()
		return nil
	case backupconfig.FieldS3Bucket:
		m.ClearS3Bucket()
		return nil
	case backupconfig.FieldS3AccessKey:
		m.ClearS3AccessKey()
		return nil
	case backupconfig.FieldS3SecretKey:
		m.ClearS3SecretKey()
		return nil
	case backupconfig.FieldLastBackupAt:
		m.ClearLastBackupAt()
		return nil
	}
	return fmt.Errorf("unknown BackupConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BackupConfigMutation) ResetField(name string) error {
	switch name {
	case backupconfig.FieldWebdavURL:
		m.ResetWebdavURL()
		return nil
	case backupconfig.FieldWebdavUser:
		m.ResetWebdavUser()
		return nil
	case backupconfig.FieldWebdavPassword:
		m.ResetWebdavPassword()
		return nil
	case backupconfig.FieldS3Endpoint:
		m.ResetS3Endpoint()
		return nil
	case backupconfig.FieldS3Region:
		m.ResetS3Region()
		return nil
	case backupconfig.FieldS3Bucket:
		m.ResetS3Bucket()
		return nil
	case backupconfig.FieldS3AccessKey:
		m.ResetS3AccessKey()
		return nil
	case backupconfig.FieldS3SecretKey:
		m.ResetS3SecretKey()
		return nil
	case backupconfig.FieldAutoBackupEnabled:
		m.ResetAutoBackupEnabled()
		return nil
	case backupconfig.FieldBackupSchedule:
		m.ResetBackupSchedule()
		return nil
	case backupconfig.FieldLastBackupAt:
		m.ResetLastBackupAt()
		return nil
	case backupconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case backupconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BackupConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BackupConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BackupConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BackupConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BackupConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BackupConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BackupConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BackupConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BackupConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BackupConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BackupConfig edge %s", name)
}

// EntitlementMutation represents an operation that mutates the Entitlement nodes in the graph.
type EntitlementMutation struct {
	config
	op            Op
	typ           string
	id            *int
	email         *string
	order_id      *string
	product_id    *string
	customer_id   *string
	amount        *int64
	addamount     *int64
	currency      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Entitlement, error)
	predicates    []predicate.Entitlement
}

var _ ent.Mutation = (*EntitlementMutation)(nil)

// entitlementOption allows management of the mutation configuration using functional options.
type entitlementOption func(*EntitlementMutation)

// newEntitlementMutation creates new mutation for the Entitlement entity.
func newEntitlementMutation(c config, op Op, opts ...entitlementOption) *EntitlementMutation {
	m := &EntitlementMutation{
		config:        c,
		op:            op,
		typ:           TypeEntitlement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntitlementID sets the ID field of the mutation.
func withEntitlementID(id int) entitlementOption {
	return func(m *EntitlementMutation) {
		var (
			err   error
			once  sync.Once
			value *Entitlement
		)
		m.oldValue = func(ctx context.Context) (*Entitlement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entitlement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntitlement sets the old Entitlement of the mutation.
func withEntitlement(node *Entitlement) entitlementOption {
	return func(m *EntitlementMutation) {
		m.oldValue = func(context.Context) (*Entitlement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntitlementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntitlementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntitlementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntitlementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entitlement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *EntitlementMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *EntitlementMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Entitlement entity.
// If the Entitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitlementMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *EntitlementMutation) ResetEmail() {
	m.email = nil
}

// SetOrderID sets the "order_id" field.
func (m *EntitlementMutation) SetOrderID(s string) {
	m.order_id = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *EntitlementMutation) OrderID() (r string, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the Entitlement entity.
// If the Entitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitlementMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *EntitlementMutation) ResetOrderID() {
	m.order_id = nil
}

// SetProductID sets the "product_id" field.
func (m *EntitlementMutation) SetProductID(s string) {
	m.product_id = &s
}

// ProductID returns the value of the "product_id" field in the mutation.
func (m *EntitlementMutation) ProductID() (r string, exists bool) {
	v := m.product_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProductID returns the old "product_id" field's value of the Entitlement entity.
// If the Entitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitlementMutation) OldProductID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductID: %w", err)
	}
	return oldValue.ProductID, nil
}

// ClearProductID clears the value of the "product_id" field.
func (m *EntitlementMutation) ClearProductID() {
	m.product_id = nil
	m.clearedFields[entitlement.FieldProductID] = struct{}{}
}

// ProductIDCleared returns if the "product_id" field was cleared in this mutation.
func (m *EntitlementMutation) ProductIDCleared() bool {
	_, ok := m.clearedFields[entitlement.FieldProductID]
	return ok
}

// ResetProductID resets all changes to the "product_id" field.
func (m *EntitlementMutation) ResetProductID() {
	m.product_id = nil
	delete(m.clearedFields, entitlement.FieldProductID)
}

// SetCustomerID sets the "customer_id" field.
func (m *EntitlementMutation) SetCustomerID(s string) {
	m.customer_id = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *EntitlementMutation) CustomerID() (r string, exists bool) {
	v := m.customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the Entitlement entity.
// If the Entitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitlementMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ClearCustomerID clears the value of the "customer_id" field.
func (m *EntitlementMutation) ClearCustomerID() {
	m.customer_id = nil
	m.clearedFields[entitlement.FieldCustomerID] = struct{}{}
}

// CustomerIDCleared returns if the "customer_id" field was cleared in this mutation.
func (m *EntitlementMutation) CustomerIDCleared() bool {
	_, ok := m.clearedFields[entitlement.FieldCustomerID]
	return ok
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *EntitlementMutation) ResetCustomerID() {
	m.customer_id = nil
	delete(m.clearedFields, entitlement.FieldCustomerID)
}

// SetAmount sets the "amount" field.
func (m *EntitlementMutation) SetAmount(i int64) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *EntitlementMutation) Amount() (r int64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Entitlement entity.
// If the Entitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitlementMutation) OldAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *EntitlementMutation) AddAmount(i int64) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *EntitlementMutation) AddedAmount() (r int64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *EntitlementMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[entitlement.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *EntitlementMutation) AmountCleared() bool {
	_, ok := m.clearedFields[entitlement.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *EntitlementMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, entitlement.FieldAmount)
}

// SetCurrency sets the "currency" field.
func (m *EntitlementMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *EntitlementMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Entitlement entity.
// If the Entitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitlementMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *EntitlementMutation) ResetCurrency() {
	m.currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EntitlementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntitlementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Entitlement entity.
// If the Entitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitlementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntitlementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EntitlementMutation builder.
func (m *EntitlementMutation) Where(ps ...predicate.Entitlement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntitlementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntitlementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entitlement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntitlementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntitlementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entitlement).
func (m *EntitlementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntitlementMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.email != nil {
		fields = append(fields, entitlement.FieldEmail)
	}
	if m.order_id != nil {
		fields = append(fields, entitlement.FieldOrderID)
	}
	if m.product_id != nil {
		fields = append(fields, entitlement.FieldProductID)
	}
	if m.customer_id != nil {
		fields = append(fields, entitlement.FieldCustomerID)
	}
	if m.amount != nil {
		fields = append(fields, entitlement.FieldAmount)
	}
	if m.currency != nil {
		fields = append(fields, entitlement.FieldCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, entitlement.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntitlementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitlement.FieldEmail:
		return m.Email()
	case entitlement.FieldOrderID:
		return m.OrderID()
	case entitlement.FieldProductID:
		return m.ProductID()
	case entitlement.FieldCustomerID:
		return m.CustomerID()
	case entitlement.FieldAmount:
		return m.Amount()
	case entitlement.FieldCurrency:
		return m.Currency()
	case entitlement.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntitlementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitlement.FieldEmail:
		return m.OldEmail(ctx)
	case entitlement.FieldOrderID:
		return m.OldOrderID(ctx)
	case entitlement.FieldProductID:
		return m.OldProductID(ctx)
	case entitlement.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case entitlement.FieldAmount:
		return m.OldAmount(ctx)
	case entitlement.FieldCurrency:
		return m.OldCurrency(ctx)
	case entitlement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Entitlement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitlementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitlement.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case entitlement.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case entitlement.FieldProductID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductID(v)
		return nil
	case entitlement.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case entitlement.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case entitlement.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case entitlement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Entitlement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntitlementMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, entitlement.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntitlementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitlement.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitlementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitlement.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Entitlement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntitlementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entitlement.FieldProductID) {
		fields = append(fields, entitlement.FieldProductID)
	}
	if m.FieldCleared(entitlement.FieldCustomerID) {
		fields = append(fields, entitlement.FieldCustomerID)
	}
	if m.FieldCleared(entitlement.FieldAmount) {
		fields = append(fields, entitlement.FieldAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntitlementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntitlementMutation) ClearField(name string) error {
	switch name {
	case entitlement.FieldProductID:
		m.ClearProductID()
		return nil
	case entitlement.FieldCustomerID:
		m.ClearCustomerID()
		return nil
	case entitlement.FieldAmount:
		m.ClearAmount()
		return nil
	}
	return fmt.Errorf("unknown Entitlement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntitlementMutation) ResetField(name string) error {
	switch name {
	case entitlement.FieldEmail:
		m.ResetEmail()
		return nil
	case entitlement.FieldOrderID:
		m.ResetOrderID()
		return nil
	case entitlement.FieldProductID:
		m.ResetProductID()
		return nil
	case entitlement.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case entitlement.FieldAmount:
		m.ResetAmount()
		return nil
	case entitlement.FieldCurrency:
		m.ResetCurrency()
		return nil
	case entitlement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Entitlement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntitlementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntitlementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntitlementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntitlementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntitlementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntitlementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntitlementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Entitlement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntitlementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Entitlement edge %s", name)
}
