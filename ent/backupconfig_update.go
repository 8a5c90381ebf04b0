// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"notted/ent/backupconfig"
	"notted/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BackupConfigUpdate is the builder for updating BackupConfig entities.
type BackupConfigUpdate struct {
	config
	hooks    []Hook
	mutation *BackupConfigMutation
}

// Where appends a list predicates to the BackupConfigUpdate builder.
func (_u *BackupConfigUpdate) Where(ps ...predicate.BackupConfig) *BackupConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWebdavURL sets the "webdav_url" field.
func (_u *BackupConfigUpdate) SetWebdavURL(v string) *BackupConfigUpdate {
	_u.mutation.SetWebdavURL(v)
	return _u
}

// SetNillableWebdavURL sets the "webdav_url" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableWebdavURL(v *string) *BackupConfigUpdate {
	if v != nil {
		_u.SetWebdavURL(*v)
	}
	return _u
}

// ClearWebdavURL clears the value of the "webdav_url" field.
func (_u *BackupConfigUpdate) ClearWebdavURL() *BackupConfigUpdate {
	_u.mutation.ClearWebdavURL()
	return _u
}

// SetWebdavUser sets the "webdav_user" field.
func (_u *BackupConfigUpdate) SetWebdavUser(v string) *BackupConfigUpdate {
	_u.mutation.SetWebdavUser(v)
	return _u
}

// SetNillableWebdavUser sets the "webdav_user" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableWebdavUser(v *string) *BackupConfigUpdate {
	if v != nil {
		_u.SetWebdavUser(*v)
	}
	return _u
}

// ClearWebdavUser clears the value of the "webdav_user" field.
func (_u *BackupConfigUpdate) ClearWebdavUser() *BackupConfigUpdate {
	_u.mutation.ClearWebdavUser()
	return _u
}

// SetWebdavPassword sets the "webdav_password" field.
func (_u *BackupConfigUpdate) SetWebdavPassword(v string) *BackupConfigUpdate {
	_u.mutation.SetWebdavPassword(v)
	return _u
}

// SetNillableWebdavPassword sets the "webdav_password" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableWebdavPassword(v *string) *BackupConfigUpdate {
	if v != nil {
		_u.SetWebdavPassword(*v)
	}
	return _u
}

// ClearWebdavPassword clears the value of the "webdav_password" field.
func (_u *BackupConfigUpdate) ClearWebdavPassword() *BackupConfigUpdate {
	_u.mutation.ClearWebdavPassword()
	return _u
}

// SetS3Endpoint sets the "s3_endpoint" field.
func (_u *BackupConfigUpdate) SetS3Endpoint(v string) *BackupConfigUpdate {
	_u.mutation.SetS3Endpoint(v)
	return _u
}

// SetNillableS3Endpoint sets the "s3_endpoint" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableS3Endpoint(v *string) *BackupConfigUpdate {
	if v != nil {
		_u.SetS3Endpoint(*v)
	}
	return _u
}

// ClearS3Endpoint clears the value of the "s3_endpoint" field.
func (_u *BackupConfigUpdate) ClearS3Endpoint() *BackupConfigUpdate {
	_u.mutation.ClearS3Endpoint()
	return _u
}

// SetS3Region sets the "s3_region" field.
func (_u *BackupConfigUpdate) SetS3Region(v string) *BackupConfigUpdate {
	_u.mutation.SetS3Region(v)
	return _u
}

// SetNillableS3Region sets the "s3_region" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableS3Region(v *string) *BackupConfigUpdate {
	if v != nil {
		_u.SetS3Region(*v)
	}
	return _u
}

// ClearS3Region clears the value of the "s3_region" field.
func (_u *BackupConfigUpdate) ClearS3Region() *BackupConfigUpdate {
	_u.mutation.ClearS3Region()
	return _u
}

// SetS3Bucket sets the "s3_bucket" field.
func (_u *BackupConfigUpdate) SetS3Bucket(v string) *BackupConfigUpdate {
	_u.mutation.SetS3Bucket(v)
	return _u
}

// SetNillableS3Bucket sets the "s3_bucket" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableS3Bucket(v *string) *BackupConfigUpdate {
	if v != nil {
		_u.SetS3Bucket(*v)
	}
	return _u
}

// ClearS3Bucket clears the value of the "s3_bucket" field.
func (_u *BackupConfigUpdate) ClearS3Bucket() *BackupConfigUpdate {
	_u.mutation.ClearS3Bucket()
	return _u
}

// SetS3AccessKey sets the "s3_access_key" field.
func (_u *BackupConfigUpdate) SetS3AccessKey(v string) *BackupConfigUpdate {
	_u.mutation.SetS3AccessKey(v)
	return _u
}

// SetNillableS3AccessKey sets the "s3_access_key" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableS3AccessKey(v *string) *BackupConfigUpdate {
	if v != nil {
		_u.SetS3AccessKey(*v)
	}
	return _u
}

// ClearS3AccessKey clears the value of the "s3_access_key" field.
func (_u *BackupConfigUpdate) ClearS3AccessKey() *BackupConfigUpdate {
	_u.mutation.ClearS3AccessKey()
	return _u
}

// SetS3SecretKey sets the "s3_secret_key" field.
func (_u *BackupConfigUpdate) SetS3SecretKey(v string) *BackupConfigUpdate {
	_u.mutation.SetS3SecretKey(v)
	return _u
}

// SetNillableS3SecretKey sets the "s3_secret_key" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableS3SecretKey(v *string) *BackupConfigUpdate {
	if v != nil {
		_u.SetS3SecretKey(*v)
	}
	return _u
}

// ClearS3SecretKey clears the value of the "s3_secret_key" field.
func (_u *BackupConfigUpdate) ClearS3SecretKey() *BackupConfigUpdate {
	_u.mutation.ClearS3SecretKey()
	return _u
}

// SetAutoBackupEnabled sets the "auto_backup_enabled" field.
func (_u *BackupConfigUpdate) SetAutoBackupEnabled(v bool) *BackupConfigUpdate {
	_u.mutation.SetAutoBackupEnabled(v)
	return _u
}

// SetNillableAutoBackupEnabled sets the "auto_backup_enabled" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableAutoBackupEnabled(v *bool) *BackupConfigUpdate {
	if v != nil {
		_u.SetAutoBackupEnabled(*v)
	}
	return _u
}

// SetBackupSchedule sets the "backup_schedule" field.
func (_u *BackupConfigUpdate) SetBackupSchedule(v string) *BackupConfigUpdate {
	_u.mutation.SetBackupSchedule(v)
	return _u
}

// SetNillableBackupSchedule sets the "backup_schedule" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableBackupSchedule(v *string) *BackupConfigUpdate {
	if v != nil {
		_u.SetBackupSchedule(*v)
	}
	return _u
}

// SetLastBackupAt sets the "last_backup_at" field.
func (_u *BackupConfigUpdate) SetLastBackupAt(v time.Time) *BackupConfigUpdate {
	_u.mutation.SetLastBackupAt(v)
	return _u
}

// SetNillableLastBackupAt sets the "last_backup_at" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableLastBackupAt(v *time.Time) *BackupConfigUpdate {
	if v != nil {
		_u.SetLastBackupAt(*v)
	}
	return _u
}

// ClearLastBackupAt clears the value of the "last_backup_at" field.
func (_u *BackupConfigUpdate) ClearLastBackupAt() *BackupConfigUpdate {
	_u.mutation.ClearLastBackupAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BackupConfigUpdate) SetCreatedAt(v time.Time) *BackupConfigUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BackupConfigUpdate) SetNillableCreatedAt(v *time.Time) *BackupConfigUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BackupConfigUpdate) SetUpdatedAt(v time.Time) *BackupConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BackupConfigMutation object of the builder.
func (_u *BackupConfigUpdate) Mutation() *BackupConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BackupConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BackupConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BackupConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BackupConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BackupConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := backupconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BackupConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(backupconfig.Table, backupconfig.Columns, sqlgraph.NewFieldSpec(backupconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WebdavURL(); ok {
		_spec.SetField(backupconfig.FieldWebdavURL, field.TypeString, value)
	}
	if _u.mutation.WebdavURLCleared() {
		_spec.ClearField(backupconfig.FieldWebdavURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebdavUser(); ok {
		_spec.SetField(backupconfig.FieldWebdavUser, field.TypeString, value)
	}
	if _u.mutation.WebdavUserCleared() {
		_spec.ClearField(backupconfig.FieldWebdavUser, field.TypeString)
	}
	if value, ok := _u.mutation.WebdavPassword(); ok {
		_spec.SetField(backupconfig.FieldWebdavPassword, field.TypeString, value)
	}
	if _u.mutation.WebdavPasswordCleared() {
		_spec.ClearField(backupconfig.FieldWebdavPassword, field.TypeString)
	}
	if value, ok := _u.mutation.S3Endpoint(); ok {
		_spec.SetField(backupconfig.FieldS3Endpoint, field.TypeString, value)
	}
	if _u.mutation.S3EndpointCleared() {
		_spec.ClearField(backupconfig.FieldS3Endpoint, field.TypeString)
	}
	if value, ok := _u.mutation.S3Region(); ok {
		_spec.SetField(backupconfig.FieldS3Region, field.TypeString, value)
	}
	if _u.mutation.S3RegionCleared() {
		_spec.ClearField(backupconfig.FieldS3Region, field.TypeString)
	}
	if value, ok := _u.mutation.S3Bucket(); ok {
		_spec.SetField(backupconfig.FieldS3Bucket, field.TypeString, value)
	}
	if _u.mutation.S3BucketCleared() {
		_spec.ClearField(backupconfig.FieldS3Bucket, field.TypeString)
	}
	if value, ok := _u.mutation.S3AccessKey(); ok {
		_spec.SetField(backupconfig.FieldS3AccessKey, field.TypeString, value)
	}
	if _u.mutation.S3AccessKeyCleared() {
		_spec.ClearField(backupconfig.FieldS3AccessKey, field.TypeString)
	}
	if value, ok := _u.mutation.S3SecretKey(); ok {
		_spec.SetField(backupconfig.FieldS3SecretKey, field.TypeString, value)
	}
	if _u.mutation.S3SecretKeyCleared() {
		_spec.ClearField(backupconfig.FieldS3SecretKey, field.TypeString)
	}
	if value, ok := _u.mutation.AutoBackupEnabled(); ok {
		_spec.SetField(backupconfig.FieldAutoBackupEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BackupSchedule(); ok {
		_spec.SetField(backupconfig.FieldBackupSchedule, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastBackupAt(); ok {
		_spec.SetField(backupconfig.FieldLastBackupAt, field.TypeTime, value)
	}
	if _u.mutation.LastBackupAtCleared() {
		_spec.ClearField(backupconfig.FieldLastBackupAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(backupconfig.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(backupconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{backupconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BackupConfigUpdateOne is the builder for updating a single BackupConfig entity.
type BackupConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BackupConfigMutation
}

// SetWebdavURL sets the "webdav_url" field.
func (_u *BackupConfigUpdateOne) SetWebdavURL(v string) *BackupConfigUpdateOne {
	_u.mutation.SetWebdavURL(v)
	return _u
}

// SetNillableWebdavURL sets the "webdav_url" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableWebdavURL(v *string) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetWebdavURL(*v)
	}
	return _u
}

// ClearWebdavURL clears the value of the "webdav_url" field.
func (_u *BackupConfigUpdateOne) ClearWebdavURL() *BackupConfigUpdateOne {
	_u.mutation.ClearWebdavURL()
	return _u
}

// SetWebdavUser sets the "webdav_user" field.
func (_u *BackupConfigUpdateOne) SetWebdavUser(v string) *BackupConfigUpdateOne {
	_u.mutation.SetWebdavUser(v)
	return _u
}

// SetNillableWebdavUser sets the "webdav_user" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableWebdavUser(v *string) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetWebdavUser(*v)
	}
	return _u
}

// ClearWebdavUser clears the value of the "webdav_user" field.
func (_u *BackupConfigUpdateOne) ClearWebdavUser() *BackupConfigUpdateOne {
	_u.mutation.ClearWebdavUser()
	return _u
}

// SetWebdavPassword sets the "webdav_password" field.
func (_u *BackupConfigUpdateOne) SetWebdavPassword(v string) *BackupConfigUpdateOne {
	_u.mutation.SetWebdavPassword(v)
	return _u
}

// SetNillableWebdavPassword sets the "webdav_password" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableWebdavPassword(v *string) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetWebdavPassword(*v)
	}
	return _u
}

// ClearWebdavPassword clears the value of the "webdav_password" field.
func (_u *BackupConfigUpdateOne) ClearWebdavPassword() *BackupConfigUpdateOne {
	_u.mutation.ClearWebdavPassword()
	return _u
}

// SetS3Endpoint sets the "s3_endpoint" field.
func (_u *BackupConfigUpdateOne) SetS3Endpoint(v string) *BackupConfigUpdateOne {
	_u.mutation.SetS3Endpoint(v)
	return _u
}

// SetNillableS3Endpoint sets the "s3_endpoint" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableS3Endpoint(v *string) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetS3Endpoint(*v)
	}
	return _u
}

// ClearS3Endpoint clears the value of the "s3_endpoint" field.
func (_u *BackupConfigUpdateOne) ClearS3Endpoint() *BackupConfigUpdateOne {
	_u.mutation.ClearS3Endpoint()
	return _u
}

// SetS3Region sets the "s3_region" field.
func (_u *BackupConfigUpdateOne) SetS3Region(v string) *BackupConfigUpdateOne {
	_u.mutation.SetS3Region(v)
	return _u
}

// SetNillableS3Region sets the "s3_region" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableS3Region(v *string) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetS3Region(*v)
	}
	return _u
}

// ClearS3Region clears the value of the "s3_region" field.
func (_u *BackupConfigUpdateOne) ClearS3Region() *BackupConfigUpdateOne {
	_u.mutation.ClearS3Region()
	return _u
}

// SetS3Bucket sets the "s3_bucket" field.
func (_u *BackupConfigUpdateOne) SetS3Bucket(v string) *BackupConfigUpdateOne {
	_u.mutation.SetS3Bucket(v)
	return _u
}

// SetNillableS3Bucket sets the "s3_bucket" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableS3Bucket(v *string) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetS3Bucket(*v)
	}
	return _u
}

// ClearS3Bucket clears the value of the "s3_bucket" field.
func (_u *BackupConfigUpdateOne) ClearS3Bucket() *BackupConfigUpdateOne {
	_u.mutation.ClearS3Bucket()
	return _u
}

// SetS3AccessKey sets the "s3_access_key" field.
func (_u *BackupConfigUpdateOne) SetS3AccessKey(v string) *BackupConfigUpdateOne {
	_u.mutation.SetS3AccessKey(v)
	return _u
}

// SetNillableS3AccessKey sets the "s3_access_key" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableS3AccessKey(v *string) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetS3AccessKey(*v)
	}
	return _u
}

// ClearS3AccessKey clears the value of the "s3_access_key" field.
func (_u *BackupConfigUpdateOne) ClearS3AccessKey() *BackupConfigUpdateOne {
	_u.mutation.ClearS3AccessKey()
	return _u
}

// SetS3SecretKey sets the "s3_secret_key" field.
func (_u *BackupConfigUpdateOne) SetS3SecretKey(v string) *BackupConfigUpdateOne {
	_u.mutation.SetS3SecretKey(v)
	return _u
}

// SetNillableS3SecretKey sets the "s3_secret_key" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableS3SecretKey(v *string) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetS3SecretKey(*v)
	}
	return _u
}

// ClearS3SecretKey clears the value of the "s3_secret_key" field.
func (_u *BackupConfigUpdateOne) ClearS3SecretKey() *BackupConfigUpdateOne {
	_u.mutation.ClearS3SecretKey()
	return _u
}

// SetAutoBackupEnabled sets the "auto_backup_enabled" field.
func (_u *BackupConfigUpdateOne) SetAutoBackupEnabled(v bool) *BackupConfigUpdateOne {
	_u.mutation.SetAutoBackupEnabled(v)
	return _u
}

// SetNillableAutoBackupEnabled sets the "auto_backup_enabled" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableAutoBackupEnabled(v *bool) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetAutoBackupEnabled(*v)
	}
	return _u
}

// SetBackupSchedule sets the "backup_schedule" field.
func (_u *BackupConfigUpdateOne) SetBackupSchedule(v string) *BackupConfigUpdateOne {
	_u.mutation.SetBackupSchedule(v)
	return _u
}

// SetNillableBackupSchedule sets the "backup_schedule" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableBackupSchedule(v *string) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetBackupSchedule(*v)
	}
	return _u
}

// SetLastBackupAt sets the "last_backup_at" field.
func (_u *BackupConfigUpdateOne) SetLastBackupAt(v time.Time) *BackupConfigUpdateOne {
	_u.mutation.SetLastBackupAt(v)
	return _u
}

// SetNillableLastBackupAt sets the "last_backup_at" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableLastBackupAt(v *time.Time) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetLastBackupAt(*v)
	}
	return _u
}

// ClearLastBackupAt clears the value of the "last_backup_at" field.
func (_u *BackupConfigUpdateOne) ClearLastBackupAt() *BackupConfigUpdateOne {
	_u.mutation.ClearLastBackupAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BackupConfigUpdateOne) SetCreatedAt(v time.Time) *BackupConfigUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BackupConfigUpdateOne) SetNillableCreatedAt(v *time.Time) *BackupConfigUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BackupConfigUpdateOne) SetUpdatedAt(v time.Time) *BackupConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BackupConfigMutation object of the builder.
func (_u *BackupConfigUpdateOne) Mutation() *BackupConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the BackupConfigUpdate builder.
func (_u *BackupConfigUpdateOne) Where(ps ...predicate.BackupConfig) *BackupConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BackupConfigUpdateOne) Select(field string, fields ...string) *BackupConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BackupConfig entity.
func (_u *BackupConfigUpdateOne) Save(ctx context.Context) (*BackupConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BackupConfigUpdateOne) SaveX(ctx context.Context) *BackupConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BackupConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BackupConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BackupConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := backupconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BackupConfigUpdateOne) sqlSave(ctx context.Context) (_node *BackupConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(backupconfig.Table, backupconfig.Columns, sqlgraph.NewFieldSpec(backupconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BackupConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, backupconfig.FieldID)
		for _, f := range fields {
			if !backupconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != backupconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WebdavURL(); ok {
		_spec.SetField(backupconfig.FieldWebdavURL, field.TypeString, value)
	}
	if _u.mutation.WebdavURLCleared() {
		_spec.ClearField(backupconfig.FieldWebdavURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebdavUser(); ok {
		_spec.SetField(backupconfig.FieldWebdavUser, field.TypeString, value)
	}
	if _u.mutation.WebdavUserCleared() {
		_spec.ClearField(backupconfig.FieldWebdavUser, field.TypeString)
	}
	if value, ok := _u.mutation.WebdavPassword(); ok {
		_spec.SetField(backupconfig.FieldWebdavPassword, field.TypeString, value)
	}
	if _u.mutation.WebdavPasswordCleared() {
		_spec.ClearField(backupconfig.FieldWebdavPassword, field.TypeString)
	}
	if value, ok := _u.mutation.S3Endpoint(); ok {
		_spec.SetField(backupconfig.FieldS3Endpoint, field.TypeString, value)
	}
	if _u.mutation.S3EndpointCleared() {
		_spec.ClearField(backupconfig.FieldS3Endpoint, field.TypeString)
	}
	if value, ok := _u.mutation.S3Region(); ok {
		_spec.SetField(backupconfig.FieldS3Region, field.TypeString, value)
	}
	if _u.mutation.S3RegionCleared() {
		_spec.ClearField(backupconfig.FieldS3Region, field.TypeString)
	}
	if value, ok := _u.mutation.S3Bucket(); ok {
		_spec.SetField(backupconfig.FieldS3Bucket, field.TypeString, value)
	}
	if _u.mutation.S3BucketCleared() {
		_spec.ClearField(backupconfig.FieldS3Bucket, field.TypeString)
	}
	if value, ok := _u.mutation.S3AccessKey(); ok {
		_spec.SetField(backupconfig.FieldS3AccessKey, field.TypeString, value)
	}
	if _u.mutation.S3AccessKeyCleared() {
		_spec.ClearField(backupconfig.FieldS3AccessKey, field.TypeString)
	}
	if value, ok := _u.mutation.S3SecretKey(); ok {
		_spec.SetField(backupconfig.FieldS3SecretKey, field.TypeString, value)
	}
	if _u.mutation.S3SecretKeyCleared() {
		_spec.ClearField(backupconfig.FieldS3SecretKey, field.TypeString)
	}
	if value, ok := _u.mutation.AutoBackupEnabled(); ok {
		_spec.SetField(backupconfig.FieldAutoBackupEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BackupSchedule(); ok {
		_spec.SetField(backupconfig.FieldBackupSchedule, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastBackupAt(); ok {
		_spec.SetField(backupconfig.FieldLastBackupAt, field.TypeTime, value)
	}
	if _u.mutation.LastBackupAtCleared() {
		_spec.ClearField(backupconfig.FieldLastBackupAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(backupconfig.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(backupconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BackupConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{backupconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
