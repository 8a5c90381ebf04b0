// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"notted/ent/backupconfig"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BackupConfigCreate is the builder for creating a BackupConfig entity.
type BackupConfigCreate struct {
	config
	mutation *BackupConfigMutation
	hooks    []Hook
}

// SetWebdavURL sets the "webdav_url" field.
func (_c *BackupConfigCreate) SetWebdavURL(v string) *BackupConfigCreate {
	_c.mutation.SetWebdavURL(v)
	return _c
}

// SetNillableWebdavURL sets the "webdav_url" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableWebdavURL(v *string) *BackupConfigCreate {
	if v != nil {
		_c.SetWebdavURL(*v)
	}
	return _c
}

// SetWebdavUser sets the "webdav_user" field.
func (_c *BackupConfigCreate) SetWebdavUser(v string) *BackupConfigCreate {
	_c.mutation.SetWebdavUser(v)
	return _c
}

// SetNillableWebdavUser sets the "webdav_user" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableWebdavUser(v *string) *BackupConfigCreate {
	if v != nil {
		_c.SetWebdavUser(*v)
	}
	return _c
}

// SetWebdavPassword sets the "webdav_password" field.
func (_c *BackupConfigCreate) SetWebdavPassword(v string) *BackupConfigCreate {
	_c.mutation.SetWebdavPassword(v)
	return _c
}

// SetNillableWebdavPassword sets the "webdav_password" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableWebdavPassword(v *string) *BackupConfigCreate {
	if v != nil {
		_c.SetWebdavPassword(*v)
	}
	return _c
}

// SetS3Endpoint sets the "s3_endpoint" field.
func (_c *BackupConfigCreate) SetS3Endpoint(v string) *BackupConfigCreate {
	_c.mutation.SetS3Endpoint(v)
	return _c
}

// SetNillableS3Endpoint sets the "s3_endpoint" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableS3Endpoint(v *string) *BackupConfigCreate {
	if v != nil {
		_c.SetS3Endpoint(*v)
	}
	return _c
}

// SetS3Region sets the "s3_region" field.
func (_c *BackupConfigCreate) SetS3Region(v string) *BackupConfigCreate {
	_c.mutation.SetS3Region(v)
	return _c
}

// SetNillableS3Region sets the "s3_region" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableS3Region(v *string) *BackupConfigCreate {
	if v != nil {
		_c.SetS3Region(*v)
	}
	return _c
}

// SetS3Bucket sets the "s3_bucket" field.
func (_c *BackupConfigCreate) SetS3Bucket(v string) *BackupConfigCreate {
	_c.mutation.SetS3Bucket(v)
	return _c
}

// SetNillableS3Bucket sets the "s3_bucket" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableS3Bucket(v *string) *BackupConfigCreate {
	if v != nil {
		_c.SetS3Bucket(*v)
	}
	return _c
}

// SetS3AccessKey sets the "s3_access_key" field.
func (_c *BackupConfigCreate) SetS3AccessKey(v string) *BackupConfigCreate {
	_c.mutation.SetS3AccessKey(v)
	return _c
}

// SetNillableS3AccessKey sets the "s3_access_key" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableS3AccessKey(v *string) *BackupConfigCreate {
	if v != nil {
		_c.SetS3AccessKey(*v)
	}
	return _c
}

// SetS3SecretKey sets the "s3_secret_key" field.
func (_c *BackupConfigCreate) SetS3SecretKey(v string) *BackupConfigCreate {
	_c.mutation.SetS3SecretKey(v)
	return _c
}

// SetNillableS3SecretKey sets the "s3_secret_key" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableS3SecretKey(v *string) *BackupConfigCreate {
	if v != nil {
		_c.SetS3SecretKey(*v)
	}
	return _c
}

// SetAutoBackupEnabled sets the "auto_backup_enabled" field.
func (_c *BackupConfigCreate) SetAutoBackupEnabled(v bool) *BackupConfigCreate {
	_c.mutation.SetAutoBackupEnabled(v)
	return _c
}

// SetNillableAutoBackupEnabled sets the "auto_backup_enabled" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableAutoBackupEnabled(v *bool) *BackupConfigCreate {
	if v != nil {
		_c.SetAutoBackupEnabled(*v)
	}
	return _c
}

// SetBackupSchedule sets the "backup_schedule" field.
func (_c *BackupConfigCreate) SetBackupSchedule(v string) *BackupConfigCreate {
	_c.mutation.SetBackupSchedule(v)
	return _c
}

// SetNillableBackupSchedule sets the "backup_schedule" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableBackupSchedule(v *string) *BackupConfigCreate {
	if v != nil {
		_c.SetBackupSchedule(*v)
	}
	return _c
}

// SetLastBackupAt sets the "last_backup_at" field.
func (_c *BackupConfigCreate) SetLastBackupAt(v time.Time) *BackupConfigCreate {
	_c.mutation.SetLastBackupAt(v)
	return _c
}

// SetNillableLastBackupAt sets the "last_backup_at" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableLastBackupAt(v *time.Time) *BackupConfigCreate {
	if v != nil {
		_c.SetLastBackupAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BackupConfigCreate) SetCreatedAt(v time.Time) *BackupConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableCreatedAt(v *time.Time) *BackupConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BackupConfigCreate) SetUpdatedAt(v time.Time) *BackupConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BackupConfigCreate) SetNillableUpdatedAt(v *time.Time) *BackupConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the BackupConfigMutation object of the builder.
func (_c *BackupConfigCreate) Mutation() *BackupConfigMutation {
	return _c.mutation
}

// Save creates the BackupConfig in the database.
func (_c *BackupConfigCreate) Save(ctx context.Context) (*BackupConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BackupConfigCreate) SaveX(ctx context.Context) *BackupConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BackupConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BackupConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BackupConfigCreate) defaults() {
	if _, ok := _c.mutation.AutoBackupEnabled(); !ok {
		v := backupconfig.DefaultAutoBackupEnabled
		_c.mutation.SetAutoBackupEnabled(v)
	}
	if _, ok := _c.mutation.BackupSchedule(); !ok {
		v := backupconfig.DefaultBackupSchedule
		_c.mutation.SetBackupSchedule(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := backupconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := backupconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BackupConfigCreate) check() error {
	if _, ok := _c.mutation.AutoBackupEnabled(); !ok {
		return &ValidationError{Name: "auto_backup_enabled", err: errors.New(`ent: missing required field "BackupConfig.auto_backup_enabled"`)}
	}
	if _, ok := _c.mutation.BackupSchedule(); !ok {
		return &ValidationError{Name: "backup_schedule", err: errors.New(`ent: missing required field "BackupConfig.backup_schedule"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BackupConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BackupConfig.updated_at"`)}
	}
	return nil
}

func (_c *BackupConfigCreate) sqlSave(ctx context.Context) (*BackupConfig, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BackupConfigCreate) createSpec() (*BackupConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &BackupConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(backupconfig.Table, sqlgraph.NewFieldSpec(backupconfig.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WebdavURL(); ok {
		_spec.SetField(backupconfig.FieldWebdavURL, field.TypeString, value)
		_node.WebdavURL = value
	}
	if value, ok := _c.mutation.WebdavUser(); ok {
		_spec.SetField(backupconfig.FieldWebdavUser, field.TypeString, value)
		_node.WebdavUser = value
	}
	if value, ok := _c.mutation.WebdavPassword(); ok {
		_spec.SetField(backupconfig.FieldWebdavPassword, field.TypeString, value)
		_node.WebdavPassword = value
	}
	if value, ok := _c.mutation.S3Endpoint(); ok {
		_spec.SetField(backupconfig.FieldS3Endpoint, field.TypeString, value)
		_node.S3Endpoint = value
	}
	if value, ok := _c.mutation.S3Region(); ok {
		_spec.SetField(backupconfig.FieldS3Region, field.TypeString, value)
		_node.S3Region = value
	}
	if value, ok := _c.mutation.S3Bucket(); ok {
		_spec.SetField(backupconfig.FieldS3Bucket, field.TypeString, value)
		_node.S3Bucket = value
	}
	if value, ok := _c.mutation.S3AccessKey(); ok {
		_spec.SetField(backupconfig.FieldS3AccessKey, field.TypeString, value)
		_node.S3AccessKey = value
	}
	if value, ok := _c.mutation.S3SecretKey(); ok {
		_spec.SetField(backupconfig.FieldS3SecretKey, field.TypeString, value)
		_node.S3SecretKey = value
	}
	if value, ok := _c.mutation.AutoBackupEnabled(); ok {
		_spec.SetField(backupconfig.FieldAutoBackupEnabled, field.TypeBool, value)
		_node.AutoBackupEnabled = value
	}
	if value, ok := _c.mutation.BackupSchedule(); ok {
		_spec.SetField(backupconfig.FieldBackupSchedule, field.TypeString, value)
		_node.BackupSchedule = value
	}
	if value, ok := _c.mutation.LastBackupAt(); ok {
		_spec.SetField(backupconfig.FieldLastBackupAt, field.TypeTime, value)
		_node.LastBackupAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(backupconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(backupconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BackupConfigCreateBulk is the builder for creating many BackupConfig entities in bulk.
type BackupConfigCreateBulk struct {
	config
	err      error
	builders []*BackupConfigCreate
}

// Save creates the BackupConfig entities in the database.
func (_c *BackupConfigCreateBulk) Save(ctx context.Context) ([]*BackupConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BackupConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BackupConfigMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BackupConfigCreateBulk) SaveX(ctx context.Context) []*BackupConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BackupConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BackupConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
