// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"notted/ent/entitlement"
	"notted/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EntitlementUpdate is the builder for updating Entitlement entities.
type EntitlementUpdate struct {
	config
	hooks    []Hook
	mutation *EntitlementMutation
}

// Where appends a list predicates to the EntitlementUpdate builder.
func (_u *EntitlementUpdate) Where(ps ...predicate.Entitlement) *EntitlementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *EntitlementUpdate) SetEmail(v string) *EntitlementUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableEmail(v *string) *EntitlementUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *EntitlementUpdate) SetOrderID(v string) *EntitlementUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableOrderID(v *string) *EntitlementUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *EntitlementUpdate) SetProductID(v string) *EntitlementUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableProductID(v *string) *EntitlementUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *EntitlementUpdate) ClearProductID() *EntitlementUpdate {
	_u.mutation.ClearProductID()
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *EntitlementUpdate) SetCustomerID(v string) *EntitlementUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableCustomerID(v *string) *EntitlementUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *EntitlementUpdate) ClearCustomerID() *EntitlementUpdate {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *EntitlementUpdate) SetAmount(v int64) *EntitlementUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableAmount(v *int64) *EntitlementUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *EntitlementUpdate) AddAmount(v int64) *EntitlementUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *EntitlementUpdate) ClearAmount() *EntitlementUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *EntitlementUpdate) SetCurrency(v string) *EntitlementUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableCurrency(v *string) *EntitlementUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntitlementUpdate) SetCreatedAt(v time.Time) *EntitlementUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableCreatedAt(v *time.Time) *EntitlementUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the EntitlementMutation object of the builder.
func (_u *EntitlementUpdate) Mutation() *EntitlementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntitlementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitlementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntitlementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitlementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitlementUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := entitlement.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Entitlement.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderID(); ok {
		if err := entitlement.OrderIDValidator(v); err != nil {
			return &ValidationError{Name: "order_id", err: fmt.Errorf(`ent: validator failed for field "Entitlement.order_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EntitlementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitlement.Table, entitlement.Columns, sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(entitlement.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(entitlement.FieldOrderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductID(); ok {
		_spec.SetField(entitlement.FieldProductID, field.TypeString, value)
	}
	if _u.mutation.ProductIDCleared() {
		_spec.ClearField(entitlement.FieldProductID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(entitlement.FieldCustomerID, field.TypeString, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(entitlement.FieldCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(entitlement.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(entitlement.FieldAmount, field.TypeInt64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(entitlement.FieldAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(entitlement.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entitlement.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitlement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntitlementUpdateOne is the builder for updating a single Entitlement entity.
type EntitlementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntitlementMutation
}

// SetEmail sets the "email" field.
func (_u *EntitlementUpdateOne) SetEmail(v string) *EntitlementUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableEmail(v *string) *EntitlementUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *EntitlementUpdateOne) SetOrderID(v string) *EntitlementUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableOrderID(v *string) *EntitlementUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *EntitlementUpdateOne) SetProductID(v string) *EntitlementUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableProductID(v *string) *EntitlementUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *EntitlementUpdateOne) ClearProductID() *EntitlementUpdateOne {
	_u.mutation.ClearProductID()
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *EntitlementUpdateOne) SetCustomerID(v string) *EntitlementUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableCustomerID(v *string) *EntitlementUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *EntitlementUpdateOne) ClearCustomerID() *EntitlementUpdateOne {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *EntitlementUpdateOne) SetAmount(v int64) *EntitlementUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableAmount(v *int64) *EntitlementUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *EntitlementUpdateOne) AddAmount(v int64) *EntitlementUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *EntitlementUpdateOne) ClearAmount() *EntitlementUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *EntitlementUpdateOne) SetCurrency(v string) *EntitlementUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableCurrency(v *string) *EntitlementUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntitlementUpdateOne) SetCreatedAt(v time.Time) *EntitlementUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableCreatedAt(v *time.Time) *EntitlementUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the EntitlementMutation object of the builder.
func (_u *EntitlementUpdateOne) Mutation() *EntitlementMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntitlementUpdate builder.
func (_u *EntitlementUpdateOne) Where(ps ...predicate.Entitlement) *EntitlementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntitlementUpdateOne) Select(field string, fields ...string) *EntitlementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entitlement entity.
func (_u *EntitlementUpdateOne) Save(ctx context.Context) (*Entitlement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitlementUpdateOne) SaveX(ctx context.Context) *Entitlement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntitlementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitlementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitlementUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := entitlement.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Entitlement.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderID(); ok {
		if err := entitlement.OrderIDValidator(v); err != nil {
			return &ValidationError{Name: "order_id", err: fmt.Errorf(`ent: validator failed for field "Entitlement.order_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EntitlementUpdateOne) sqlSave(ctx context.Context) (_node *Entitlement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitlement.Table, entitlement.Columns, sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entitlement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitlement.FieldID)
		for _, f := range fields {
			if !entitlement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitlement.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(entitlement.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(entitlement.FieldOrderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductID(); ok {
		_spec.SetField(entitlement.FieldProductID, field.TypeString, value)
	}
	if _u.mutation.ProductIDCleared() {
		_spec.ClearField(entitlement.FieldProductID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(entitlement.FieldCustomerID, field.TypeString, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(entitlement.FieldCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(entitlement.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(entitlement.FieldAmount, field.TypeInt64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(entitlement.FieldAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(entitlement.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entitlement.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Entitlement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitlement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
