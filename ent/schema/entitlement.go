package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Entitlement holds the schema definition for a paid purchase recorded by
// the payment-provider webhook. The restore endpoint answers premium by
// checking whether at least one row exists for a lowercased email.
type Entitlement struct {
	ent.Schema
}

// Fields of the Entitlement.
func (Entitlement) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty(), // Stored lowercased
		field.String("order_id").
			Unique().
			NotEmpty(), // Provider order id; upsert key for webhook retries
		field.String("product_id").
			Optional(),
		field.String("customer_id").
			Optional(),
		field.Int64("amount").
			Optional(), // Minor currency units as sent by the provider
		field.String("currency").
			Default("USD"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Entitlement.
func (Entitlement) Edges() []ent.Edge {
	return nil
}

// Indexes of the Entitlement.
func (Entitlement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
