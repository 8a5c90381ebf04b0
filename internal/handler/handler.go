package handler

import (
	"notted/ent"
	"notted/internal/entitlement"
	"notted/internal/persist"
	"notted/internal/store"
)

// Handler carries the request handlers' collaborators: the entitlement
// database, the in-memory note store and its persistence adapter, and
// the restore-by-email resolver.
type Handler struct {
	client   *ent.Client
	store    *store.Store
	persist  *persist.Adapter
	resolver *entitlement.Resolver
}

func NewHandler(client *ent.Client, st *store.Store, pa *persist.Adapter, resolver *entitlement.Resolver) *Handler {
	return &Handler{
		client:   client,
		store:    st,
		persist:  pa,
		resolver: resolver,
	}
}
