package domain

import "context"

// RecipeService performs the CRUD operations against the remote recipe
// service. It owns no state; the authoritative collection always lives
// server-side and callers resynchronize with FetchAll after any
// successful mutation instead of patching locally.
type RecipeService interface {
	FetchAll(ctx context.Context) ([]Recipe, error)
	Create(ctx context.Context, recipe Recipe) error
	Update(ctx context.Context, id string, recipe Recipe) error
	Delete(ctx context.Context, id string) error
}

// Authenticator exchanges credentials for a session at the service's
// auth endpoint.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (Session, error)
}

// KeyValue is the durable local persistence contract: two string
// entries (token, username) read on startup, written on login, cleared
// on logout. Implementations can be file-backed or in-memory.
type KeyValue interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}
