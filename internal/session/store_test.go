package session

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
	"github.com/hammamikhairi/recipedeck/internal/storage"
)

// fakeAuth hands back a canned session or error and records calls.
type fakeAuth struct {
	sess  domain.Session
	err   error
	calls int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (domain.Session, error) {
	f.calls++
	if f.err != nil {
		return domain.Session{}, f.err
	}
	return f.sess, nil
}

func setupStore(t *testing.T, auth domain.Authenticator) (*Store, domain.KeyValue) {
	t.Helper()
	kv := storage.NewMemoryStore()
	log := logger.New(logger.LevelOff, nil)
	return NewStore(kv, auth, log), kv
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name     string
		seed     map[string]string
		wantUser string
	}{
		{"both present", map[string]string{"token": "tok", "username": "admin"}, "admin"},
		{"token only", map[string]string{"token": "tok"}, ""},
		{"username only", map[string]string{"username": "admin"}, ""},
		{"nothing", nil, ""},
		{"empty values", map[string]string{"token": "", "username": "admin"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, kv := setupStore(t, &fakeAuth{})
			for k, v := range tt.seed {
				kv.Set(k, v)
			}
			store.Restore()
			if tt.wantUser == "" {
				if store.Current() != nil {
					t.Fatalf("expected no session, got %+v", store.Current())
				}
				return
			}
			if store.Current() == nil || store.Current().Username != tt.wantUser {
				t.Fatalf("expected session for %q, got %+v", tt.wantUser, store.Current())
			}
		})
	}
}

func TestLoginRejectsBlankInputBeforeNetwork(t *testing.T) {
	auth := &fakeAuth{}
	store, _ := setupStore(t, auth)
	ctx := context.Background()

	tests := []struct {
		username, password, wantMsg string
	}{
		{"  ", "secret", "Username is required."},
		{"admin", "", "Password is required."},
	}
	for _, tt := range tests {
		_, err := store.Login(ctx, tt.username, tt.password)
		var aerr *domain.AuthError
		if !errors.As(err, &aerr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if aerr.Message != tt.wantMsg {
			t.Fatalf("expected %q, got %q", tt.wantMsg, aerr.Message)
		}
	}
	if auth.calls != 0 {
		t.Fatalf("expected no network calls, got %d", auth.calls)
	}
}

func TestLoginPersistsSession(t *testing.T) {
	auth := &fakeAuth{sess: domain.Session{Username: "admin", Token: "tok-1"}}
	store, kv := setupStore(t, auth)

	sess, err := store.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", sess.Token)
	}
	if store.Token() != "tok-1" {
		t.Fatalf("expected current token tok-1, got %q", store.Token())
	}
	if v, ok := kv.Get("token"); !ok || v != "tok-1" {
		t.Fatalf("token not persisted, got %q (present=%v)", v, ok)
	}
	if v, ok := kv.Get("username"); !ok || v != "admin" {
		t.Fatalf("username not persisted, got %q (present=%v)", v, ok)
	}
}

func TestLoginFailurePropagates(t *testing.T) {
	auth := &fakeAuth{err: &domain.AuthError{Message: "Invalid credentials"}}
	store, kv := setupStore(t, auth)

	_, err := store.Login(context.Background(), "admin", "wrong")
	var aerr *domain.AuthError
	if !errors.As(err, &aerr) || aerr.Message != "Invalid credentials" {
		t.Fatalf("expected Invalid credentials, got %v", err)
	}
	if store.Current() != nil {
		t.Fatal("failed login must not establish a session")
	}
	if _, ok := kv.Get("token"); ok {
		t.Fatal("failed login must not persist a token")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	auth := &fakeAuth{sess: domain.Session{Username: "admin", Token: "tok-1"}}
	store, kv := setupStore(t, auth)

	if _, err := store.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	store.Logout()
	store.Logout() // second call is a no-op, not an error

	if store.Current() != nil {
		t.Fatal("expected no session after logout")
	}
	if store.Token() != "" {
		t.Fatalf("expected empty token, got %q", store.Token())
	}
	if _, ok := kv.Get("token"); ok {
		t.Fatal("token should be cleared from storage")
	}
	if _, ok := kv.Get("username"); ok {
		t.Fatal("username should be cleared from storage")
	}
}
