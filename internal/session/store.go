// Package session owns the admin session: a username plus an opaque
// bearer token, mirrored into durable storage so it survives restarts.
package session

import (
	"context"
	"strings"

	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
)

// Storage keys, matching what the service hands back at login.
const (
	keyToken    = "token"
	keyUsername = "username"
)

// Store holds at most one active session and keeps it in sync with the
// durable key-value store. Mutating operations always write through.
type Store struct {
	kv      domain.KeyValue
	auth    domain.Authenticator
	log     *logger.Logger
	current *domain.Session
}

// NewStore creates a session store over the given persistence and
// authenticator.
func NewStore(kv domain.KeyValue, auth domain.Authenticator, log *logger.Logger) *Store {
	return &Store{kv: kv, auth: auth, log: log}
}

// Restore establishes a session from persisted credentials, if both the
// token and the username are present. No network call is made; a stale
// token is discovered lazily when the server rejects its first use.
func (s *Store) Restore() {
	token, okT := s.kv.Get(keyToken)
	username, okU := s.kv.Get(keyUsername)
	if !okT || !okU || token == "" || username == "" {
		s.log.Debug("session: nothing to restore")
		return
	}
	s.current = &domain.Session{Username: username, Token: token}
	s.log.Info("session: restored for %q", username)
}

// Login exchanges credentials for a session, persists it, and makes it
// current. Blank input is rejected with an AuthError before any network
// call. Overlapping logins are not coalesced; the last to complete wins.
func (s *Store) Login(ctx context.Context, username, password string) (domain.Session, error) {
	if strings.TrimSpace(username) == "" {
		return domain.Session{}, &domain.AuthError{Message: "Username is required."}
	}
	if strings.TrimSpace(password) == "" {
		return domain.Session{}, &domain.AuthError{Message: "Password is required."}
	}

	sess, err := s.auth.Login(ctx, username, password)
	if err != nil {
		s.log.Warn("session: login failed for %q: %v", username, err)
		return domain.Session{}, err
	}

	if err := s.kv.Set(keyToken, sess.Token); err != nil {
		s.log.Error("session: persist token: %v", err)
	}
	if err := s.kv.Set(keyUsername, sess.Username); err != nil {
		s.log.Error("session: persist username: %v", err)
	}
	s.current = &sess
	s.log.Info("session: logged in as %q", sess.Username)
	return sess, nil
}

// Logout clears both the in-memory and the durable session state.
// Idempotent.
func (s *Store) Logout() {
	if err := s.kv.Remove(keyToken); err != nil {
		s.log.Error("session: clear token: %v", err)
	}
	if err := s.kv.Remove(keyUsername); err != nil {
		s.log.Error("session: clear username: %v", err)
	}
	s.current = nil
	s.log.Info("session: logged out")
}

// Current returns the active session, or nil when logged out.
func (s *Store) Current() *domain.Session {
	return s.current
}

// Token returns the bearer token of the active session, or "" when
// logged out. The repository reads it at call time.
func (s *Store) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
