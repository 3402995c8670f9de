// Package remote talks to the recipe service's REST API. It shapes
// requests, attaches the bearer token when a session is present, and
// translates HTTP failures into the domain error taxonomy. It holds no
// state of its own; callers refetch the full collection after any
// successful mutation.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.RecipeService = (*Repository)(nil)
	_ domain.Authenticator = (*Repository)(nil)
)

// TokenSource supplies the current bearer token, or "" when logged
// out. The repository reads it at call time and never caches it.
type TokenSource interface {
	Token() string
}

// Option configures the Repository.
type Option func(*Repository)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Repository) { r.http = c }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Repository) { r.http.Timeout = d }
}

// Repository is the HTTP client for the recipe service.
type Repository struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	log     *logger.Logger
}

// New creates a repository for the service at baseURL (scheme + host,
// no trailing slash required).
func New(baseURL string, log *logger.Logger, opts ...Option) *Repository {
	r := &Repository{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// SetTokenSource binds the session store after construction. The store
// needs the repository for its auth endpoint, so the two are wired in
// two steps.
func (r *Repository) SetTokenSource(ts TokenSource) {
	r.tokens = ts
}

// FetchAll loads the whole recipe collection. Unauthenticated. A
// transport failure is returned as-is; a non-2xx status becomes a
// FetchError.
func (r *Repository) FetchAll(ctx context.Context) ([]domain.Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/recipes", nil)
	if err != nil {
		return nil, err
	}

	r.log.Debug("remote: GET /api/recipes")
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		r.log.Warn("remote: fetch recipes: %s", resp.Status)
		return nil, &domain.FetchError{Message: "Failed to fetch recipes"}
	}

	var recipes []domain.Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
		return nil, fmt.Errorf("remote: decode recipes: %w", err)
	}
	r.log.Debug("remote: fetched %d recipes", len(recipes))
	return recipes, nil
}

// Login exchanges credentials at the auth endpoint. A non-2xx response
// becomes an AuthError carrying the server's message, or "Invalid
// credentials" when the body is empty.
func (r *Repository) Login(ctx context.Context, username, password string) (domain.Session, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return domain.Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return domain.Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	r.log.Debug("remote: POST /api/auth/login (user=%s)", username)
	resp, err := r.http.Do(req)
	if err != nil {
		return domain.Session{}, err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		msg := readBody(resp.Body)
		if msg == "" {
			msg = "Invalid credentials"
		}
		r.log.Warn("remote: login: %s", resp.Status)
		return domain.Session{}, &domain.AuthError{Message: msg}
	}

	var sess domain.Session
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return domain.Session{}, fmt.Errorf("remote: decode login response: %w", err)
	}
	return sess, nil
}

// Create posts a normalized draft as a new recipe. Authenticated.
func (r *Repository) Create(ctx context.Context, recipe domain.Recipe) error {
	return r.mutate(ctx, http.MethodPost, "/api/recipes", &recipe, "Failed to save recipe")
}

// Update replaces the recipe with the given id wholesale. Authenticated.
func (r *Repository) Update(ctx context.Context, id string, recipe domain.Recipe) error {
	return r.mutate(ctx, http.MethodPut, "/api/recipes/"+url.PathEscape(id), &recipe, "Failed to save recipe")
}

// Delete removes the recipe with the given id. Authenticated.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.mutate(ctx, http.MethodDelete, "/api/recipes/"+url.PathEscape(id), nil, "Failed to delete recipe")
}

// mutate issues an authenticated write and applies the uniform error
// translation: non-2xx fails with the response body as the message, or
// fallback when the body is empty. The bearer header is attached only
// when a session is present; with no session the server's 401/403 comes
// back through the same translation.
func (r *Repository) mutate(ctx context.Context, method, path string, payload *domain.Recipe, fallback string) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.tokens != nil {
		if token := r.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	r.log.Debug("remote: %s %s", method, path)
	resp, err := r.http.Do(req)
	if err != nil {
		return &domain.MutationError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		msg := readBody(resp.Body)
		if msg == "" {
			msg = fallback
		}
		r.log.Warn("remote: %s %s: %s", method, path, resp.Status)
		return &domain.MutationError{Message: msg}
	}
	return nil
}

func success(code int) bool {
	return code >= 200 && code < 300
}

// readBody drains up to a sane limit of the response body as text.
// Error bodies are plain text per the service contract.
func readBody(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
