package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
)

// staticToken is a TokenSource with a fixed value.
type staticToken string

func (s staticToken) Token() string { return string(s) }

// fixtureServer is a minimal stand-in for the recipe service. It
// assigns IDs server-side, exactly like the real service — the client
// never fabricates one.
type fixtureServer struct {
	mu      sync.Mutex
	recipes []domain.Recipe
	token   string
}

func (f *fixtureServer) handler() http.Handler {
	// Routes are dispatched by hand on method + path so the fixture
	// works with Go toolchains predating the 1.22 ServeMux patterns.
	login := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds struct{ Username, Password string }
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Bad username or password"))
			return
		}
		json.NewEncoder(w).Encode(domain.Session{Username: creds.Username, Token: f.token})
	})

	list := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(f.recipes)
	})

	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+f.token
	}

	create := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("Admin access required"))
			return
		}
		var recipe domain.Recipe
		if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		recipe.ID = uuid.NewString()
		f.mu.Lock()
		f.recipes = append(f.recipes, recipe)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})

	update := func(w http.ResponseWriter, r *http.Request, id string) {
		if !authorized(r) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var recipe domain.Recipe
		json.NewDecoder(r.Body).Decode(&recipe)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.recipes {
			if f.recipes[i].ID == id {
				recipe.ID = id
				f.recipes[i] = recipe
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}

	remove := func(w http.ResponseWriter, r *http.Request, id string) {
		if !authorized(r) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.recipes {
			if f.recipes[i].ID == id {
				f.recipes = append(f.recipes[:i], f.recipes[i+1:]...)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/auth/login":
			login(w, r)
		case r.Method == http.MethodGet && r.URL.Path == "/api/recipes":
			list(w, r)
		case r.Method == http.MethodPost && r.URL.Path == "/api/recipes":
			create(w, r)
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/recipes/"):
			update(w, r, strings.TrimPrefix(r.URL.Path, "/api/recipes/"))
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/recipes/"):
			remove(w, r, strings.TrimPrefix(r.URL.Path, "/api/recipes/"))
		default:
			http.NotFound(w, r)
		}
	})
}

func setupRepo(t *testing.T) (*Repository, *fixtureServer) {
	t.Helper()
	fixture := &fixtureServer{token: uuid.NewString()}
	srv := httptest.NewServer(fixture.handler())
	t.Cleanup(srv.Close)
	repo := New(srv.URL, logger.New(logger.LevelOff, nil), WithHTTPClient(srv.Client()))
	return repo, fixture
}

func TestFetchAll(t *testing.T) {
	repo, fixture := setupRepo(t)
	fixture.recipes = []domain.Recipe{
		{ID: "r1", Name: "Pad Thai", Cuisine: "Thai", PrepTime: 30, Difficulty: domain.DifficultyMedium},
		{ID: "r2", Name: "Toast", Cuisine: "Breakfast", PrepTime: 5, Difficulty: domain.DifficultyEasy},
	}

	got, err := repo.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Pad Thai" || got[1].Name != "Toast" {
		t.Fatalf("unexpected recipes: %+v", got)
	}
}

func TestFetchAllServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	repo := New(srv.URL, logger.New(logger.LevelOff, nil))

	_, err := repo.FetchAll(context.Background())
	var ferr *domain.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if ferr.Message != "Failed to fetch recipes" {
		t.Fatalf("unexpected message %q", ferr.Message)
	}
}

func TestFetchAllTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	repo := New(srv.URL, logger.New(logger.LevelOff, nil))
	_, err := repo.FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	// The transport's own error surfaces, not a FetchError.
	var ferr *domain.FetchError
	if errors.As(err, &ferr) {
		t.Fatalf("transport failure must not be a FetchError: %v", err)
	}
}

func TestFetchTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	repo := New(srv.URL, logger.New(logger.LevelOff, nil), WithTimeout(50*time.Millisecond))
	if _, err := repo.FetchAll(context.Background()); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestLogin(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	sess, err := repo.Login(ctx, "admin", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Username != "admin" || sess.Token == "" {
		t.Fatalf("unexpected session %+v", sess)
	}

	_, err = repo.Login(ctx, "admin", "wrong")
	var aerr *domain.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if aerr.Message != "Bad username or password" {
		t.Fatalf("expected server message, got %q", aerr.Message)
	}
}

func TestLoginEmptyErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)
	repo := New(srv.URL, logger.New(logger.LevelOff, nil))

	_, err := repo.Login(context.Background(), "admin", "x")
	var aerr *domain.AuthError
	if !errors.As(err, &aerr) || aerr.Message != "Invalid credentials" {
		t.Fatalf("expected Invalid credentials, got %v", err)
	}
}

func TestMutationsCarryBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	t.Cleanup(srv.Close)

	repo := New(srv.URL, logger.New(logger.LevelOff, nil))
	repo.SetTokenSource(staticToken("tok-42"))

	if err := repo.Create(context.Background(), domain.Recipe{Name: "Soup"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if gotAuth != "Bearer tok-42" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}

	// Without a session no header is attached at all; the server's
	// rejection comes back as an ordinary MutationError.
	repo.SetTokenSource(staticToken(""))
	if err := repo.Create(context.Background(), domain.Recipe{Name: "Soup"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestMutationErrorTranslation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		call    func(*Repository) error
		wantMsg string
	}{
		{
			"create uses server body",
			"Recipe name already taken",
			func(r *Repository) error { return r.Create(context.Background(), domain.Recipe{Name: "X"}) },
			"Recipe name already taken",
		},
		{
			"create falls back on empty body",
			"",
			func(r *Repository) error { return r.Create(context.Background(), domain.Recipe{Name: "X"}) },
			"Failed to save recipe",
		},
		{
			"update falls back on empty body",
			"",
			func(r *Repository) error { return r.Update(context.Background(), "r1", domain.Recipe{Name: "X"}) },
			"Failed to save recipe",
		},
		{
			"delete falls back on empty body",
			"",
			func(r *Repository) error { return r.Delete(context.Background(), "r1") },
			"Failed to delete recipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			}))
			t.Cleanup(srv.Close)

			repo := New(srv.URL, logger.New(logger.LevelOff, nil))
			err := tt.call(repo)
			var merr *domain.MutationError
			if !errors.As(err, &merr) {
				t.Fatalf("expected MutationError, got %v", err)
			}
			if merr.Message != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, merr.Message)
			}
		})
	}
}

func TestCreateFetchRoundTrip(t *testing.T) {
	repo, fixture := setupRepo(t)
	repo.SetTokenSource(staticToken(fixture.token))
	ctx := context.Background()

	payload := domain.Recipe{
		Name:         "Tacos",
		Cuisine:      "Mexican",
		PrepTime:     15,
		Difficulty:   domain.DifficultyEasy,
		Ingredients:  []string{"Tortillas", "Beef"},
		Instructions: []string{"Cook beef", "Assemble"},
	}
	if err := repo.Create(ctx, payload); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FetchAll(ctx)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(got))
	}
	r := got[0]
	if r.ID == "" {
		t.Fatal("server should have assigned an ID")
	}
	if strings.Join(r.Ingredients, "|") != "Tortillas|Beef" {
		t.Fatalf("ingredient order lost: %v", r.Ingredients)
	}
	if strings.Join(r.Instructions, "|") != "Cook beef|Assemble" {
		t.Fatalf("instruction order lost: %v", r.Instructions)
	}

	// Update replaces wholesale.
	r.PrepTime = 20
	if err := repo.Update(ctx, r.ID, r); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.FetchAll(ctx)
	if got[0].PrepTime != 20 {
		t.Fatalf("expected prep time 20 after update, got %d", got[0].PrepTime)
	}

	// Delete removes it.
	if err := repo.Delete(ctx, r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = repo.FetchAll(ctx)
	if len(got) != 0 {
		t.Fatalf("expected empty collection after delete, got %d", len(got))
	}
}
