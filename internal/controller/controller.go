// Package controller implements the view state machine: which screen
// is active, what the collection holds, and which network calls happen
// when. Apply never performs I/O itself — it returns effects for the
// runtime to execute, and the results come back as events.
package controller

import (
	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
	"github.com/hammamikhairi/recipedeck/internal/session"
)

// Controller owns the in-memory recipe collection and the view state.
// The collection is always a full replacement fetched from the server
// after any successful mutation — never incrementally patched.
type Controller struct {
	sessions *session.Store
	log      *logger.Logger

	mode    Mode
	recipes []domain.Recipe
	banner  string

	selected      *domain.Recipe // detail view
	editing       *domain.Recipe // recipe being edited; nil while adding
	pendingDelete *domain.Recipe

	loginReturn  Mode // mode the login prompt stacked over
	formReturn   Mode // mode the form stacked over
	deleteReturn Mode // mode the delete confirmation stacked over
	loginError   string
	formError    string

	loggingIn  bool
	submitting bool
	deleting   bool

	fetchGen int // discriminates stale fetch results
}

// New creates a controller. The session store gates every mutating
// action; call Start to kick off the initial load.
func New(sessions *session.Store, log *logger.Logger) *Controller {
	return &Controller{
		sessions:     sessions,
		log:          log,
		mode:         ModeLoading,
		loginReturn:  ModeBrowsing,
		formReturn:   ModeBrowsing,
		deleteReturn: ModeBrowsing,
	}
}

// Start returns the initial fetch effect.
func (c *Controller) Start() []Effect {
	c.mode = ModeLoading
	return c.refetch()
}

// Apply advances the state machine by one event and returns the
// effects, if any, the runtime should execute.
func (c *Controller) Apply(ev Event) []Effect {
	switch e := ev.(type) {

	case FetchLoaded:
		if e.Gen != c.fetchGen {
			c.log.Debug("controller: dropping stale fetch result (gen %d, want %d)", e.Gen, c.fetchGen)
			return nil
		}
		c.recipes = e.Recipes
		c.banner = ""
		if c.mode == ModeLoading {
			c.mode = ModeBrowsing
		}
		c.log.Info("controller: collection loaded (%d recipes)", len(c.recipes))

	case FetchFailed:
		if e.Gen != c.fetchGen {
			c.log.Debug("controller: dropping stale fetch failure (gen %d, want %d)", e.Gen, c.fetchGen)
			return nil
		}
		c.recipes = nil
		c.banner = errText(e.Err) + " — make sure the backend is running"
		if c.mode == ModeLoading {
			c.mode = ModeBrowsing
		}
		c.log.Warn("controller: fetch failed: %v", e.Err)

	case RecipeSelected:
		if c.mode != ModeBrowsing {
			return nil
		}
		r := e.Recipe
		c.selected = &r
		c.mode = ModeDetail

	case DetailClosed:
		c.selected = nil
		c.mode = ModeBrowsing

	case AddRequested:
		if !c.requireSession() {
			return nil
		}
		c.editing = nil
		c.formError = ""
		c.formReturn = c.mode
		c.mode = ModeForm

	case EditRequested:
		if !c.requireSession() {
			return nil
		}
		r := e.Recipe
		c.editing = &r
		c.formError = ""
		c.formReturn = c.mode
		c.mode = ModeForm

	case DeleteRequested:
		if c.deleting {
			return nil
		}
		if !c.requireSession() {
			return nil
		}
		r := e.Recipe
		c.pendingDelete = &r
		c.deleteReturn = c.mode
		c.mode = ModeConfirmDelete

	case DeleteDeclined:
		// Declining restores the view the confirmation stacked over,
		// detail included; nothing else changes.
		c.pendingDelete = nil
		c.mode = c.deleteReturn

	case DeleteConfirmed:
		if c.pendingDelete == nil {
			return nil
		}
		id := c.pendingDelete.ID
		c.pendingDelete = nil
		c.deleting = true
		c.selected = nil
		c.mode = ModeBrowsing
		return []Effect{DeleteRecipe{ID: id}}

	case DeleteSucceeded:
		c.deleting = false
		c.selected = nil
		return c.refetch()

	case DeleteFailed:
		// Banner-level: there is no form to show an inline error in.
		// The list stays as-is until the next successful fetch.
		c.deleting = false
		c.banner = "Error deleting recipe: " + errText(e.Err)
		c.log.Warn("controller: delete failed: %v", e.Err)

	case LoginRequested:
		if c.sessions.Current() != nil {
			return nil
		}
		c.loginReturn = c.mode
		c.loginError = ""
		c.mode = ModeLogin

	case LoginSubmitted:
		if c.mode != ModeLogin || c.loggingIn {
			return nil
		}
		c.loggingIn = true
		c.loginError = ""
		return []Effect{PerformLogin{Username: e.Username, Password: e.Password}}

	case LoginSucceeded:
		c.loggingIn = false
		c.loginError = ""
		// Return to wherever the prompt stacked over. The originally
		// blocked action is not resumed; the user re-invokes it.
		c.mode = c.loginReturn
		c.log.Info("controller: login succeeded for %q", e.Session.Username)

	case LoginFailed:
		c.loggingIn = false
		c.loginError = errText(e.Err)

	case LoginCancelled:
		if c.mode != ModeLogin {
			return nil
		}
		c.loginError = ""
		c.mode = c.loginReturn

	case LogoutRequested:
		c.sessions.Logout()

	case FormSubmitted:
		if c.mode != ModeForm || c.submitting {
			return nil
		}
		payload, err := e.Draft.Validate()
		if err != nil {
			c.formError = errText(err)
			return nil
		}
		c.formError = ""
		c.submitting = true
		if c.editing != nil {
			return []Effect{UpdateRecipe{ID: c.editing.ID, Recipe: payload}}
		}
		return []Effect{CreateRecipe{Recipe: payload}}

	case FormCancelled:
		if c.mode != ModeForm || c.submitting {
			return nil
		}
		c.editing = nil
		c.formError = ""
		c.mode = c.formReturn

	case SaveSucceeded:
		c.submitting = false
		c.editing = nil
		c.formError = ""
		c.selected = nil
		c.mode = ModeBrowsing
		return c.refetch()

	case SaveFailed:
		// Inline in the form; the draft is preserved so the user can
		// correct and resubmit.
		c.submitting = false
		c.formError = errText(e.Err)
	}

	return nil
}

// requireSession gates a mutating action: with no session the login
// prompt stacks over the current mode and the action is dropped.
func (c *Controller) requireSession() bool {
	if c.sessions.Current() != nil {
		return true
	}
	c.loginReturn = c.mode
	c.loginError = ""
	c.mode = ModeLogin
	c.log.Debug("controller: %s gated on login", c.loginReturn)
	return false
}

// refetch bumps the fetch generation and returns the fetch effect.
// Results tagged with an older generation are discarded.
func (c *Controller) refetch() []Effect {
	c.fetchGen++
	return []Effect{FetchRecipes{Gen: c.fetchGen}}
}

// ── Accessors ────────────────────────────────────────────────────

// Mode returns the coarse active screen.
func (c *Controller) Mode() Mode { return c.mode }

// State returns the resolved view state.
func (c *Controller) State() ViewState {
	switch c.mode {
	case ModeLoading:
		return StateLoading
	case ModeBrowsing:
		if len(c.recipes) == 0 {
			return StateEmptyCollection
		}
		return StateBrowsing
	case ModeDetail:
		return StateDetail
	case ModeLogin:
		return StateLoginPrompt
	case ModeForm:
		if c.submitting {
			return StateSubmitting
		}
		return StateEditing
	case ModeConfirmDelete:
		return StateConfirmingDelete
	default:
		return StateBrowsing
	}
}

// Recipes returns the in-memory collection.
func (c *Controller) Recipes() []domain.Recipe { return c.recipes }

// Banner returns the persistent error banner, or "".
func (c *Controller) Banner() string { return c.banner }

// Selected returns the recipe open in the detail view, or nil.
func (c *Controller) Selected() *domain.Recipe { return c.selected }

// Editing returns the recipe being edited, or nil while adding.
func (c *Controller) Editing() *domain.Recipe { return c.editing }

// PendingDelete returns the recipe awaiting delete confirmation, or nil.
func (c *Controller) PendingDelete() *domain.Recipe { return c.pendingDelete }

// FormError returns the inline form error, or "".
func (c *Controller) FormError() string { return c.formError }

// LoginError returns the inline login error, or "".
func (c *Controller) LoginError() string { return c.loginError }

// Submitting reports whether a create/update is in flight.
func (c *Controller) Submitting() bool { return c.submitting }

// Deleting reports whether a delete is in flight. A new delete request
// is swallowed until it completes.
func (c *Controller) Deleting() bool { return c.deleting }

// LoggingIn reports whether a login is in flight.
func (c *Controller) LoggingIn() bool { return c.loggingIn }

// Session returns the active session, or nil.
func (c *Controller) Session() *domain.Session { return c.sessions.Current() }

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
