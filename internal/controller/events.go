package controller

import (
	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/form"
)

// Event is something that happened: a user action or the completion of
// a network call. The UI layer translates key presses into events; the
// effect runner translates repository results into events.
type Event interface{ event() }

// FetchLoaded carries a successfully fetched collection. Gen ties the
// result to the fetch that requested it; stale generations are ignored.
type FetchLoaded struct {
	Gen     int
	Recipes []domain.Recipe
}

// FetchFailed reports a failed collection load.
type FetchFailed struct {
	Gen int
	Err error
}

// RecipeSelected opens the detail view for a recipe.
type RecipeSelected struct{ Recipe domain.Recipe }

// DetailClosed closes the detail view.
type DetailClosed struct{}

// AddRequested asks for a blank recipe form. Gated on a session.
type AddRequested struct{}

// EditRequested asks for a pre-filled recipe form. Gated on a session.
type EditRequested struct{ Recipe domain.Recipe }

// DeleteRequested asks to delete a recipe. Gated on a session, then on
// an explicit confirmation.
type DeleteRequested struct{ Recipe domain.Recipe }

// DeleteConfirmed accepts the pending delete confirmation.
type DeleteConfirmed struct{}

// DeleteDeclined dismisses the pending delete confirmation.
type DeleteDeclined struct{}

// LoginRequested opens the login prompt directly (the "Admin Login"
// affordance, as opposed to the gate in front of a mutating action).
type LoginRequested struct{}

// LoginSubmitted carries the typed credentials.
type LoginSubmitted struct {
	Username string
	Password string
}

// LoginSucceeded reports an established session.
type LoginSucceeded struct{ Session domain.Session }

// LoginFailed reports a rejected or unreachable login.
type LoginFailed struct{ Err error }

// LoginCancelled dismisses the login prompt.
type LoginCancelled struct{}

// LogoutRequested clears the session.
type LogoutRequested struct{}

// FormSubmitted carries the draft as typed. Validation happens inside
// the controller; an invalid draft never produces an effect.
type FormSubmitted struct{ Draft form.Draft }

// FormCancelled dismisses the form, discarding the draft.
type FormCancelled struct{}

// SaveSucceeded reports a completed create or update.
type SaveSucceeded struct{}

// SaveFailed reports a failed create or update.
type SaveFailed struct{ Err error }

// DeleteSucceeded reports a completed delete.
type DeleteSucceeded struct{}

// DeleteFailed reports a failed delete.
type DeleteFailed struct{ Err error }

func (FetchLoaded) event()     {}
func (FetchFailed) event()     {}
func (RecipeSelected) event()  {}
func (DetailClosed) event()    {}
func (AddRequested) event()    {}
func (EditRequested) event()   {}
func (DeleteRequested) event() {}
func (DeleteConfirmed) event() {}
func (DeleteDeclined) event()  {}
func (LoginRequested) event()  {}
func (LoginSubmitted) event()  {}
func (LoginSucceeded) event()  {}
func (LoginFailed) event()     {}
func (LoginCancelled) event()  {}
func (LogoutRequested) event() {}
func (FormSubmitted) event()   {}
func (FormCancelled) event()   {}
func (SaveSucceeded) event()   {}
func (SaveFailed) event()      {}
func (DeleteSucceeded) event() {}
func (DeleteFailed) event()    {}
