package controller

import "github.com/hammamikhairi/recipedeck/internal/domain"

// Effect is a network call the controller wants performed. The runtime
// executes effects against the repository and session store and feeds
// the results back in as events. Keeping the calls out of Apply keeps
// the state machine synchronous and fully testable.
type Effect interface{ effect() }

// FetchRecipes reloads the whole collection. Gen must be echoed back in
// the resulting FetchLoaded/FetchFailed.
type FetchRecipes struct{ Gen int }

// PerformLogin exchanges credentials via the session store.
type PerformLogin struct {
	Username string
	Password string
}

// CreateRecipe posts a normalized draft as a new recipe.
type CreateRecipe struct{ Recipe domain.Recipe }

// UpdateRecipe replaces the recipe with the given ID wholesale.
type UpdateRecipe struct {
	ID     string
	Recipe domain.Recipe
}

// DeleteRecipe removes the recipe with the given ID.
type DeleteRecipe struct{ ID string }

func (FetchRecipes) effect() {}
func (PerformLogin) effect() {}
func (CreateRecipe) effect() {}
func (UpdateRecipe) effect() {}
func (DeleteRecipe) effect() {}
