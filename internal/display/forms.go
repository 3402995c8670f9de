package display

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/form"
)

// ── Login form ───────────────────────────────────────────────────

type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    int // 0 username, 1 password
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "admin"
	username.CharLimit = 64
	username.Width = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{username: username, password: password}
}

func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd
}

func (f loginForm) cycle(backwards bool) loginForm {
	f.username.Blur()
	f.password.Blur()
	// Two fields, so forward and backward are the same toggle.
	_ = backwards
	f.focus = 1 - f.focus
	if f.focus == 0 {
		f.username.Focus()
	} else {
		f.password.Focus()
	}
	return f
}

// ── Recipe form ──────────────────────────────────────────────────

// Field focus order within the recipe form.
const (
	focusName = iota
	focusCuisine
	focusPrepTime
	focusDifficulty
	focusIngredients
	focusInstructions
	focusCount
)

type recipeForm struct {
	name         textinput.Model
	cuisine      textinput.Model
	prepTime     textinput.Model
	difficulty   domain.Difficulty
	ingredients  textarea.Model
	instructions textarea.Model
	focus        int
}

// newRecipeForm builds the form, pre-filled from the recipe being
// edited or blank for a new one.
func newRecipeForm(editing *domain.Recipe) recipeForm {
	var draft form.Draft
	if editing != nil {
		draft = form.FromRecipe(*editing)
	} else {
		draft.Difficulty = domain.DifficultyEasy
	}

	scalar := func(placeholder, value string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 128
		ti.Width = width
		ti.SetValue(value)
		return ti
	}

	multi := func(value string) textarea.Model {
		ta := textarea.New()
		ta.Placeholder = "One per line"
		ta.SetWidth(44)
		ta.SetHeight(4)
		ta.ShowLineNumbers = false
		ta.SetValue(value)
		return ta
	}

	f := recipeForm{
		name:         scalar("Recipe name", draft.Name, 40),
		cuisine:      scalar("Cuisine", draft.Cuisine, 24),
		prepTime:     scalar("Minutes", draft.PrepTime, 8),
		difficulty:   draft.Difficulty,
		ingredients:  multi(draft.Ingredients),
		instructions: multi(draft.Instructions),
	}
	f.name.Focus()
	return f
}

// draft snapshots the current field values.
func (f recipeForm) draft() form.Draft {
	return form.Draft{
		Name:         f.name.Value(),
		Cuisine:      f.cuisine.Value(),
		PrepTime:     f.prepTime.Value(),
		Difficulty:   f.difficulty,
		Ingredients:  f.ingredients.Value(),
		Instructions: f.instructions.Value(),
	}
}

func (f recipeForm) update(msg tea.Msg) (recipeForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusCuisine:
		f.cuisine, cmd = f.cuisine.Update(msg)
	case focusPrepTime:
		f.prepTime, cmd = f.prepTime.Update(msg)
	case focusIngredients:
		f.ingredients, cmd = f.ingredients.Update(msg)
	case focusInstructions:
		f.instructions, cmd = f.instructions.Update(msg)
	}
	return f, cmd
}

func (f recipeForm) cycle(backwards bool) recipeForm {
	f.blurAll()
	if backwards {
		f.focus = (f.focus + focusCount - 1) % focusCount
	} else {
		f.focus = (f.focus + 1) % focusCount
	}
	switch f.focus {
	case focusName:
		f.name.Focus()
	case focusCuisine:
		f.cuisine.Focus()
	case focusPrepTime:
		f.prepTime.Focus()
	case focusIngredients:
		f.ingredients.Focus()
	case focusInstructions:
		f.instructions.Focus()
	}
	return f
}

func (f *recipeForm) blurAll() {
	f.name.Blur()
	f.cuisine.Blur()
	f.prepTime.Blur()
	f.ingredients.Blur()
	f.instructions.Blur()
}
