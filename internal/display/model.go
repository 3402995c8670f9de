// Package display renders the recipe client in the terminal using
// Bubble Tea. The model translates key presses into controller events,
// executes the resulting effects as commands, and feeds completions
// back in as events — the controller itself never blocks.
package display

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipedeck/internal/controller"
	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
	"github.com/hammamikhairi/recipedeck/internal/session"
)

// eventMsg wraps a controller event for delivery through Bubble Tea.
type eventMsg struct{ ev controller.Event }

// Model is the top-level Bubble Tea model.
type Model struct {
	ctrl     *controller.Controller
	repo     domain.RecipeService
	sessions *session.Store
	log      *logger.Logger

	width  int
	height int
	cursor int

	spin  spinner.Model
	login loginForm
	form  recipeForm
}

// NewModel wires the UI over the controller and its collaborators.
func NewModel(ctrl *controller.Controller, repo domain.RecipeService, sessions *session.Store, log *logger.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#fdba74"))

	return Model{
		ctrl:     ctrl,
		repo:     repo,
		sessions: sessions,
		log:      log,
		spin:     sp,
	}
}

// Run starts the UI and blocks until quit.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	for _, eff := range m.ctrl.Start() {
		cmds = append(cmds, m.runEffect(eff))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case eventMsg:
		return m.dispatch(msg.ev)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// dispatch applies an event, syncs UI widgets with any mode change,
// and schedules the resulting effects.
func (m Model) dispatch(ev controller.Event) (Model, tea.Cmd) {
	before := m.ctrl.Mode()
	effects := m.ctrl.Apply(ev)
	m.syncWidgets(before)

	if len(effects) == 0 {
		return m, nil
	}
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, eff := range effects {
		cmds = append(cmds, m.runEffect(eff))
	}
	return m, tea.Batch(cmds...)
}

// syncWidgets rebuilds modal widgets when the controller moved into a
// modal, and keeps the list cursor within bounds.
func (m *Model) syncWidgets(before controller.Mode) {
	now := m.ctrl.Mode()
	if now == before {
		if n := len(m.ctrl.Recipes()); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		} else if n := len(m.ctrl.Recipes()); n == 0 {
			m.cursor = 0
		}
		return
	}
	switch now {
	case controller.ModeLogin:
		m.login = newLoginForm()
	case controller.ModeForm:
		m.form = newRecipeForm(m.ctrl.Editing())
	}
	if n := len(m.ctrl.Recipes()); m.cursor >= n {
		if n == 0 {
			m.cursor = 0
		} else {
			m.cursor = n - 1
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.ctrl.Mode() {
	case controller.ModeLoading:
		return m, nil
	case controller.ModeBrowsing:
		return m.handleBrowsingKey(msg)
	case controller.ModeDetail:
		return m.handleDetailKey(msg)
	case controller.ModeConfirmDelete:
		return m.handleConfirmKey(msg)
	case controller.ModeLogin:
		return m.handleLoginKey(msg)
	case controller.ModeForm:
		return m.handleFormKey(msg)
	}
	return m, nil
}

func (m Model) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recipes := m.ctrl.Recipes()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(recipes)-1 {
			m.cursor++
		}
		return m, nil
	case "enter", "v":
		if r, ok := m.cursorRecipe(); ok {
			return m.dispatch(controller.RecipeSelected{Recipe: r})
		}
		return m, nil
	case "a":
		return m.dispatch(controller.AddRequested{})
	case "e":
		if r, ok := m.cursorRecipe(); ok {
			return m.dispatch(controller.EditRequested{Recipe: r})
		}
		return m, nil
	case "d", "x":
		if r, ok := m.cursorRecipe(); ok {
			return m.dispatch(controller.DeleteRequested{Recipe: r})
		}
		return m, nil
	case "l":
		if m.ctrl.Session() == nil {
			return m.dispatch(controller.LoginRequested{})
		}
		return m, nil
	case "L":
		if m.ctrl.Session() != nil {
			return m.dispatch(controller.LogoutRequested{})
		}
		return m, nil
	}
	return m, nil
}

func (m Model) cursorRecipe() (domain.Recipe, bool) {
	recipes := m.ctrl.Recipes()
	if m.cursor < 0 || m.cursor >= len(recipes) {
		return domain.Recipe{}, false
	}
	return recipes[m.cursor], true
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := m.ctrl.Selected()

	switch msg.String() {
	case "esc", "enter", "q":
		return m.dispatch(controller.DetailClosed{})
	case "e":
		if selected != nil {
			return m.dispatch(controller.EditRequested{Recipe: *selected})
		}
	case "d", "x":
		if selected != nil {
			return m.dispatch(controller.DeleteRequested{Recipe: *selected})
		}
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		return m.dispatch(controller.DeleteConfirmed{})
	case "n", "N", "esc":
		return m.dispatch(controller.DeleteDeclined{})
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.dispatch(controller.LoginCancelled{})
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.login = m.login.cycle(msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp)
		return m, nil
	case tea.KeyEnter:
		return m.dispatch(controller.LoginSubmitted{
			Username: m.login.username.Value(),
			Password: m.login.password.Value(),
		})
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.dispatch(controller.FormCancelled{})
	case tea.KeyCtrlS:
		return m.dispatch(controller.FormSubmitted{Draft: m.form.draft()})
	case tea.KeyTab:
		m.form = m.form.cycle(false)
		return m, nil
	case tea.KeyShiftTab:
		m.form = m.form.cycle(true)
		return m, nil
	}

	// The difficulty field is a cycling select, not a text input.
	if m.form.focus == focusDifficulty {
		switch msg.String() {
		case "left", "right", " ", "enter":
			m.form.difficulty = m.form.difficulty.Next()
		}
		return m, nil
	}

	// Enter advances through the scalar fields; inside the textareas
	// it inserts a newline as usual.
	if msg.Type == tea.KeyEnter && m.form.focus < focusIngredients {
		m.form = m.form.cycle(false)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}
