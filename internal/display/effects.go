package display

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/recipedeck/internal/controller"
)

// runEffect turns a controller effect into a command that performs the
// network call and reports back as an event. Calls run to completion;
// the controller's fetch generation handles any result that arrives
// after the state has moved on.
func (m Model) runEffect(eff controller.Effect) tea.Cmd {
	switch e := eff.(type) {
	case controller.FetchRecipes:
		return func() tea.Msg {
			recipes, err := m.repo.FetchAll(context.Background())
			if err != nil {
				return eventMsg{controller.FetchFailed{Gen: e.Gen, Err: err}}
			}
			return eventMsg{controller.FetchLoaded{Gen: e.Gen, Recipes: recipes}}
		}

	case controller.PerformLogin:
		return func() tea.Msg {
			sess, err := m.sessions.Login(context.Background(), e.Username, e.Password)
			if err != nil {
				return eventMsg{controller.LoginFailed{Err: err}}
			}
			return eventMsg{controller.LoginSucceeded{Session: sess}}
		}

	case controller.CreateRecipe:
		return func() tea.Msg {
			if err := m.repo.Create(context.Background(), e.Recipe); err != nil {
				return eventMsg{controller.SaveFailed{Err: err}}
			}
			return eventMsg{controller.SaveSucceeded{}}
		}

	case controller.UpdateRecipe:
		return func() tea.Msg {
			if err := m.repo.Update(context.Background(), e.ID, e.Recipe); err != nil {
				return eventMsg{controller.SaveFailed{Err: err}}
			}
			return eventMsg{controller.SaveSucceeded{}}
		}

	case controller.DeleteRecipe:
		return func() tea.Msg {
			if err := m.repo.Delete(context.Background(), e.ID); err != nil {
				return eventMsg{controller.DeleteFailed{Err: err}}
			}
			return eventMsg{controller.DeleteSucceeded{}}
		}
	}

	m.log.Warn("display: unknown effect %T", eff)
	return nil
}
