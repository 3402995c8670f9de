package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipedeck/internal/controller"
)

func (m Model) View() string {
	switch m.ctrl.Mode() {
	case controller.ModeLoading:
		return m.center(m.spin.View() + " Loading recipes...")
	case controller.ModeDetail:
		return m.center(m.viewDetail())
	case controller.ModeLogin:
		return m.center(m.viewLogin())
	case controller.ModeForm:
		return m.center(m.viewForm())
	case controller.ModeConfirmDelete:
		return m.center(m.viewConfirm())
	default:
		return m.viewBrowsing()
	}
}

// center places content in the middle of the screen. Before the first
// WindowSizeMsg the size is unknown, so the content renders as-is.
func (m Model) center(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// ── Browsing ─────────────────────────────────────────────────────

func (m Model) viewBrowsing() string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render("Recipe Collection"))
	if sess := m.ctrl.Session(); sess != nil {
		b.WriteString(headerInfoStyle.Render(fmt.Sprintf("   Welcome, %s!", sess.Username)))
	} else {
		b.WriteString(secondaryStyle.Render("   press l for admin login"))
	}
	b.WriteString("\n")

	if banner := m.ctrl.Banner(); banner != "" {
		b.WriteString("  " + bannerErrStyle.Render(banner) + "\n")
	}
	b.WriteString("\n")

	recipes := m.ctrl.Recipes()
	if len(recipes) == 0 {
		b.WriteString("  " + primaryStyle.Render("No recipes yet") + "\n")
		if m.ctrl.Session() != nil {
			b.WriteString("  " + secondaryStyle.Render("Press a to add your first recipe.") + "\n")
		} else {
			b.WriteString("  " + secondaryStyle.Render("Log in to add the first recipe.") + "\n")
		}
	} else {
		for i, r := range recipes {
			marker := "  "
			style := primaryStyle
			if i == m.cursor {
				marker = "▸ "
				style = cursorRowStyle
			}
			row := fmt.Sprintf("%s%-28s", marker, truncate(r.Name, 28))
			meta := fmt.Sprintf("  %-16s %3d min  ", truncate(r.Cuisine, 16), r.PrepTime)
			b.WriteString("  " + style.Render(row) + secondaryStyle.Render(meta) +
				difficultyStyle(r.Difficulty).Render(string(r.Difficulty)) + "\n")
		}
	}

	b.WriteString("\n  " + secondaryStyle.Render(m.browsingHints()))
	return b.String()
}

func (m Model) browsingHints() string {
	hints := []string{"↑/↓ move", "enter view"}
	if m.ctrl.Session() != nil {
		hints = append(hints, "a add", "e edit", "d delete", "L logout")
	} else {
		hints = append(hints, "a add (login required)", "l login")
	}
	hints = append(hints, "q quit")
	return strings.Join(hints, " · ")
}

// ── Detail ───────────────────────────────────────────────────────

func (m Model) viewDetail() string {
	r := m.ctrl.Selected()
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(r.Name) + "\n")
	b.WriteString(secondaryStyle.Render(r.Cuisine+" · ") +
		secondaryStyle.Render(fmt.Sprintf("%d min · ", r.PrepTime)) +
		difficultyStyle(r.Difficulty).Render(string(r.Difficulty)) + "\n\n")

	b.WriteString(fieldLabelStyle.Render("Ingredients") + "\n")
	for _, ing := range r.Ingredients {
		b.WriteString(bulletStyle.Render("  • ") + primaryStyle.Render(ing) + "\n")
	}

	b.WriteString("\n" + fieldLabelStyle.Render("Instructions") + "\n")
	for i, step := range r.Instructions {
		b.WriteString(stepNumStyle.Render(fmt.Sprintf("  %d. ", i+1)) + primaryStyle.Render(step) + "\n")
	}

	hints := "esc close"
	if m.ctrl.Session() != nil {
		hints = "e edit · d delete · esc close"
	}
	b.WriteString("\n" + secondaryStyle.Render(hints))

	return modalStyle.Render(b.String())
}

// ── Login ────────────────────────────────────────────────────────

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Admin Login") + "\n")
	b.WriteString(secondaryStyle.Render("Login to edit and manage recipes") + "\n\n")

	b.WriteString(m.label("Username", m.login.focus == 0) + "\n")
	b.WriteString(m.login.username.View() + "\n\n")
	b.WriteString(m.label("Password", m.login.focus == 1) + "\n")
	b.WriteString(m.login.password.View() + "\n")

	if errMsg := m.ctrl.LoginError(); errMsg != "" {
		b.WriteString("\n" + inlineErrStyle.Render(errMsg) + "\n")
	}

	if m.ctrl.LoggingIn() {
		b.WriteString("\n" + m.spin.View() + secondaryStyle.Render(" Please wait..."))
	} else {
		b.WriteString("\n" + secondaryStyle.Render("enter login · tab switch field · esc cancel"))
	}
	return modalStyle.Render(b.String())
}

// ── Recipe form ──────────────────────────────────────────────────

func (m Model) viewForm() string {
	title := "Add New Recipe"
	if m.ctrl.Editing() != nil {
		title = "Edit Recipe"
	}

	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(title) + "\n\n")

	if errMsg := m.ctrl.FormError(); errMsg != "" {
		b.WriteString(inlineErrStyle.Render(errMsg) + "\n\n")
	}

	b.WriteString(m.label("Recipe Name", m.form.focus == focusName) + "\n")
	b.WriteString(m.form.name.View() + "\n\n")

	b.WriteString(m.label("Cuisine", m.form.focus == focusCuisine) + "\n")
	b.WriteString(m.form.cuisine.View() + "\n\n")

	b.WriteString(m.label("Prep Time (min)", m.form.focus == focusPrepTime) + "\n")
	b.WriteString(m.form.prepTime.View() + "\n\n")

	b.WriteString(m.label("Difficulty", m.form.focus == focusDifficulty))
	b.WriteString("  ")
	if m.form.focus == focusDifficulty {
		b.WriteString(difficultyStyle(m.form.difficulty).Render("◂ " + string(m.form.difficulty) + " ▸"))
	} else {
		b.WriteString(difficultyStyle(m.form.difficulty).Render(string(m.form.difficulty)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.label("Ingredients (one per line)", m.form.focus == focusIngredients) + "\n")
	b.WriteString(m.form.ingredients.View() + "\n\n")

	b.WriteString(m.label("Instructions (one per line)", m.form.focus == focusInstructions) + "\n")
	b.WriteString(m.form.instructions.View() + "\n")

	if m.ctrl.Submitting() {
		b.WriteString("\n" + m.spin.View() + secondaryStyle.Render(" Saving..."))
	} else {
		b.WriteString("\n" + secondaryStyle.Render("tab next field · ctrl+s save · esc cancel"))
	}
	return modalStyle.Render(b.String())
}

// ── Delete confirmation ──────────────────────────────────────────

func (m Model) viewConfirm() string {
	r := m.ctrl.PendingDelete()
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Delete Recipe") + "\n\n")
	b.WriteString(primaryStyle.Render("Are you sure you want to delete this recipe?") + "\n")
	b.WriteString(secondaryStyle.Render(r.Name) + "\n\n")
	b.WriteString(secondaryStyle.Render("y delete · n keep"))
	return modalStyle.Render(b.String())
}

// ── Helpers ──────────────────────────────────────────────────────

func (m Model) label(text string, focused bool) string {
	if focused {
		return focusedLabelStyle.Render(text)
	}
	return fieldLabelStyle.Render(text)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
