// Package form holds the transient recipe draft and its validation.
package form

import (
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipedeck/internal/domain"
)

// Draft is the form-local representation of a recipe before validation
// and submission. Ingredients and instructions are raw multi-line text;
// PrepTime is the raw field value as typed.
type Draft struct {
	Name         string
	Cuisine      string
	PrepTime     string
	Difficulty   domain.Difficulty
	Ingredients  string
	Instructions string
}

// FromRecipe pre-fills a draft for editing: sequences are joined back
// into multi-line text, the inverse of normalization.
func FromRecipe(r domain.Recipe) Draft {
	return Draft{
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		PrepTime:     strconv.Itoa(r.PrepTime),
		Difficulty:   r.Difficulty,
		Ingredients:  strings.Join(r.Ingredients, "\n"),
		Instructions: strings.Join(r.Instructions, "\n"),
	}
}

// Validate checks the draft and, on success, returns the normalized
// payload ready for submission. Rules run in order and short-circuit on
// the first failure, so the caller always gets exactly one message.
func (d Draft) Validate() (domain.Recipe, error) {
	if strings.TrimSpace(d.Name) == "" {
		return domain.Recipe{}, &domain.ValidationError{Message: "Recipe name is required"}
	}
	if strings.TrimSpace(d.Cuisine) == "" {
		return domain.Recipe{}, &domain.ValidationError{Message: "Cuisine is required"}
	}
	prep, err := strconv.Atoi(strings.TrimSpace(d.PrepTime))
	if err != nil || prep < 1 {
		return domain.Recipe{}, &domain.ValidationError{Message: "Prep time must be at least 1 minute"}
	}
	if strings.TrimSpace(d.Ingredients) == "" {
		return domain.Recipe{}, &domain.ValidationError{Message: "Ingredients are required"}
	}
	if strings.TrimSpace(d.Instructions) == "" {
		return domain.Recipe{}, &domain.ValidationError{Message: "Instructions are required"}
	}

	difficulty := d.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyEasy
	}

	return domain.Recipe{
		Name:         d.Name,
		Cuisine:      d.Cuisine,
		PrepTime:     prep,
		Difficulty:   difficulty,
		Ingredients:  splitLines(d.Ingredients),
		Instructions: splitLines(d.Instructions),
	}, nil
}

// splitLines splits raw multi-line text into an ordered sequence,
// dropping blank lines. Non-blank lines keep their original text.
func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
