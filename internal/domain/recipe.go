// Package domain defines the core types and interfaces for the recipe
// client. All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is a single recipe as the remote service stores it. The ID is
// assigned by the service; the client never fabricates one.
type Recipe struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name"`
	Cuisine      string     `json:"cuisine"`
	PrepTime     int        `json:"prepTime"` // minutes
	Difficulty   Difficulty `json:"difficulty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
}

// Difficulty is one of Easy, Medium, Hard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the selectable values in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Next cycles to the following difficulty, wrapping around. Unknown
// values reset to Easy.
func (d Difficulty) Next() Difficulty {
	for i, v := range Difficulties {
		if v == d {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return DifficultyEasy
}
