package planner

import "ai-workspace-be/pkg/feature"

// NameOverride replaces the planner-derived feature name when Phrase occurs
// in the user's text.
type NameOverride struct {
	Phrase string
	Name   string
}

// DefaultNameOverrides is checked in order; the last matching phrase wins.
var DefaultNameOverrides = []NameOverride{
	{Phrase: "habit tracker", Name: "Habit Tracker"},
	{Phrase: "grocery list", Name: "Grocery List"},
	{Phrase: "shopping list", Name: "Shopping List"},
	{Phrase: "reading list", Name: "Reading List"},
	{Phrase: "workout", Name: "Workout Log"},
	{Phrase: "budget", Name: "Budget Tracker"},
	{Phrase: "research papers", Name: "Research Papers"},
	{Phrase: "daily ideas", Name: "Daily Ideas"},
}

// ApplyNameOverrides returns the name of the last override whose phrase
// appears in text, or current when none does. Matching ignores case and
// punctuation.
func ApplyNameOverrides(text, current string, overrides []NameOverride) string {
	t := feature.ParseText(text)
	name := current
	for _, o := range overrides {
		if t.HasPhrase(o.Phrase) {
			name = o.Name
		}
	}
	return name
}
