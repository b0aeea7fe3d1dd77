// FILE: pkg/feature/intent/classifier.go
// PURPOSE: Keyword-based classification of a feature description

package intent

import "ai-workspace-be/pkg/feature"

// chatKeywords mark a conversational request. They win over functional keywords.
var chatKeywords = []string{
	"advice", "advise", "coach", "explain", "discuss", "talk", "conversation",
	"chat", "mentor", "guidance", "counsel", "brainstorm with",
}

// functionalKeywords only raise confidence; functional is already the default.
var functionalKeywords = []string{
	"add", "track", "manage", "create", "list", "organize", "edit", "delete",
	"log", "logging", "logged", "record", "schedule", "plan", "planner",
	"planning", "store", "save",
}

type typeRule struct {
	featureType feature.FeatureType
	match       func(text feature.Text, category feature.Category) bool
}

// typeRules are evaluated in order; the first match decides the type.
var typeRules = []typeRule{
	{feature.TypeTodo, func(t feature.Text, _ feature.Category) bool {
		return t.HasAny("todo", "to-do", "to do", "task", "checklist")
	}},
	{feature.TypeNotes, func(t feature.Text, _ feature.Category) bool {
		return t.HasAny("note", "notebook", "memo", "journal")
	}},
	{feature.TypeIdeas, func(t feature.Text, _ feature.Category) bool {
		return t.HasAny("idea")
	}},
	{feature.TypeResearchTracker, func(t feature.Text, _ feature.Category) bool {
		return t.HasAny("research") && t.HasAny("track")
	}},
	{feature.TypeAdvice, func(t feature.Text, c feature.Category) bool {
		return c == feature.CategoryChat && t.HasAny("advice", "suggestion", "recommendation")
	}},
	{feature.TypeTracker, func(t feature.Text, _ feature.Category) bool {
		return t.HasAny("track", "habit", "monitor")
	}},
	{feature.TypeInsights, func(t feature.Text, _ feature.Category) bool {
		return t.HasAny("insight", "analytics", "dashboard")
	}},
}

// actionVocabulary maps canonical action names to the words that request them.
var actionVocabulary = []struct {
	action   string
	keywords []string
}{
	{"add", []string{"add", "create", "new"}},
	{"edit", []string{"edit", "update", "modify", "rename"}},
	{"delete", []string{"delete", "remove"}},
	{"complete", []string{"complete", "check off", "mark done", "finish"}},
	{"search", []string{"search", "find"}},
	{"filter", []string{"filter"}},
	{"sort", []string{"sort", "order by"}},
	{"categorize", []string{"categor*", "tag", "tagging"}},
	{"remind", []string{"remind", "reminder"}},
	{"export", []string{"export", "download"}},
	{"share", []string{"share"}},
	{"ai-insights", []string{"ai insight", "ai-insight", "ai summar*"}},
}

var topicVocabulary = []struct {
	topic    string
	keywords []string
}{
	{"health", []string{"health", "sleep", "water", "medication"}},
	{"fitness", []string{"fitness", "workout", "exercise", "gym", "run", "running"}},
	{"finance", []string{"finance", "money", "budget", "expense", "spending", "saving"}},
	{"nutrition", []string{"nutrition", "food", "meal", "diet", "recipe", "grocer*"}},
	{"work", []string{"work", "project", "meeting", "client"}},
	{"learning", []string{"study", "learn", "course", "exam", "reading", "book"}},
	{"research", []string{"research", "paper", "source"}},
	{"travel", []string{"travel", "trip", "vacation"}},
	{"productivity", []string{"productiv*", "focus", "routine", "daily", "weekly"}},
}

// Classify derives type, category and requirements from a free-text
// description. It is a pure function.
func Classify(text string) feature.Intent {
	t := feature.ParseText(text)

	category := feature.CategoryFunctional
	if t.HasAny(chatKeywords...) {
		category = feature.CategoryChat
	}

	featureType := feature.FeatureType("")
	for _, rule := range typeRules {
		if rule.match(t, category) {
			featureType = rule.featureType
			break
		}
	}
	explicit := featureType != ""
	if !explicit {
		if category == feature.CategoryChat {
			featureType = feature.TypeAdvice
		} else {
			featureType = feature.TypeIdeas
		}
	}

	requirements := feature.Requirements{
		Actions: make([]string, 0),
		Topics:  make([]string, 0),
	}
	for _, a := range actionVocabulary {
		if t.HasAny(a.keywords...) {
			requirements.Actions = append(requirements.Actions, a.action)
		}
	}
	for _, tp := range topicVocabulary {
		if t.HasAny(tp.keywords...) {
			requirements.Topics = append(requirements.Topics, tp.topic)
		}
	}

	return feature.Intent{
		Type:         featureType,
		Category:     category,
		Requirements: requirements,
		Confidence:   confidence(t, explicit, category, len(requirements.Actions)),
	}
}

func confidence(t feature.Text, explicit bool, category feature.Category, actions int) float64 {
	score := 0.4
	if explicit {
		score += 0.3
	}
	if category == feature.CategoryFunctional && t.HasAny(functionalKeywords...) {
		score += 0.1
	}
	if category == feature.CategoryChat {
		score += 0.1
	}
	if actions > 0 {
		score += 0.05 * float64(min(actions, 3))
	}
	if score > 0.95 {
		score = 0.95
	}
	// Two decimals keep the output byte-stable across platforms.
	return float64(int(score*100+0.5)) / 100
}
