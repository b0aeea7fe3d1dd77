package intent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/pkg/feature"
)

func TestClassify_Type(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType feature.FeatureType
		wantCat  feature.Category
	}{
		{"todo", "I want a todo list with add, edit, delete and AI insights", feature.TypeTodo, feature.CategoryFunctional},
		{"task", "Manage my tasks for the week", feature.TypeTodo, feature.CategoryFunctional},
		{"notes", "A place to keep meeting notes", feature.TypeNotes, feature.CategoryFunctional},
		{"journal", "Daily journal", feature.TypeNotes, feature.CategoryFunctional},
		{"ideas", "Track my daily ideas", feature.TypeIdeas, feature.CategoryFunctional},
		{"research tracker", "Track research papers I read", feature.TypeResearchTracker, feature.CategoryFunctional},
		{"advice", "Give me advice and recommendations on saving money", feature.TypeAdvice, feature.CategoryChat},
		{"tracker", "Monitor my sleep habit", feature.TypeTracker, feature.CategoryFunctional},
		{"insights", "An analytics dashboard for my spending", feature.TypeInsights, feature.CategoryFunctional},
		{"chat default", "Someone to talk to about my day", feature.TypeAdvice, feature.CategoryChat},
		{"functional default", "Something for my garden", feature.TypeIdeas, feature.CategoryFunctional},
		// chat keyword wins over functional keywords
		{"chat beats functional", "Coach me to add more exercise", feature.TypeAdvice, feature.CategoryChat},
		{"empty", "", feature.TypeIdeas, feature.CategoryFunctional},
		// keywords match whole words only
		{"to document is not to do", "I want a place to document my ideas", feature.TypeIdeas, feature.CategoryFunctional},
		{"to download is not to do", "Help me decide what to download next", feature.TypeIdeas, feature.CategoryFunctional},
		{"to double-check is not to do", "A habit tracker I need to double-check daily", feature.TypeTracker, feature.CategoryFunctional},
		{"ideal is not idea", "Monitor my ideal weight", feature.TypeTracker, feature.CategoryFunctional},
		{"memory is not memo", "Help me improve my memory", feature.TypeIdeas, feature.CategoryFunctional},
		{"plural memos", "Voice memos from meetings", feature.TypeNotes, feature.CategoryFunctional},
		{"hyphenated to-dos", "My to-dos for the garden", feature.TypeTodo, feature.CategoryFunctional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantCat, got.Category)
		})
	}
}

func TestClassify_Requirements(t *testing.T) {
	got := Classify("I want a todo list with add, edit, delete and AI insights")

	assert.Equal(t, []string{"add", "edit", "delete", "ai-insights"}, got.Requirements.Actions)
	assert.Empty(t, got.Requirements.Topics)
	assert.InDelta(t, 0.95, got.Confidence, 0.0001)

	got = Classify("Plan my exercise and meal routine")
	assert.Equal(t, []string{"fitness", "nutrition", "productivity"}, got.Requirements.Topics)

	// stems still match their longer forms
	got = Classify("Categorize my groceries")
	assert.Equal(t, []string{"categorize"}, got.Requirements.Actions)
	assert.Equal(t, []string{"nutrition"}, got.Requirements.Topics)

	// a workout is not work
	got = Classify("Log every workout")
	assert.Equal(t, []string{"fitness"}, got.Requirements.Topics)
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []string{
		"I want a todo list with add, edit, delete and AI insights",
		"Track my daily ideas",
		"explain compound interest",
	}
	for _, in := range inputs {
		first, err := json.Marshal(Classify(in))
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, err := json.Marshal(Classify(in))
			require.NoError(t, err)
			assert.Equal(t, string(first), string(again), in)
		}
	}
}

func TestClassify_ConfidenceBounds(t *testing.T) {
	for _, in := range []string{"", "x", "todo add edit delete search filter sort export share"} {
		c := Classify(in).Confidence
		assert.GreaterOrEqual(t, c, 0.4)
		assert.LessOrEqual(t, c, 0.95)
	}
}
