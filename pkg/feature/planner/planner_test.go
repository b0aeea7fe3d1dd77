package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/feature/intent"
	"ai-workspace-be/pkg/feature/template"
)

func TestDetectPlannerType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want feature.PlannerType
	}{
		{"no keywords", "I want a todo list with add, edit, delete and AI insights", feature.PlannerDefault},
		{"tracker", "Track my water intake", feature.PlannerTracker},
		{"analytics", "Show my spending breakdown", feature.PlannerAnalytics},
		{"decision", "Help me decide between two laptops", feature.PlannerDecision},
		{"knowledge", "A reading list of books", feature.PlannerKnowledgeCollection},
		{"action tool", "Automate my follow up emails", feature.PlannerActionTool},
		// tracker matches first, analytics overwrites it
		{"last match wins", "Track my spending trends", feature.PlannerAnalytics},
		{"last match wins across all", "track, compare and remind", feature.PlannerActionTool},
		// keywords match whole words only
		{"should include is not should i", "A habit tracker that should include my streaks", feature.PlannerTracker},
		{"to document my ideas", "A place to document my ideas", feature.PlannerDefault},
		{"trendy is not trend", "An ideal list of trendy outfits", feature.PlannerDefault},
		{"collective is not collect", "Notes from the collective memory session", feature.PlannerDefault},
		{"should i as a phrase", "Should I buy a bike or a scooter", feature.PlannerDecision},
		{"analy stem", "Analyze my sleep", feature.PlannerAnalytics},
		{"inflected decide", "Deciding where to live", feature.PlannerDecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlannerType(tt.text))
		})
	}
}

func TestBuildPlan_TodoListDefaultsToPlanner(t *testing.T) {
	text := "I want a todo list with add, edit, delete and AI insights"
	in := intent.Classify(text)
	tmpl, ok := template.DefaultCatalog().Get(in.Type)
	require.True(t, ok)

	plan := BuildPlan(text, in, tmpl)

	assert.Equal(t, feature.PlannerDefault, plan.PlannerType)
	assert.Equal(t, "Todo List", plan.FeatureName)
	assert.Equal(t, text, plan.Description)
	require.NotEmpty(t, plan.UI)
	assert.Equal(t, feature.ComponentPrimaryList, plan.UI[0].Component)
	assert.True(t, plan.UI[0].Editable)
	assert.Equal(t, "title", plan.DataModel[0].Name)
	assert.Contains(t, plan.AICapabilities, "insights")
	assert.Contains(t, plan.AICapabilities, "overdue-detection")
}

func TestBuildPlan_Deterministic(t *testing.T) {
	text := "Track my habits and compare progress every week"
	in := intent.Classify(text)
	tmpl, ok := template.DefaultCatalog().Get(in.Type)
	require.True(t, ok)

	first, err := json.Marshal(BuildPlan(text, in, tmpl))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(BuildPlan(text, in, tmpl))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestBuildPlan_NameFallsBackToText(t *testing.T) {
	long := "a very long description of something that has no template name at all and keeps going"
	plan := BuildPlan(long, feature.Intent{Type: feature.TypeIdeas}, template.Template{})

	assert.Equal(t, Truncate(long, 60), plan.FeatureName)
	assert.Len(t, []rune(plan.FeatureName), 63)

	short := "short idea box"
	plan = BuildPlan(short, feature.Intent{Type: feature.TypeIdeas}, template.Template{})
	assert.Equal(t, short, plan.FeatureName)
}

func TestBuildPlan_ReturnsFreshSlices(t *testing.T) {
	tmpl, _ := template.DefaultCatalog().Get(feature.TypeTodo)
	in := feature.Intent{Type: feature.TypeTodo}

	first := BuildPlan("todo", in, tmpl)
	first.UI[0].Component = "Mutated"
	first.DataModel[0].Name = "mutated"

	second := BuildPlan("todo", in, tmpl)
	assert.Equal(t, feature.ComponentPrimaryList, second.UI[0].Component)
	assert.Equal(t, "title", second.DataModel[0].Name)
}

func TestApplyNameOverrides(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		current string
		want    string
	}{
		{"daily ideas", "Track my daily ideas", "Ideas Board", "Daily Ideas"},
		{"case and punctuation", "my DAILY, ideas", "Ideas Board", "Daily Ideas"},
		{"no match keeps current", "I want a todo list", "Todo List", "Todo List"},
		{"last match wins", "a budget for my daily ideas", "Ideas Board", "Daily Ideas"},
		{"grocery", "Grocery list for the week", "Todo List", "Grocery List"},
		{"whole words only", "my budgeting workouts", "Ideas Board", "Ideas Board"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyNameOverrides(tt.text, tt.current, DefaultNameOverrides))
		})
	}
}
