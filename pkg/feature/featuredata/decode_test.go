package featuredata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/pkg/feature"
)

func TestItems_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
	}{
		{"array", `[{"title":"a"},{"title":"b"}]`, 2},
		{"object with items", `{"items":[{"title":"a"}]}`, 1},
		{"single object", `{"title":"a"}`, 1},
		{"scalars in array", `["a", 2]`, 2},
		{"empty", ``, 0},
		{"null", `null`, 0},
		{"empty array", `[]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Items([]byte(tt.raw))
			require.NoError(t, err)
			assert.Len(t, items, tt.wantLen)
		})
	}
}

func TestItems_InvalidJSON(t *testing.T) {
	_, err := Items([]byte(`[{"title":`))
	assert.Error(t, err)
}

func TestDecode_TodoAliases(t *testing.T) {
	raw := `[
		{"title":"a","completed":true},
		{"text":"b","done":true},
		{"title":"c","status":"Done"},
		{"title":"d","status":"in-progress","due_date":"2024-01-02"},
		{"title":"e","due":"2024-03-04T10:00:00Z"}
	]`

	p, err := Decode(feature.TypeTodo, []byte(raw))
	require.NoError(t, err)
	require.Equal(t, KindTodos, p.Kind)
	require.Len(t, p.Todos, 5)

	assert.True(t, p.Todos[0].Completed)
	assert.Equal(t, "b", p.Todos[1].Title)
	assert.True(t, p.Todos[1].Completed)
	assert.True(t, p.Todos[2].Completed)
	assert.False(t, p.Todos[3].Completed)
	require.NotNil(t, p.Todos[3].DueDate)
	assert.Equal(t, 2024, p.Todos[3].DueDate.Year())
	require.NotNil(t, p.Todos[4].DueDate)
	assert.Equal(t, time.March, p.Todos[4].DueDate.Month())
}

func TestTodoItem_Overdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, TodoItem{DueDate: &past}.Overdue(now))
	assert.False(t, TodoItem{DueDate: &past, Completed: true}.Overdue(now))
	assert.False(t, TodoItem{DueDate: &future}.Overdue(now))
	assert.False(t, TodoItem{}.Overdue(now))
}

func TestDecode_TrackerAndResearch(t *testing.T) {
	p, err := Decode(feature.TypeTracker, []byte(`[
		{"name":"run","active":true,"streak":4},
		{"name":"read","status":"paused"},
		{"name":"water","completed":true}
	]`))
	require.NoError(t, err)
	require.Len(t, p.Trackers, 3)
	assert.True(t, p.Trackers[0].Active)
	assert.Equal(t, 4, p.Trackers[0].Streak)
	assert.False(t, p.Trackers[1].Active)
	assert.True(t, p.Trackers[2].Completed)

	p, err = Decode(feature.TypeResearchTracker, []byte(`{"items":[
		{"topic":"llm","status":"active"},
		{"topic":"db","status":"completed"}
	]}`))
	require.NoError(t, err)
	require.Len(t, p.Research, 2)
	assert.True(t, p.Research[0].Active)
	assert.True(t, p.Research[1].Completed)
	assert.False(t, p.Research[1].Active)
}

func TestDecode_CustomFallback(t *testing.T) {
	p, err := Decode(feature.TypeInsights, []byte(`{"metric":"steps","value":1000}`))
	require.NoError(t, err)
	assert.Equal(t, KindCustom, p.Kind)
	require.Len(t, p.Custom, 1)
	assert.Equal(t, "steps", p.Custom[0]["metric"])
	assert.Equal(t, 1, p.Len())
}

func TestPlainText(t *testing.T) {
	editor := `{"root":{"type":"root","children":[
		{"type":"paragraph","children":[{"type":"text","text":"Buy milk"}]},
		{"type":"list","listType":"check","children":[
			{"type":"listitem","checked":true,"children":[{"type":"text","text":"eggs"}]},
			{"type":"listitem","children":[{"type":"text","text":"bread"}]}
		]}
	]}}`

	assert.Equal(t, "Buy milk\n[x] eggs\n[ ] bread", PlainText(editor))
	assert.Equal(t, "plain note", PlainText("plain note"))
	assert.Equal(t, `{"root":`, PlainText(`{"root":`))
}
