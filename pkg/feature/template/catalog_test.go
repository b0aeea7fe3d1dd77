package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/pkg/feature"
)

func TestDefaultCatalog_CoversEveryType(t *testing.T) {
	catalog := DefaultCatalog()

	for _, ft := range feature.AllTypes {
		tmpl, ok := catalog.Get(ft)
		require.True(t, ok, ft)
		assert.Equal(t, ft, tmpl.Type)
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.UIConfig.Layout)
	}
	assert.Equal(t, feature.AllTypes, catalog.Types())
}

func TestDefaultCatalog_TodoHasTwoAgents(t *testing.T) {
	tmpl, ok := DefaultCatalog().Get(feature.TypeTodo)
	require.True(t, ok)

	require.Len(t, tmpl.RequiredAgents, 2)
	assert.Equal(t, "Task Assistant", tmpl.RequiredAgents[0].Name)
	assert.Equal(t, []string{"add", "edit", "delete", "complete"}, tmpl.UIConfig.Actions)
}

func TestCatalog_GetUnknown(t *testing.T) {
	_, ok := DefaultCatalog().Get("spaceship")
	assert.False(t, ok)

	_, ok = NewCatalog().Get(feature.TypeTodo)
	assert.False(t, ok)
}

func TestCatalog_GetReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()

	first, _ := catalog.Get(feature.TypeTodo)
	first.UIConfig.Actions[0] = "mutated"
	first.RequiredAgents[0].Name = "mutated"
	first.DefaultConfig["showCompleted"] = false

	second, _ := catalog.Get(feature.TypeTodo)
	assert.Equal(t, "add", second.UIConfig.Actions[0])
	assert.Equal(t, "Task Assistant", second.RequiredAgents[0].Name)
	assert.True(t, second.DefaultConfig["showCompleted"])
}

func TestNewCatalog_LaterEntryReplaces(t *testing.T) {
	catalog := NewCatalog(
		Template{Type: feature.TypeNotes, Name: "first"},
		Template{Type: feature.TypeNotes, Name: "second"},
	)
	tmpl, ok := catalog.Get(feature.TypeNotes)
	require.True(t, ok)
	assert.Equal(t, "second", tmpl.Name)
}
