package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_HasAny(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     bool
	}{
		{"exact word", "my idea", []string{"idea"}, true},
		{"plural", "my ideas", []string{"idea"}, true},
		{"es plural", "two coaches", []string{"coach"}, true},
		{"ing form", "tracking sleep", []string{"track"}, true},
		{"e dropped before ing", "deciding now", []string{"decide"}, true},
		{"longer word", "ideal weight", []string{"idea"}, false},
		{"memory is not memo", "my memory", []string{"memo"}, false},
		{"phrase", "things to do today", []string{"to do"}, true},
		{"phrase stops at word end", "a place to document", []string{"to do"}, false},
		{"phrase needs every word", "should include", []string{"should i"}, false},
		{"phrase across punctuation", "pros, and cons", []string{"pros and cons"}, true},
		{"stem", "categorize it", []string{"categor*"}, true},
		{"stem plural", "categories", []string{"categor*"}, true},
		{"hyphenated word", "follow-up mail", []string{"follow-up"}, true},
		{"case insensitive", "TODO", []string{"todo"}, true},
		{"no keywords", "anything", nil, false},
		{"empty text", "", []string{"idea"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseText(tt.text).HasAny(tt.keywords...))
		})
	}
}

func TestText_HasPhrase(t *testing.T) {
	text := ParseText("My DAILY, ideas and workouts")

	assert.True(t, text.HasPhrase("daily ideas"))
	assert.False(t, text.HasPhrase("workout"))
	assert.False(t, text.HasPhrase("daily idea"))
	assert.False(t, text.HasPhrase(""))
}
