// Package featuredata decodes the raw JSON stored in FeatureData into typed
// payloads keyed by feature type.
package featuredata

import (
	"time"

	"ai-workspace-be/pkg/feature"
)

// Kind tags which variant of Payload is populated.
type Kind string

const (
	KindTodos    Kind = "todos"
	KindNotes    Kind = "notes"
	KindIdeas    Kind = "ideas"
	KindResearch Kind = "research"
	KindTrackers Kind = "trackers"
	KindCustom   Kind = "custom"
)

// KindFor maps a feature type to its payload variant.
func KindFor(featureType feature.FeatureType) Kind {
	switch featureType {
	case feature.TypeTodo:
		return KindTodos
	case feature.TypeNotes:
		return KindNotes
	case feature.TypeIdeas:
		return KindIdeas
	case feature.TypeResearchTracker:
		return KindResearch
	case feature.TypeTracker:
		return KindTrackers
	default:
		return KindCustom
	}
}

type TodoItem struct {
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Priority  string     `json:"priority,omitempty"`
}

// Overdue reports whether the task is open and its due date is before now.
func (t TodoItem) Overdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

type NoteItem struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

type IdeaItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type ResearchItem struct {
	Topic     string `json:"topic"`
	Source    string `json:"source,omitempty"`
	Status    string `json:"status"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
}

type TrackerItem struct {
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak,omitempty"`
}

// Payload is a tagged variant: only the slice matching Kind is set.
type Payload struct {
	Kind     Kind                     `json:"kind"`
	Todos    []TodoItem               `json:"todos,omitempty"`
	Notes    []NoteItem               `json:"notes,omitempty"`
	Ideas    []IdeaItem               `json:"ideas,omitempty"`
	Research []ResearchItem           `json:"research,omitempty"`
	Trackers []TrackerItem            `json:"trackers,omitempty"`
	Custom   []map[string]interface{} `json:"custom,omitempty"`
}

// Len returns the number of items in the populated variant.
func (p Payload) Len() int {
	switch p.Kind {
	case KindTodos:
		return len(p.Todos)
	case KindNotes:
		return len(p.Notes)
	case KindIdeas:
		return len(p.Ideas)
	case KindResearch:
		return len(p.Research)
	case KindTrackers:
		return len(p.Trackers)
	default:
		return len(p.Custom)
	}
}
