// FILE: pkg/feature/summary/summarizer.go
// PURPOSE: Deterministic status text, insights and facts derived from feature data

package summary

import (
	"fmt"
	"time"

	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/feature/featuredata"
)

const (
	manyIdeas        = 5
	tooManyIdeas     = 10
	manyActiveTopics = 5
	notableStreak    = 7
)

// Summarizer renders per-type phrase templates. The clock only affects
// time-relative checks such as overdue tasks.
type Summarizer struct {
	now func() time.Time
}

type Option func(*Summarizer)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Summarizer) {
		s.now = now
	}
}

func NewSummarizer(opts ...Option) *Summarizer {
	s := &Summarizer{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the summarizer's current time.
func (s *Summarizer) Now() time.Time {
	return s.now()
}

// Summarize returns a one-paragraph status for the payload.
func (s *Summarizer) Summarize(featureType feature.FeatureType, p featuredata.Payload) string {
	switch featuredata.KindFor(featureType) {
	case featuredata.KindTodos:
		return summarizeTodos(p.Todos)
	case featuredata.KindNotes:
		if len(p.Notes) == 0 {
			return "No notes yet. Capture your first thought."
		}
		return fmt.Sprintf("%d note(s) captured.", len(p.Notes))
	case featuredata.KindIdeas:
		return summarizeIdeas(p.Ideas)
	case featuredata.KindResearch:
		active, completed := researchCounts(p.Research)
		if len(p.Research) == 0 {
			return "No research items yet."
		}
		return fmt.Sprintf("%d research item(s): %d active, %d completed.", len(p.Research), active, completed)
	case featuredata.KindTrackers:
		active, completed := trackerCounts(p.Trackers)
		if len(p.Trackers) == 0 {
			return "Nothing tracked yet. Add a habit to start a streak."
		}
		return fmt.Sprintf("%d item(s) tracked: %d active, %d completed.", len(p.Trackers), active, completed)
	default:
		if p.Len() == 0 {
			return "No entries yet."
		}
		return fmt.Sprintf("%d entry(ies) recorded.", p.Len())
	}
}

func summarizeTodos(todos []featuredata.TodoItem) string {
	total := len(todos)
	if total == 0 {
		return "No tasks yet. Add your first task to get started."
	}
	completed := 0
	for _, t := range todos {
		if t.Completed {
			completed++
		}
	}
	percent := completed * 100 / total

	var encouragement string
	switch {
	case completed == total:
		encouragement = "Everything is done, great work!"
	case percent >= 50:
		encouragement = "More than halfway there!"
	default:
		encouragement = "Keep going, one task at a time."
	}
	return fmt.Sprintf("%d task(s) (%d completed), %d%% done. %s", total, completed, percent, encouragement)
}

func summarizeIdeas(ideas []featuredata.IdeaItem) string {
	switch n := len(ideas); {
	case n == 0:
		return "No ideas yet. Jot down the first one."
	case n > manyIdeas:
		return fmt.Sprintf("%d idea(s) collected. Your idea pool is growing!", n)
	default:
		return fmt.Sprintf("%d idea(s) collected.", n)
	}
}

// Insights returns threshold-based observations. It never returns nil.
func (s *Summarizer) Insights(featureType feature.FeatureType, p featuredata.Payload) []string {
	out := make([]string, 0)

	switch featuredata.KindFor(featureType) {
	case featuredata.KindTodos:
		now := s.now()
		overdue, completed := 0, 0
		for _, t := range p.Todos {
			if t.Overdue(now) {
				overdue++
			}
			if t.Completed {
				completed++
			}
		}
		if overdue > 0 {
			out = append(out, fmt.Sprintf("%d task(s) are overdue.", overdue))
		}
		if len(p.Todos) > 0 && completed == len(p.Todos) {
			out = append(out, "All tasks are completed.")
		}
	case featuredata.KindIdeas:
		switch n := len(p.Ideas); {
		case n > tooManyIdeas:
			out = append(out, fmt.Sprintf("You have %d ideas. Group them into themes.", n))
		case n > manyIdeas:
			out = append(out, "Over 5 ideas collected. Pick one to act on.")
		}
	case featuredata.KindResearch:
		if active, _ := researchCounts(p.Research); active > manyActiveTopics {
			out = append(out, fmt.Sprintf("%d active research items. Consider narrowing your focus.", active))
		}
	case featuredata.KindTrackers:
		for _, t := range p.Trackers {
			if t.Streak >= notableStreak {
				out = append(out, fmt.Sprintf("%s is on a %d day streak.", t.Name, t.Streak))
			}
		}
	}
	return out
}

// Facts returns compact statistics for agent context: count for every type,
// completed/open for todo-like data and active/completed for tracker-like data.
func Facts(featureType feature.FeatureType, p featuredata.Payload) map[string]int {
	facts := map[string]int{"count": p.Len()}

	switch featuredata.KindFor(featureType) {
	case featuredata.KindTodos:
		completed := 0
		for _, t := range p.Todos {
			if t.Completed {
				completed++
			}
		}
		facts["completed"] = completed
		facts["open"] = len(p.Todos) - completed
	case featuredata.KindResearch:
		facts["active"], facts["completed"] = researchCounts(p.Research)
	case featuredata.KindTrackers:
		facts["active"], facts["completed"] = trackerCounts(p.Trackers)
	}
	return facts
}

func researchCounts(items []featuredata.ResearchItem) (active, completed int) {
	for _, r := range items {
		if r.Active {
			active++
		}
		if r.Completed {
			completed++
		}
	}
	return active, completed
}

func trackerCounts(items []featuredata.TrackerItem) (active, completed int) {
	for _, t := range items {
		if t.Active {
			active++
		}
		if t.Completed {
			completed++
		}
	}
	return active, completed
}
