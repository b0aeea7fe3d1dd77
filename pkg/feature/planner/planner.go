// FILE: pkg/feature/planner/planner.go
// PURPOSE: Turns (text, intent, template) into a structured feature plan

package planner

import (
	"strings"
	"unicode/utf8"

	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/feature/template"
)

const maxNameRunes = 60

// plannerRules run in order and each match overwrites the previous one, so
// the last matching rule decides the planner type.
var plannerRules = []struct {
	plannerType feature.PlannerType
	keywords    []string
}{
	{feature.PlannerTracker, []string{"track", "monitor", "habit", "progress", "streak"}},
	{feature.PlannerAnalytics, []string{"analy*", "trend", "statistic", "chart", "metric", "breakdown", "spending"}},
	{feature.PlannerDecision, []string{"decide", "decision", "choose", "compare", "pros and cons", "should i"}},
	{feature.PlannerKnowledgeCollection, []string{"collect", "collection", "bookmark", "library", "knowledge", "reading list"}},
	{feature.PlannerActionTool, []string{"automate", "automation", "action item", "follow up", "follow-up", "workflow", "remind"}},
}

var uiByPlanner = map[feature.PlannerType][]feature.UIBlock{
	feature.PlannerTracker: {
		{Component: feature.ComponentPrimaryList, Editable: true},
		{Component: feature.ComponentStatusSummaryBar},
		{Component: feature.ComponentTrendChart},
		{Component: feature.ComponentGoalList},
	},
	feature.PlannerAnalytics: {
		{Component: feature.ComponentSummaryCards},
		{Component: feature.ComponentTrendChart, Variant: "line"},
		{Component: feature.ComponentBreakdownChart},
		{Component: feature.ComponentInsightsPanel},
	},
	feature.PlannerDecision: {
		{Component: feature.ComponentDecisionPrompt},
		{Component: feature.ComponentOptionsList, Editable: true},
		{Component: feature.ComponentRecommendationPanel},
	},
	feature.PlannerKnowledgeCollection: {
		{Component: feature.ComponentCollectionList, Editable: true},
		{Component: feature.ComponentDetailPanel},
		{Component: feature.ComponentInsightsPanel, Variant: "compact"},
	},
	feature.PlannerActionTool: {
		{Component: feature.ComponentActionQueueList, Editable: true},
		{Component: feature.ComponentActionSummary},
		{Component: feature.ComponentStatusSummaryBar},
	},
	feature.PlannerDefault: {
		{Component: feature.ComponentPrimaryList, Editable: true},
		{Component: feature.ComponentGoalList},
		{Component: feature.ComponentWeeklySummaryCard},
		{Component: feature.ComponentInsightsPanel},
	},
}

var dataModelByType = map[feature.FeatureType][]feature.DataField{
	feature.TypeTodo: {
		{Name: "title", Type: "string", Required: true},
		{Name: "completed", Type: "boolean"},
		{Name: "dueDate", Type: "date"},
		{Name: "priority", Type: "enum", Values: []string{"low", "medium", "high"}},
	},
	feature.TypeNotes: {
		{Name: "title", Type: "string", Required: true},
		{Name: "content", Type: "text"},
		{Name: "tags", Type: "string[]"},
	},
	feature.TypeIdeas: {
		{Name: "title", Type: "string", Required: true},
		{Name: "description", Type: "text"},
		{Name: "category", Type: "string"},
	},
	feature.TypeResearchTracker: {
		{Name: "topic", Type: "string", Required: true},
		{Name: "source", Type: "string"},
		{Name: "status", Type: "enum", Values: []string{"active", "paused", "completed"}},
		{Name: "notes", Type: "text"},
	},
	feature.TypeAdvice: {
		{Name: "question", Type: "string", Required: true},
		{Name: "answer", Type: "text"},
	},
	feature.TypeTracker: {
		{Name: "name", Type: "string", Required: true},
		{Name: "active", Type: "boolean"},
		{Name: "completed", Type: "boolean"},
		{Name: "streak", Type: "number"},
	},
	feature.TypeInsights: {
		{Name: "metric", Type: "string", Required: true},
		{Name: "value", Type: "number"},
		{Name: "recordedAt", Type: "date"},
	},
}

var capabilitiesByPlanner = map[feature.PlannerType][]string{
	feature.PlannerTracker:             {"progress-summary", "streak-detection", "goal-nudges"},
	feature.PlannerAnalytics:           {"trend-analysis", "anomaly-detection", "summary"},
	feature.PlannerDecision:            {"option-comparison", "recommendation"},
	feature.PlannerKnowledgeCollection: {"summary", "tagging", "related-items"},
	feature.PlannerActionTool:          {"action-extraction", "reminders", "status-summary"},
	feature.PlannerDefault:             {"summary", "prioritization", "weekly-review"},
}

var capabilitiesByType = map[feature.FeatureType][]string{
	feature.TypeTodo:            {"prioritization", "overdue-detection"},
	feature.TypeNotes:           {"summary", "tagging"},
	feature.TypeIdeas:           {"idea-expansion", "clustering"},
	feature.TypeResearchTracker: {"source-summary", "gap-detection"},
	feature.TypeAdvice:          {"conversational-advice"},
	feature.TypeTracker:         {"streak-detection"},
	feature.TypeInsights:        {"trend-analysis"},
}

// DetectPlannerType scans raw text for interaction-shape keywords.
func DetectPlannerType(text string) feature.PlannerType {
	t := feature.ParseText(text)
	detected := feature.PlannerDefault
	for _, rule := range plannerRules {
		if t.HasAny(rule.keywords...) {
			detected = rule.plannerType
		}
	}
	return detected
}

// BuildPlan selects ui blocks, a data model and AI capability hints from fixed
// tables. It does no I/O and always returns fresh slices.
func BuildPlan(text string, intent feature.Intent, tmpl template.Template) feature.Plan {
	plannerType := DetectPlannerType(text)

	return feature.Plan{
		FeatureName:    featureName(text, tmpl),
		PlannerType:    plannerType,
		Description:    description(text, tmpl),
		UI:             append([]feature.UIBlock(nil), uiByPlanner[plannerType]...),
		DataModel:      dataModel(intent.Type),
		AICapabilities: capabilities(plannerType, intent),
	}
}

func featureName(text string, tmpl template.Template) string {
	if tmpl.Name != "" {
		return tmpl.Name
	}
	return Truncate(strings.TrimSpace(text), maxNameRunes)
}

func description(text string, tmpl template.Template) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return tmpl.Description
	}
	return trimmed
}

// Truncate shortens s to limit runes and appends "..." when it had to cut.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

func dataModel(featureType feature.FeatureType) []feature.DataField {
	fields, ok := dataModelByType[featureType]
	if !ok {
		return []feature.DataField{{Name: "value", Type: "string", Required: true}}
	}
	out := make([]feature.DataField, len(fields))
	for i, f := range fields {
		out[i] = f
		out[i].Values = append([]string(nil), f.Values...)
	}
	return out
}

func capabilities(plannerType feature.PlannerType, intent feature.Intent) []string {
	out := make([]string, 0, 6)
	seen := make(map[string]bool)
	add := func(items ...string) {
		for _, it := range items {
			if !seen[it] {
				seen[it] = true
				out = append(out, it)
			}
		}
	}
	add(capabilitiesByPlanner[plannerType]...)
	add(capabilitiesByType[intent.Type]...)
	for _, a := range intent.Requirements.Actions {
		if a == "ai-insights" {
			add("insights")
		}
	}
	return out
}
