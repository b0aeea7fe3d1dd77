package template

import "ai-workspace-be/pkg/feature"

// DefaultCatalog returns the built-in templates, one per feature type.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Template{
			Type:        feature.TypeTodo,
			Name:        "Todo List",
			Description: "Keep track of tasks, due dates and what is already done.",
			Category:    feature.CategoryFunctional,
			UIConfig: UIConfig{
				Layout:     "list",
				Components: []string{"TaskList", "TaskInput", "ProgressBar"},
				Actions:    []string{"add", "edit", "delete", "complete"},
			},
			DefaultConfig: map[string]bool{"showCompleted": true, "allowDueDates": true, "enableAIInsights": true},
			RequiredAgents: []AgentBlueprint{
				{
					Name:          "Task Assistant",
					Description:   "Helps break work into tasks and keeps the list tidy.",
					Role:          "productivity assistant",
					Tone:          "supportive",
					Creativity:    0.3,
					Verbosity:     "concise",
					MemoryEnabled: true,
				},
				{
					Name:          "Priority Coach",
					Description:   "Suggests what to tackle next based on due dates and progress.",
					Role:          "prioritization coach",
					Tone:          "motivating",
					Creativity:    0.5,
					Verbosity:     "balanced",
					MemoryEnabled: true,
				},
			},
		},
		Template{
			Type:        feature.TypeNotes,
			Name:        "Notes",
			Description: "Capture notes, memos and journal entries.",
			Category:    feature.CategoryFunctional,
			UIConfig: UIConfig{
				Layout:     "grid",
				Components: []string{"NoteGrid", "NoteEditor", "SearchBar"},
				Actions:    []string{"add", "edit", "delete", "search"},
			},
			DefaultConfig: map[string]bool{"richText": true, "enableAIInsights": true},
			RequiredAgents: []AgentBlueprint{
				{
					Name:          "Note Summarizer",
					Description:   "Summarizes and connects your notes.",
					Role:          "summarizer",
					Tone:          "neutral",
					Creativity:    0.2,
					Verbosity:     "concise",
					MemoryEnabled: true,
				},
			},
		},
		Template{
			Type:        feature.TypeIdeas,
			Name:        "Ideas Board",
			Description: "Collect ideas and grow the promising ones.",
			Category:    feature.CategoryFunctional,
			UIConfig: UIConfig{
				Layout:     "board",
				Components: []string{"IdeaBoard", "IdeaInput"},
				Actions:    []string{"add", "edit", "delete", "categorize"},
			},
			DefaultConfig: map[string]bool{"allowVoting": false, "enableAIInsights": true},
			RequiredAgents: []AgentBlueprint{
				{
					Name:          "Idea Generator",
					Description:   "Expands ideas and proposes new angles.",
					Role:          "creative partner",
					Tone:          "enthusiastic",
					Creativity:    0.9,
					Verbosity:     "balanced",
					MemoryEnabled: true,
				},
			},
		},
		Template{
			Type:        feature.TypeResearchTracker,
			Name:        "Research Tracker",
			Description: "Track research topics, sources and their status.",
			Category:    feature.CategoryFunctional,
			UIConfig: UIConfig{
				Layout:     "table",
				Components: []string{"ResearchTable", "SourceList", "StatusFilter"},
				Actions:    []string{"add", "edit", "delete", "update-status"},
			},
			DefaultConfig: map[string]bool{"trackSources": true, "enableAIInsights": true},
			RequiredAgents: []AgentBlueprint{
				{
					Name:          "Research Analyst",
					Description:   "Summarizes sources and spots gaps in your research.",
					Role:          "research analyst",
					Tone:          "analytical",
					Creativity:    0.4,
					Verbosity:     "detailed",
					MemoryEnabled: true,
				},
			},
		},
		Template{
			Type:        feature.TypeAdvice,
			Name:        "Advisor",
			Description: "A conversational advisor for questions and guidance.",
			Category:    feature.CategoryChat,
			UIConfig: UIConfig{
				Layout:     "chat",
				Components: []string{"ChatThread", "ChatInput"},
				Actions:    []string{"ask"},
			},
			DefaultConfig: map[string]bool{"keepHistory": true},
			RequiredAgents: []AgentBlueprint{
				{
					Name:          "Advisor",
					Description:   "Gives practical, personal advice.",
					Role:          "advisor",
					Tone:          "warm",
					Creativity:    0.6,
					Verbosity:     "balanced",
					MemoryEnabled: true,
				},
			},
		},
		Template{
			Type:        feature.TypeTracker,
			Name:        "Habit Tracker",
			Description: "Track habits and goals over time.",
			Category:    feature.CategoryFunctional,
			UIConfig: UIConfig{
				Layout:     "dashboard",
				Components: []string{"HabitList", "StreakCalendar", "ProgressChart"},
				Actions:    []string{"add", "edit", "delete", "check-in"},
			},
			DefaultConfig: map[string]bool{"showStreaks": true, "enableAIInsights": true},
			RequiredAgents: []AgentBlueprint{
				{
					Name:          "Habit Coach",
					Description:   "Keeps you accountable and celebrates streaks.",
					Role:          "habit coach",
					Tone:          "encouraging",
					Creativity:    0.5,
					Verbosity:     "concise",
					MemoryEnabled: true,
				},
			},
		},
		Template{
			Type:        feature.TypeInsights,
			Name:        "Insights Dashboard",
			Description: "Summaries and trends across your workspace.",
			Category:    feature.CategoryFunctional,
			UIConfig: UIConfig{
				Layout:     "dashboard",
				Components: []string{"MetricCards", "TrendChart"},
				Actions:    []string{"refresh", "export"},
			},
			DefaultConfig: map[string]bool{"autoRefresh": true},
			RequiredAgents: []AgentBlueprint{
				{
					Name:          "Data Analyst",
					Description:   "Explains trends in your data.",
					Role:          "data analyst",
					Tone:          "clear",
					Creativity:    0.3,
					Verbosity:     "detailed",
					MemoryEnabled: false,
				},
			},
		},
	)
}
