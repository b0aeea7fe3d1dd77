package feature

// ComponentKind names a presentation component a UI block asks for.
type ComponentKind string

const (
	ComponentPrimaryList         ComponentKind = "PrimaryList"
	ComponentStatusSummaryBar    ComponentKind = "StatusSummaryBar"
	ComponentTrendChart          ComponentKind = "TrendChart"
	ComponentInsightsPanel       ComponentKind = "InsightsPanel"
	ComponentGoalList            ComponentKind = "GoalList"
	ComponentWeeklySummaryCard   ComponentKind = "WeeklySummaryCard"
	ComponentDecisionPrompt      ComponentKind = "DecisionPrompt"
	ComponentOptionsList         ComponentKind = "OptionsList"
	ComponentRecommendationPanel ComponentKind = "RecommendationPanel"
	ComponentSummaryCards        ComponentKind = "SummaryCards"
	ComponentBreakdownChart      ComponentKind = "BreakdownChart"
	ComponentCollectionList      ComponentKind = "CollectionList"
	ComponentDetailPanel         ComponentKind = "DetailPanel"
	ComponentActionQueueList     ComponentKind = "ActionQueueList"
	ComponentActionSummary       ComponentKind = "ActionSummary"
	ComponentUnknown             ComponentKind = "Unknown"
	ComponentPlaceholder         ComponentKind = "Placeholder"
)

var knownComponents = map[ComponentKind]struct{}{
	ComponentPrimaryList:         {},
	ComponentStatusSummaryBar:    {},
	ComponentTrendChart:          {},
	ComponentInsightsPanel:       {},
	ComponentGoalList:            {},
	ComponentWeeklySummaryCard:   {},
	ComponentDecisionPrompt:      {},
	ComponentOptionsList:         {},
	ComponentRecommendationPanel: {},
	ComponentSummaryCards:        {},
	ComponentBreakdownChart:      {},
	ComponentCollectionList:      {},
	ComponentDetailPanel:         {},
	ComponentActionQueueList:     {},
	ComponentActionSummary:       {},
}

// Known reports whether k belongs to the component vocabulary.
func (k ComponentKind) Known() bool {
	_, ok := knownComponents[k]
	return ok
}

// UIBlock is one entry of a plan's ui list. Component keeps the raw name so an
// unrecognized block can still be reported.
type UIBlock struct {
	Component ComponentKind `json:"component"`
	Variant   string        `json:"variant,omitempty"`
	Editable  bool          `json:"editable,omitempty"`
}

// Kind returns the block's component, or ComponentUnknown when the name is not
// part of the vocabulary.
func (b UIBlock) Kind() ComponentKind {
	if b.Component.Known() {
		return b.Component
	}
	return ComponentUnknown
}

// RenderableBlocks replaces unknown blocks with inert placeholders carrying the
// original name as variant. Known blocks pass through untouched.
func RenderableBlocks(blocks []UIBlock) []UIBlock {
	out := make([]UIBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind() == ComponentUnknown {
			out = append(out, UIBlock{Component: ComponentPlaceholder, Variant: string(b.Component)})
			continue
		}
		out = append(out, b)
	}
	return out
}
