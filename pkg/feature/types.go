// Package feature holds the vocabulary shared by the feature-intent pipeline:
// feature types, categories, planner types, UI blocks and the plan shape.
package feature

// FeatureType is the concrete kind of a generated feature.
type FeatureType string

const (
	TypeTodo            FeatureType = "todo"
	TypeNotes           FeatureType = "notes"
	TypeIdeas           FeatureType = "ideas"
	TypeResearchTracker FeatureType = "research-tracker"
	TypeAdvice          FeatureType = "advice"
	TypeTracker         FeatureType = "tracker"
	TypeInsights        FeatureType = "insights"
)

// AllTypes lists every feature type the classifier can produce.
var AllTypes = []FeatureType{
	TypeTodo,
	TypeNotes,
	TypeIdeas,
	TypeResearchTracker,
	TypeAdvice,
	TypeTracker,
	TypeInsights,
}

// Category separates data-driven features from conversational ones.
type Category string

const (
	CategoryFunctional Category = "functional"
	CategoryChat       Category = "chat"
)

// PlannerType is the interaction shape chosen by the planner.
type PlannerType string

const (
	PlannerTracker             PlannerType = "tracker"
	PlannerAnalytics           PlannerType = "analytics"
	PlannerDecision            PlannerType = "decision"
	PlannerKnowledgeCollection PlannerType = "knowledge-collection"
	PlannerActionTool          PlannerType = "action-tool"
	PlannerDefault             PlannerType = "planner"
)

// Requirements are the actions and topics detected in a description.
type Requirements struct {
	Actions []string `json:"actions"`
	Topics  []string `json:"topics"`
}

// Intent is the classifier output.
type Intent struct {
	Type         FeatureType  `json:"type"`
	Category     Category     `json:"category"`
	Requirements Requirements `json:"requirements"`
	Confidence   float64      `json:"confidence"`
}

// DataField describes one field of a feature's data model.
type DataField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required,omitempty"`
	Values   []string `json:"values,omitempty"`
}

// Plan is the planner output persisted as a FeaturePlan.
type Plan struct {
	FeatureName    string      `json:"featureName"`
	PlannerType    PlannerType `json:"type"`
	Description    string      `json:"description"`
	UI             []UIBlock   `json:"ui"`
	DataModel      []DataField `json:"dataModel"`
	AICapabilities []string    `json:"aiCapabilities"`
}
