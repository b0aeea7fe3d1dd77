// FILE: internal/dto/feature_dto.go
// DTOs for feature generation, data and deletion
package dto

import (
	"encoding/json"
	"time"

	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/feature/template"

	"github.com/google/uuid"
)

type CreateFeatureRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type FeatureResponse struct {
	Id            uuid.UUID              `json:"id"`
	PageId        uuid.UUID              `json:"page_id"`
	Name          string                 `json:"name"`
	Type          feature.FeatureType    `json:"type"`
	Category      feature.Category       `json:"category"`
	UIConfig      template.UIConfig      `json:"ui_config"`
	Config        map[string]interface{} `json:"config"`
	AgentIds      []uuid.UUID            `json:"agent_ids"`
	Agents        []AgentResponse        `json:"agents"`
	OriginalInput string                 `json:"original_input"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

const (
	ProvisionCreated = "created"
	ProvisionFailed  = "failed"
)

// AgentProvisionResult is the outcome for one template agent blueprint.
type AgentProvisionResult struct {
	Blueprint string     `json:"blueprint"`
	Status    string     `json:"status"`
	AgentId   *uuid.UUID `json:"agent_id,omitempty"`
	Reason    string     `json:"reason,omitempty"`
}

type ProvisioningReport struct {
	Agents  []AgentProvisionResult `json:"agents"`
	Partial bool                   `json:"partial"`
}

type CreateFeatureResponse struct {
	Feature      FeatureResponse    `json:"feature"`
	Plan         feature.Plan       `json:"plan"`
	Intent       feature.Intent     `json:"intent"`
	Provisioning ProvisioningReport `json:"provisioning"`
}

// DeleteFeatureResponse reports what each cascade step removed. Found is false
// when the feature record was already gone.
type DeleteFeatureResponse struct {
	FeatureId             uuid.UUID `json:"feature_id"`
	Found                 bool      `json:"found"`
	FeatureDataDeleted    int64     `json:"feature_data_deleted"`
	LinkedMessagesDeleted int64     `json:"linked_messages_deleted"`
	LegacyMessagesDeleted int64     `json:"legacy_messages_deleted"`
	AgentMessagesDeleted  int64     `json:"agent_messages_deleted"`
	AgentsDeleted         int64     `json:"agents_deleted"`
	PlansDeleted          int64     `json:"plans_deleted"`
}

type UpdateFeatureDataRequest struct {
	Data json.RawMessage `json:"data" validate:"required"`
}

type FeatureDataResponse struct {
	FeatureId          uuid.UUID       `json:"feature_id"`
	Data               json.RawMessage `json:"data"`
	AiSummary          string          `json:"ai_summary"`
	AiSummaryUpdatedAt *time.Time      `json:"ai_summary_updated_at"`
	UpdatedAt          *time.Time      `json:"updated_at"`
}

type FeatureInsightsResponse struct {
	FeatureId        uuid.UUID           `json:"feature_id"`
	Name             string              `json:"name"`
	Type             feature.FeatureType `json:"type"`
	Summary          string              `json:"summary"`
	Insights         []string            `json:"insights"`
	Facts            map[string]int      `json:"facts"`
	SummaryUpdatedAt *time.Time          `json:"summary_updated_at"`
}
