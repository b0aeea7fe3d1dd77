package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type FeatureData struct {
	Id                 uuid.UUID
	PageId             uuid.UUID
	FeatureId          uuid.UUID
	Data               json.RawMessage
	AiSummary          string
	AiSummaryUpdatedAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
