package contract

import (
	"context"
	"time"

	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeatureDataRepository interface {
	Create(ctx context.Context, data *entity.FeatureData) error
	Update(ctx context.Context, data *entity.FeatureData) error
	// Upsert inserts the row, or replaces the payload of the existing row for
	// the same (page, feature) and clears its cached summary.
	Upsert(ctx context.Context, data *entity.FeatureData) error
	// SaveSummary writes only the summary columns and leaves updated_at alone.
	SaveSummary(ctx context.Context, id uuid.UUID, summary string, at time.Time) error
	DeleteAll(ctx context.Context, specs ...specification.Specification) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeatureData, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureData, error)
}
