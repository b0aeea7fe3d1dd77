// FILE: internal/repository/contract/feature_repository.go
package contract

import (
	"context"

	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	Update(ctx context.Context, feature *entity.Feature) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type FeaturePlanRepository interface {
	Create(ctx context.Context, plan *entity.FeaturePlan) error
	DeleteByFeatureId(ctx context.Context, featureId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeaturePlan, error)
}
