package unitofwork

import (
	"context"

	"ai-workspace-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PageRepository() contract.PageRepository
	AgentRepository() contract.AgentRepository
	FeatureRepository() contract.FeatureRepository
	FeaturePlanRepository() contract.FeaturePlanRepository
	FeatureDataRepository() contract.FeatureDataRepository
	MessageRepository() contract.MessageRepository
}
