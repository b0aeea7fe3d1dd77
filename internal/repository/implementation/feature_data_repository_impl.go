package implementation

import (
	"context"
	"errors"
	"time"

	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/mapper"
	"ai-workspace-be/internal/model"
	"ai-workspace-be/internal/repository/contract"
	"ai-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeatureDataRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureDataMapper
}

func NewFeatureDataRepository(db *gorm.DB) contract.FeatureDataRepository {
	return &FeatureDataRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeatureDataMapper(),
	}
}

func (r *FeatureDataRepositoryImpl) Create(ctx context.Context, data *entity.FeatureData) error {
	m := r.mapper.ToModel(data)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*data = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureDataRepositoryImpl) Update(ctx context.Context, data *entity.FeatureData) error {
	m := r.mapper.ToModel(data)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*data = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureDataRepositoryImpl) Upsert(ctx context.Context, data *entity.FeatureData) error {
	m := r.mapper.ToModel(data)
	m.AiSummary = ""
	m.AiSummaryUpdatedAt = nil
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page_id"}, {Name: "feature_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "ai_summary", "ai_summary_updated_at", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	// On conflict the stored row keeps its own id, so read it back.
	var stored model.FeatureData
	if err := r.db.WithContext(ctx).
		Where("page_id = ? AND feature_id = ?", data.PageId, data.FeatureId).
		First(&stored).Error; err != nil {
		return err
	}
	*data = *r.mapper.ToEntity(&stored)
	return nil
}

func (r *FeatureDataRepositoryImpl) SaveSummary(ctx context.Context, id uuid.UUID, summary string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.FeatureData{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"ai_summary":            summary,
			"ai_summary_updated_at": at,
		}).Error
}

func (r *FeatureDataRepositoryImpl) DeleteAll(ctx context.Context, specs ...specification.Specification) (int64, error) {
	res := applySpecifications(r.db.WithContext(ctx), specs...).Delete(&model.FeatureData{})
	return res.RowsAffected, res.Error
}

func (r *FeatureDataRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeatureData, error) {
	var m model.FeatureData
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeatureDataRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureData, error) {
	var models []*model.FeatureData
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
