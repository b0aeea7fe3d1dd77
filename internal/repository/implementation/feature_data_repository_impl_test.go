package implementation_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/repository/specification"
	"ai-workspace-be/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeatureData(pageId, featureId uuid.UUID, data string) *entity.FeatureData {
	now := time.Now()
	return &entity.FeatureData{
		Id:        uuid.New(),
		PageId:    pageId,
		FeatureId: featureId,
		Data:      json.RawMessage(data),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestFeatureDataRepository_OneRowPerFeature(t *testing.T) {
	ctx := context.Background()
	factory, _ := testutil.NewTestFactory(t)
	repo := factory.NewUnitOfWork(ctx).FeatureDataRepository()
	pageId, featureId := uuid.New(), uuid.New()

	require.NoError(t, repo.Create(ctx, newFeatureData(pageId, featureId, `[]`)))
	assert.Error(t, repo.Create(ctx, newFeatureData(pageId, featureId, `[]`)))

	// another feature on the same page is unaffected
	assert.NoError(t, repo.Create(ctx, newFeatureData(pageId, uuid.New(), `[]`)))
}

func TestFeatureDataRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	factory, _ := testutil.NewTestFactory(t)
	repo := factory.NewUnitOfWork(ctx).FeatureDataRepository()
	pageId, featureId := uuid.New(), uuid.New()

	first := newFeatureData(pageId, featureId, `[{"title":"a"}]`)
	require.NoError(t, repo.Upsert(ctx, first))
	require.NoError(t, repo.SaveSummary(ctx, first.Id, "one item", time.Now()))

	second := newFeatureData(pageId, featureId, `[{"title":"a"},{"title":"b"}]`)
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.Id, second.Id, "the existing row is reused")
	assert.Empty(t, second.AiSummary)
	assert.Nil(t, second.AiSummaryUpdatedAt)

	rows, err := repo.FindAll(ctx,
		specification.ByPageID{PageID: pageId},
		specification.ByFeatureID{FeatureID: featureId},
	)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.JSONEq(t, `[{"title":"a"},{"title":"b"}]`, string(rows[0].Data))
}
