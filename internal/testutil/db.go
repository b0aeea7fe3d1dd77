// Package testutil holds helpers shared by repository, orchestrator and
// service tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/repository/unitofwork"
	"ai-workspace-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with every workspace
// table migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewGormDB(database.GormConfig{
		Driver:   database.DriverSQLite,
		DSN:      dsn,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// NewTestFactory returns a repository factory over a fresh test database.
func NewTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()
	db := NewTestDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

func SeedPage(t *testing.T, factory unitofwork.RepositoryFactory, ownerId uuid.UUID, name string) *entity.Page {
	t.Helper()
	ctx := context.Background()
	page := &entity.Page{
		Id:      uuid.New(),
		Name:    name,
		OwnerId: ownerId,
	}
	require.NoError(t, factory.NewUnitOfWork(ctx).PageRepository().Create(ctx, page))
	return page
}

func SeedAgent(t *testing.T, factory unitofwork.RepositoryFactory, pageId uuid.UUID, name string) *entity.Agent {
	t.Helper()
	ctx := context.Background()
	agent := &entity.Agent{
		Id:            uuid.New(),
		PageId:        pageId,
		Name:          name,
		Role:          "assistant",
		Tone:          "friendly",
		Creativity:    0.5,
		Verbosity:     entity.VerbosityBalanced,
		MemoryEnabled: true,
	}
	require.NoError(t, factory.NewUnitOfWork(ctx).AgentRepository().Create(ctx, agent))
	return agent
}

// SeedMessage writes a message with an explicit timestamp so ordering
// assertions do not depend on the clock.
func SeedMessage(t *testing.T, factory unitofwork.RepositoryFactory, msg *entity.Message, at time.Time) *entity.Message {
	t.Helper()
	ctx := context.Background()
	if msg.Id == uuid.Nil {
		msg.Id = uuid.New()
	}
	if msg.Source == "" {
		msg.Source = entity.MessageSourceChat
	}
	msg.CreatedAt = at
	require.NoError(t, factory.NewUnitOfWork(ctx).MessageRepository().Create(ctx, msg))
	return msg
}
