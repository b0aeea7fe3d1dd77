// FILE: internal/service/page_service.go
package service

import (
	"context"
	"strings"
	"time"

	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/repository/specification"
	"ai-workspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPageService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePageRequest) (*dto.PageResponse, error)
	GetAll(ctx context.Context, ownerId uuid.UUID) ([]*dto.PageResponse, error)
	Show(ctx context.Context, ownerId uuid.UUID, pageId uuid.UUID) (*dto.PageResponse, error)
}

type pageService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPageService(uowFactory unitofwork.RepositoryFactory) IPageService {
	return &pageService{
		uowFactory: uowFactory,
	}
}

func (c *pageService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePageRequest) (*dto.PageResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, dto.NewValidationError("name", "is required")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	page := entity.Page{
		Id:        uuid.New(),
		Name:      name,
		OwnerId:   ownerId,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.PageRepository().Create(ctx, &page); err != nil {
		return nil, err
	}

	return toPageResponse(&page, 0, 0), nil
}

func (c *pageService) GetAll(ctx context.Context, ownerId uuid.UUID) ([]*dto.PageResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	pages, err := uow.PageRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: ownerId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PageResponse, 0, len(pages))
	for _, page := range pages {
		res, err := c.withCounts(ctx, uow, page)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (c *pageService) Show(ctx context.Context, ownerId uuid.UUID, pageId uuid.UUID) (*dto.PageResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	page, err := findOwnedPage(ctx, uow, ownerId, pageId)
	if err != nil {
		return nil, err
	}
	return c.withCounts(ctx, uow, page)
}

func (c *pageService) withCounts(ctx context.Context, uow unitofwork.UnitOfWork, page *entity.Page) (*dto.PageResponse, error) {
	features, err := uow.FeatureRepository().Count(ctx, specification.ByPageID{PageID: page.Id})
	if err != nil {
		return nil, err
	}
	agents, err := uow.AgentRepository().Count(ctx, specification.ByPageID{PageID: page.Id})
	if err != nil {
		return nil, err
	}
	return toPageResponse(page, features, agents), nil
}

func toPageResponse(page *entity.Page, features, agents int64) *dto.PageResponse {
	return &dto.PageResponse{
		Id:           page.Id,
		Name:         page.Name,
		OwnerId:      page.OwnerId,
		FeatureCount: features,
		AgentCount:   agents,
		CreatedAt:    page.CreatedAt,
		UpdatedAt:    page.UpdatedAt,
	}
}
