package service

import (
	"context"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/repository"
)

// CatalogService exposes the read-mostly reference data behind the
// browse screens.
type CatalogService interface {
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	ListStates(ctx context.Context) ([]*model.State, error)
	ListLGAsByStateID(ctx context.Context, stateID int) ([]*model.LGA, error)
}

type CatalogServiceImpl struct {
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository) CatalogService {
	return &CatalogServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *CatalogServiceImpl) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	return s.categoryRepo.CreateCategory(ctx, &model.Category{
		Name:        name,
		Description: description,
	})
}

func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

func (s *CatalogServiceImpl) ListStates(ctx context.Context) ([]*model.State, error) {
	return s.categoryRepo.ListStates(ctx)
}

func (s *CatalogServiceImpl) ListLGAsByStateID(ctx context.Context, stateID int) ([]*model.LGA, error) {
	return s.categoryRepo.ListLGAsByStateID(ctx, stateID)
}
