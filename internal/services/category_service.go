package services

import (
	"context"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
)

// CategoryService is read-only: categories are reference data maintained
// out-of-band, the API never writes them.
type CategoryService struct {
	CategoryRepo *repositories.CategoryRepository
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryRepo.GetAllCategories(ctx)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	return s.CategoryRepo.GetCategoryByID(ctx, id)
}
