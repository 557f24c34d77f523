package services

import (
	"context"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
)

type ItemService struct {
	ItemRepo *repositories.ItemRepository
}

func validateItem(item models.Item) error {
	if item.Title == "" {
		return models.NewValidationError("title", "This field is required.")
	}
	if item.PricePerDay < 0 {
		return models.NewValidationError("price_per_day", "must be a non-negative amount")
	}
	if item.Deposit < 0 {
		return models.NewValidationError("deposit", "must be a non-negative amount")
	}
	return nil
}

// CreateItem binds the item to the authenticated owner; any client-supplied
// user_id is discarded before this point.
func (s *ItemService) CreateItem(ctx context.Context, ownerID int, item models.Item) (models.Item, error) {
	if err := validateItem(item); err != nil {
		return models.Item{}, err
	}
	item.UserID = ownerID
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) GetItems(ctx context.Context, categoryID *int) ([]models.Item, error) {
	return s.ItemRepo.GetItems(ctx, categoryID)
}

func (s *ItemService) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, id)
}

func (s *ItemService) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if err := validateItem(item); err != nil {
		return models.Item{}, err
	}
	return s.ItemRepo.UpdateItem(ctx, item)
}

func (s *ItemService) DeleteItem(ctx context.Context, id int) error {
	return s.ItemRepo.DeleteItem(ctx, id)
}
