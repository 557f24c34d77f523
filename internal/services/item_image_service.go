package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
	"arendaBack/utils"
)

type ItemImageService struct {
	ItemImageRepo *repositories.ItemImageRepository
	Storage       *utils.Storage
}

// UploadItemImage pushes the file to object storage under a fresh name and
// records the public URL against the item.
func (s *ItemImageService) UploadItemImage(ctx context.Context, itemID int, file []byte, fileName, contentType string) (models.ItemImage, error) {
	if len(file) == 0 {
		return models.ItemImage{}, models.NewValidationError("image", "This field is required.")
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileName))
	url, err := s.Storage.UploadFile(file, storedName, "items", contentType)
	if err != nil {
		return models.ItemImage{}, err
	}

	return s.ItemImageRepo.CreateItemImage(ctx, models.ItemImage{
		ItemID: itemID,
		Image:  url,
	})
}

func (s *ItemImageService) GetItemImageByID(ctx context.Context, id int) (models.ItemImage, error) {
	return s.ItemImageRepo.GetItemImageByID(ctx, id)
}

func (s *ItemImageService) GetAllItemImages(ctx context.Context) ([]models.ItemImage, error) {
	return s.ItemImageRepo.GetAllItemImages(ctx)
}

func (s *ItemImageService) DeleteItemImage(ctx context.Context, id int) error {
	return s.ItemImageRepo.DeleteItemImage(ctx, id)
}
