package repositories

import (
	"context"
	"database/sql"

	"arendaBack/internal/models"
)

type ItemImageRepository struct {
	DB *sql.DB
}

func (r *ItemImageRepository) CreateItemImage(ctx context.Context, image models.ItemImage) (models.ItemImage, error) {
	query := `INSERT INTO item_images (item_id, image) VALUES (?, ?)`
	result, err := r.DB.ExecContext(ctx, query, image.ItemID, image.Image)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			return models.ItemImage{}, models.ErrItemNotFound
		}
		return models.ItemImage{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.ItemImage{}, err
	}
	image.ID = int(id)
	return image, nil
}

func (r *ItemImageRepository) GetItemImageByID(ctx context.Context, id int) (models.ItemImage, error) {
	var image models.ItemImage
	query := `SELECT id, item_id, image FROM item_images WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&image.ID, &image.ItemID, &image.Image)
	if err == sql.ErrNoRows {
		return models.ItemImage{}, models.ErrItemImageNotFound
	}
	if err != nil {
		return models.ItemImage{}, err
	}
	return image, nil
}

func (r *ItemImageRepository) GetAllItemImages(ctx context.Context) ([]models.ItemImage, error) {
	query := `SELECT id, item_id, image FROM item_images`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.ItemImage
	for rows.Next() {
		var image models.ItemImage
		if err := rows.Scan(&image.ID, &image.ItemID, &image.Image); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

func (r *ItemImageRepository) DeleteItemImage(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM item_images WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrItemImageNotFound
	}
	return nil
}
