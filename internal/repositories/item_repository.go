package repositories

import (
	"context"
	"database/sql"
	"time"

	"arendaBack/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
        INSERT INTO items (user_id, title, description, category_id, price_per_day, deposit, address, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	item.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		item.UserID, item.Title, item.Description, item.CategoryID,
		item.PricePerDay, item.Deposit, item.Address, item.CreatedAt,
	)
	if err != nil {
		return models.Item{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	item.ID = int(id)
	return item, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	var item models.Item
	query := `
        SELECT id, user_id, title, description, category_id, price_per_day, deposit, address, created_at
        FROM items
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.UserID, &item.Title, &item.Description, &item.CategoryID,
		&item.PricePerDay, &item.Deposit, &item.Address, &item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}

	images, err := r.getImagesForItem(ctx, item.ID)
	if err != nil {
		return models.Item{}, err
	}
	item.Images = images
	return item, nil
}

// GetItems returns all items, optionally restricted to one category.
func (r *ItemRepository) GetItems(ctx context.Context, categoryID *int) ([]models.Item, error) {
	query := `
        SELECT id, user_id, title, description, category_id, price_per_day, deposit, address, created_at
        FROM items
    `
	var args []interface{}
	if categoryID != nil {
		query += ` WHERE category_id = ?`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Description, &item.CategoryID,
			&item.PricePerDay, &item.Deposit, &item.Address, &item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		images, err := r.getImagesForItem(ctx, items[i].ID)
		if err != nil {
			return nil, err
		}
		items[i].Images = images
	}
	return items, nil
}

func (r *ItemRepository) getImagesForItem(ctx context.Context, itemID int) ([]models.ItemImage, error) {
	query := `SELECT id, item_id, image FROM item_images WHERE item_id = ?`
	rows, err := r.DB.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []models.ItemImage{}
	for rows.Next() {
		var image models.ItemImage
		if err := rows.Scan(&image.ID, &image.ItemID, &image.Image); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
        UPDATE items
        SET title = ?, description = ?, category_id = ?, price_per_day = ?, deposit = ?, address = ?
        WHERE id = ?
    `
	result, err := r.DB.ExecContext(ctx, query,
		item.Title, item.Description, item.CategoryID, item.PricePerDay,
		item.Deposit, item.Address, item.ID,
	)
	if err != nil {
		return models.Item{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Item{}, err
	}
	if rowsAffected == 0 {
		return models.Item{}, models.ErrItemNotFound
	}

	return r.GetItemByID(ctx, item.ID)
}

// DeleteItem removes an item together with its images, its bookings and the
// reviews of those bookings, in one transaction.
func (r *ItemRepository) DeleteItem(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM reviews WHERE booking_id IN (SELECT id FROM bookings WHERE item_id = ?)`, id)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE item_id = ?`, id)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM item_images WHERE item_id = ?`, id)
	if err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return tx.Commit()
}
