package models

import "time"

type Item struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CategoryID  *int        `json:"category_id"`
	PricePerDay float64     `json:"price_per_day"`
	Deposit     float64     `json:"deposit"`
	Address     string      `json:"address,omitempty"`
	Images      []ItemImage `json:"images"`
	CreatedAt   time.Time   `json:"created_at"`
}

type ItemImage struct {
	ID     int    `json:"id"`
	ItemID int    `json:"item_id"`
	Image  string `json:"image"`
}
