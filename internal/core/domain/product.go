package domain

import "time"

// Product is the catalog aggregate. Photos holds the stored file paths of the
// uploaded images, in upload order.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Colors      []string  `json:"colors"`
	Materials   string    `json:"materials"`
	Sizes       string    `json:"sizes"`
	Photos      []string  `json:"photos"`
	SellerID    string    `json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`
}
