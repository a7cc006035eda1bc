package cart

import (
	"github.com/bharatcart/shop-backend/internal/catalog"
)

// Line is a persisted cart row pairing a product reference with a quantity.
// At most one line exists per product; repeat adds increment the quantity.
type Line struct {
	ID        int `json:"id"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Item is a line joined with its product. Total is price times quantity.
type Item struct {
	ID       int             `json:"id"`
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Total    float64         `json:"total"`
}

// View is the computed cart representation: joined items plus the aggregate
// total rounded to 2 decimal places. It is derived, never stored.
type View struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}
