package domain

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioItem is a held gold or currency position owned by a single user.
type PortfolioItem struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   string    `json:"userId"`
	Type      Category  `json:"type"`
	Name      string    `json:"name"`
	NameEn    string    `json:"nameEn"`
	Quantity  float64   `json:"quantity"`
	BuyPrice  float64   `json:"buyPrice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PortfolioItemPatch carries the updatable fields of a position; nil fields
// are left untouched.
type PortfolioItemPatch struct {
	Quantity *float64 `json:"quantity"`
	BuyPrice *float64 `json:"buyPrice"`
}
