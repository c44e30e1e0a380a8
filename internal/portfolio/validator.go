package portfolio

import (
	"errors"

	"goldrates/internal/domain"
)

var (
	ErrTypeInvalid     = errors.New("type must be gold or currency")
	ErrNameRequired    = errors.New("name is required")
	ErrNameEnRequired  = errors.New("nameEn is required")
	ErrQuantityInvalid = errors.New("quantity must be greater than zero")
	ErrBuyPriceInvalid = errors.New("buyPrice must not be negative")
)

// CreateInput carries the client-supplied fields of a new position.
type CreateInput struct {
	Type     domain.Category `json:"type"`
	Name     string          `json:"name"`
	NameEn   string          `json:"nameEn"`
	Quantity float64         `json:"quantity"`
	BuyPrice float64         `json:"buyPrice"`
}

func ValidateCreate(in CreateInput) error {
	if in.Type != domain.CategoryGold && in.Type != domain.CategoryCurrency {
		return ErrTypeInvalid
	}
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.NameEn == "" {
		return ErrNameEnRequired
	}
	if in.Quantity <= 0 {
		return ErrQuantityInvalid
	}
	if in.BuyPrice < 0 {
		return ErrBuyPriceInvalid
	}
	return nil
}

// ValidatePatch checks only the fields the patch actually sets; an empty
// patch is allowed and merely bumps updatedAt.
func ValidatePatch(patch domain.PortfolioItemPatch) error {
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return ErrQuantityInvalid
	}
	if patch.BuyPrice != nil && *patch.BuyPrice < 0 {
		return ErrBuyPriceInvalid
	}
	return nil
}
