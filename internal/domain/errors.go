package domain

import "errors"

var (
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
)
