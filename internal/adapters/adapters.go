package adapters

import (
	"context"
	"time"

	"goldrates/internal/domain"

	"github.com/google/uuid"
)

// CombinedFeedClient fetches the single feed carrying gold and currency
// quotes together as locale-formatted strings.
type CombinedFeedClient interface {
	GetQuotes(ctx context.Context) ([]domain.CombinedQuote, error)
}

// SplitFeedClient fetches gold and currency quotes from two separate
// endpoints; the bodies are keyed objects with plain numeric values.
type SplitFeedClient interface {
	GetGold(ctx context.Context) (map[string]domain.SplitQuote, error)
	GetCurrency(ctx context.Context) (map[string]domain.SplitQuote, error)
}

// RateClient fetches a generic exchange-rate table against a base currency.
type RateClient interface {
	GetExchangeRates(ctx context.Context, base string) (map[string]float64, error)
}

// RateCache caches fetched exchange-rate tables for a short TTL.
type RateCache interface {
	Get(base string) (map[string]float64, bool)
	Set(base string, rates map[string]float64)
}

// PriceSource is one upstream provider strategy. Fetch never fails: on any
// upstream problem the source degrades to its static fallback lists.
type PriceSource interface {
	Name() string
	Fetch(ctx context.Context) domain.PriceSet
}

type PortfolioRepository interface {
	Create(ctx context.Context, item domain.PortfolioItem) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.PortfolioItem, error)
	Update(ctx context.Context, id uuid.UUID, ownerID string, patch domain.PortfolioItemPatch) (domain.PortfolioItem, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID string) error
}

type HistoryRepository interface {
	InsertQuotes(ctx context.Context, recordedAt time.Time, set domain.PriceSet) error
	RecentQuotes(ctx context.Context, category domain.Category, limit int) ([]domain.HistoryEntry, error)
}
