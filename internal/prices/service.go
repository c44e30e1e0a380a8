package prices

import (
	"context"
	"errors"
	"time"

	"goldrates/internal/adapters"
	"goldrates/internal/domain"
)

var ErrCategoryUnsupported = errors.New("unsupported price category")

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// ParseCategory validates the category selector of the read endpoint.
// An empty value defaults to "all".
func ParseCategory(raw string) (domain.Category, error) {
	switch domain.Category(raw) {
	case "":
		return domain.CategoryAll, nil
	case domain.CategoryAll, domain.CategoryGold, domain.CategoryCurrency:
		return domain.Category(raw), nil
	default:
		return "", ErrCategoryUnsupported
	}
}

// Service is the aggregation façade. It runs the configured price source,
// applies the list caps and stamps the snapshot with the current UTC time.
type Service struct {
	source  adapters.PriceSource
	history adapters.HistoryRepository
}

func NewService(source adapters.PriceSource, history adapters.HistoryRepository) *Service {
	return &Service{source: source, history: history}
}

// GetPrices builds a fresh snapshot for the requested category. It never
// fails on upstream problems; the source guarantees well-formed lists.
func (s *Service) GetPrices(ctx context.Context, category domain.Category) domain.PriceSnapshot {
	set := s.source.Fetch(ctx)

	if len(set.Gold) > maxGoldItems {
		set.Gold = set.Gold[:maxGoldItems]
	}
	if len(set.Currency) > maxCurrencyItems {
		set.Currency = set.Currency[:maxCurrencyItems]
	}

	snapshot := domain.PriceSnapshot{LastUpdate: time.Now().UTC()}
	if category == domain.CategoryAll || category == domain.CategoryGold {
		snapshot.Gold = set.Gold
	}
	if category == domain.CategoryAll || category == domain.CategoryCurrency {
		snapshot.Currency = set.Currency
	}
	return snapshot
}

// History returns the most recent recorded quotes, newest first.
func (s *Service) History(ctx context.Context, category domain.Category, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.history.RecentQuotes(ctx, category, limit)
}
