package prices

import (
	"context"
	"sync"

	"goldrates/internal/adapters"
	"goldrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// GoldFXSource builds canonical price lists from the two split feeds. The
// gold and currency calls are independent: each falls back on its own, and
// they run concurrently since neither depends on the other.
//
// Unlike HaremSource this source does not append the supplementary roster;
// its currency feed already carries the major currencies.
type GoldFXSource struct {
	client adapters.SplitFeedClient
}

func NewGoldFXSource(client adapters.SplitFeedClient) *GoldFXSource {
	return &GoldFXSource{client: client}
}

func (s *GoldFXSource) Name() string { return "goldfx" }

func (s *GoldFXSource) Fetch(ctx context.Context) domain.PriceSet {
	var set domain.PriceSet
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		set.Gold = s.fetchGold(ctx)
	}()
	go func() {
		defer wg.Done()
		set.Currency = s.fetchCurrency(ctx)
	}()
	wg.Wait()

	return set
}

func (s *GoldFXSource) fetchGold(ctx context.Context) []domain.PriceItem {
	body, err := s.client.GetGold(ctx)
	if err != nil {
		logrus.WithError(err).WithField("source", s.Name()).Warn("Gold feed unavailable, serving fallback list")
		return fallbackGoldSplit()
	}

	items := make([]domain.PriceItem, 0, len(splitGoldKeys))
	for _, k := range splitGoldKeys {
		q, ok := body[k.Key]
		if !ok {
			continue
		}
		items = append(items, domain.PriceItem{
			ID:     len(items) + 1,
			Name:   k.Name,
			NameEn: k.NameEn,
			Buy:    q.Buy,
			Sell:   q.Sell,
			Change: q.Change,
			Unit:   priceUnit,
		})
	}
	return items
}

func (s *GoldFXSource) fetchCurrency(ctx context.Context) []domain.PriceItem {
	body, err := s.client.GetCurrency(ctx)
	if err != nil {
		logrus.WithError(err).WithField("source", s.Name()).Warn("Currency feed unavailable, serving fallback list")
		return fallbackCurrency()
	}

	items := make([]domain.PriceItem, 0, len(splitCurrencyKeys)+len(splitWeightKeys))
	for _, k := range splitCurrencyKeys {
		q, ok := body[k.Key]
		if !ok {
			continue
		}
		items = append(items, currencyItem(len(items)+1, k, q))
	}
	// weight-based quotes trail the base currencies when the feed has them
	for _, k := range splitWeightKeys {
		q, ok := body[k.Key]
		if !ok {
			continue
		}
		items = append(items, currencyItem(len(items)+1, k, q))
	}
	return items
}

func currencyItem(id int, k splitCurrencyKey, q domain.SplitQuote) domain.PriceItem {
	return domain.PriceItem{
		ID:     id,
		Name:   k.Name,
		NameEn: k.NameEn,
		Buy:    q.Buy,
		Sell:   q.Sell,
		Change: q.Change,
		Symbol: k.Symbol,
		Unit:   priceUnit,
	}
}
