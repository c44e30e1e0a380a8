package prices

import (
	"context"

	"goldrates/internal/adapters"
	"goldrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// HaremSource builds canonical price lists from the combined feed and
// appends the supplementary roster to its currency list.
type HaremSource struct {
	client    adapters.CombinedFeedClient
	augmenter *Augmenter
}

func NewHaremSource(client adapters.CombinedFeedClient, augmenter *Augmenter) *HaremSource {
	return &HaremSource{client: client, augmenter: augmenter}
}

func (s *HaremSource) Name() string { return "harem" }

// Fetch maps the combined feed onto canonical items. Transport errors,
// non-2xx statuses and an application-level failure flag all degrade to the
// static fallback snapshot for both categories; there is no partial mixing.
func (s *HaremSource) Fetch(ctx context.Context) domain.PriceSet {
	quotes, err := s.client.GetQuotes(ctx)
	if err != nil {
		logrus.WithError(err).WithField("source", s.Name()).Warn("Combined feed unavailable, serving fallback snapshot")
		return domain.PriceSet{Gold: fallbackGoldCombined(), Currency: fallbackCurrency()}
	}

	var gold, currency []domain.PriceItem
	for _, q := range quotes {
		buy := ParseNumber(q.Buy, false)
		sell := ParseNumber(q.Sell, false)
		change := ParseNumber(q.Percent, true)

		if n, ok := combinedGoldNames[q.Key]; ok {
			gold = append(gold, domain.PriceItem{
				ID:     len(gold) + 1,
				Name:   n.Name,
				NameEn: n.NameEn,
				Buy:    buy,
				Sell:   sell,
				Change: change,
				Unit:   priceUnit,
			})
		} else if n, ok := combinedCurrencyNames[q.Key]; ok {
			currency = append(currency, domain.PriceItem{
				ID:     len(currency) + 1,
				Name:   n.Name,
				NameEn: n.NameEn,
				Buy:    buy,
				Sell:   sell,
				Change: change,
				Symbol: n.Symbol,
				Unit:   priceUnit,
			})
		}
		// keys matching neither table are dropped
	}

	currency = append(currency, s.augmenter.Augment(ctx, len(currency)+1)...)

	return domain.PriceSet{Gold: gold, Currency: currency}
}
