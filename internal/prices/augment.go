package prices

import (
	"context"
	"math"
	"time"

	"goldrates/internal/adapters"
	"goldrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// referenceUSDTRY is the rate every synthesized change value is derived
// from. All roster currencies share one change per call.
// TODO: replace with each currency's previous-day rate once product decides
// where that history should come from.
const referenceUSDTRY = 42.0

const (
	bidFactor = 0.995
	askFactor = 1.005
)

// Augmenter synthesizes additional TRY currency quotes from a USD-based
// rate table. Any fetch failure yields no additional quotes; the caller's
// primary data is never affected.
type Augmenter struct {
	client  adapters.RateClient
	cache   adapters.RateCache
	timeout time.Duration
}

func NewAugmenter(client adapters.RateClient, cache adapters.RateCache, timeout time.Duration) *Augmenter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Augmenter{client: client, cache: cache, timeout: timeout}
}

// Augment returns TRY quotes for the supplementary roster, with ids starting
// at startID. The returned slice is empty when the rate table is unreachable.
func (a *Augmenter) Augment(ctx context.Context, startID int) []domain.PriceItem {
	rates, ok := a.cache.Get("USD")
	if !ok {
		reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		var err error
		rates, err = a.client.GetExchangeRates(reqCtx, "USD")
		if err != nil {
			logrus.WithError(err).Warn("Supplementary rate table unavailable, skipping augmentation")
			return nil
		}
		a.cache.Set("USD", rates)
	}

	tryRate, ok := rates["TRY"]
	if !ok {
		tryRate = referenceUSDTRY
	}
	change := round2((tryRate - referenceUSDTRY) / referenceUSDTRY * 100)

	items := make([]domain.PriceItem, 0, len(supplementaryRoster))
	for i, entry := range supplementaryRoster {
		var buy, sell float64
		if entry.Code == "USD" {
			buy = tryRate * bidFactor
			sell = tryRate * askFactor
		} else {
			usdRate, ok := rates[entry.Code]
			if !ok {
				usdRate = entry.DefaultRate
			}
			perUnit := 1.0
			if usdRate > 0 {
				perUnit = 1 / usdRate
			}
			buy = perUnit * tryRate * bidFactor
			sell = perUnit * tryRate * askFactor
		}

		items = append(items, domain.PriceItem{
			ID:     startID + i,
			Name:   entry.Code,
			NameEn: entry.Code,
			Buy:    round2(buy),
			Sell:   round2(sell),
			Change: change,
			Symbol: entry.Symbol,
			Unit:   priceUnit,
		})
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
