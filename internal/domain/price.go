package domain

import (
	"time"
)

// Category of a quoted instrument. Every produced item belongs to exactly one.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryGold     Category = "gold"
	CategoryCurrency Category = "currency"
)

// PriceItem is a normalized gold or currency quote, independent of the
// upstream provider schema. IDs are assigned per list per call, 1-based.
type PriceItem struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	NameEn string  `json:"nameEn"`
	Buy    float64 `json:"buy"`
	Sell   float64 `json:"sell"`
	Change float64 `json:"change"`
	Symbol string  `json:"symbol,omitempty"`
	Unit   string  `json:"unit"`
}

// PriceSet holds both category lists as produced by a price source,
// before the façade applies category filtering and list caps.
type PriceSet struct {
	Gold     []PriceItem
	Currency []PriceItem
}

// PriceSnapshot is the aggregation result served to clients. Nil lists mean
// the category was not requested, not that it is empty.
type PriceSnapshot struct {
	Gold       []PriceItem `json:"gold,omitempty"`
	Currency   []PriceItem `json:"currency,omitempty"`
	LastUpdate time.Time   `json:"lastUpdate"`
}

// HistoryEntry is one persisted quote row from the snapshot recorder.
type HistoryEntry struct {
	Category   Category  `json:"category"`
	Name       string    `json:"name"`
	NameEn     string    `json:"nameEn"`
	Buy        float64   `json:"buy"`
	Sell       float64   `json:"sell"`
	Change     float64   `json:"change"`
	RecordedAt time.Time `json:"recordedAt"`
}

// CombinedQuote is one record of the combined upstream feed. All fields are
// locale-formatted strings as delivered by the provider.
type CombinedQuote struct {
	Key     string `json:"key"`
	Buy     string `json:"buy"`
	Sell    string `json:"sell"`
	Percent string `json:"percent"`
}

// SplitQuote is one keyed entry of the split upstream feeds; values arrive
// as plain numbers, no locale parsing needed.
type SplitQuote struct {
	Buy    float64 `json:"alis"`
	Sell   float64 `json:"satis"`
	Change float64 `json:"degisim"`
}
