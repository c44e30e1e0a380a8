package prices

import (
	"slices"

	"goldrates/internal/domain"
)

// priceUnit is the pricing currency of every canonical item.
const priceUnit = "TRY"

const (
	maxGoldItems     = 10
	maxCurrencyItems = 11
)

type goldName struct {
	Name   string
	NameEn string
}

type currencyName struct {
	Name   string
	NameEn string
	Symbol string
}

// combinedGoldNames maps keys of the combined feed to display names.
// Keys absent from this table (and from combinedCurrencyNames) are dropped.
var combinedGoldNames = map[string]goldName{
	"Has Altın":   {"HAS ALTIN", "PURE GOLD"},
	"ONS":         {"ONS", "OUNCE"},
	"GRAM ALTIN":  {"GRAM ALTIN", "GRAM GOLD"},
	"22 AYAR":     {"22 AYAR", "22 CARAT"},
	"14 AYAR":     {"14 AYAR", "14 CARAT"},
	"ALTIN GÜMÜŞ": {"ALTIN GÜMÜŞ", "GOLD SILVER"},
	"YENİ ÇEYREK": {"ÇEYREK ALTIN", "QUARTER GOLD"},
	"YENİ YARIM":  {"YARIM ALTIN", "HALF GOLD"},
	"YENİ TAM":    {"TAM ALTIN", "FULL GOLD"},
	"YENİ ATA":    {"ATA ALTIN", "ATA GOLD"},
	"ESKİ ÇEYREK": {"ESKİ ÇEYREK", "OLD QUARTER"},
	"ESKİ YARIM":  {"ESKİ YARIM", "OLD HALF"},
	"ESKİ TAM":    {"ESKİ TAM", "OLD FULL"},
	"ESKİ ATA":    {"ESKİ ATA", "OLD ATA"},
}

var combinedCurrencyNames = map[string]currencyName{
	"USD/KG": {"USD/KG", "USD/KG", "$"},
	"EUR/KG": {"EUR/KG", "EUR/KG", "€"},
}

type splitGoldKey struct {
	Key    string
	Name   string
	NameEn string
}

type splitCurrencyKey struct {
	Key    string
	Name   string
	NameEn string
	Symbol string
}

// splitGoldKeys is walked in order; ids follow table order, not body order.
var splitGoldKeys = []splitGoldKey{
	{"has_altin", "HAS ALTIN", "PURE GOLD"},
	{"ons", "ONS", "OUNCE"},
	{"ceyrek_altin", "ÇEYREK ALTIN", "QUARTER GOLD"},
	{"yarim_altin", "YARIM ALTIN", "HALF GOLD"},
	{"tam_altin", "TAM ALTIN", "FULL GOLD"},
	{"ayar22", "22 AYAR", "22 CARAT"},
	{"gram_altin", "GRAM ALTIN", "GRAM GOLD"},
	{"gumus", "ALTIN GÜMÜŞ", "GOLD SILVER"},
	{"resat", "REŞAT ALTIN", "RESAT GOLD"},
	{"ata", "ATA ALTIN", "ATA GOLD"},
}

var splitCurrencyKeys = []splitCurrencyKey{
	{"dolar", "USD", "USD", "$"},
	{"euro", "EUR", "EUR", "€"},
	{"sterlin", "GBP", "GBP", "£"},
	{"frank", "CHF", "CHF", "Fr"},
	{"avustralya_dolari", "AUD", "AUD", "$"},
	{"kanada_dolari", "CAD", "CAD", "$"},
	{"suudi_arabistan_riyali", "SAR", "SAR", "ر.س"},
	{"japon_yeni", "JPY", "JPY", "¥"},
	{"kuveyt_dinari", "KWD", "KWD", "KD"},
}

// splitWeightKeys are appended after the base currencies when present.
var splitWeightKeys = []splitCurrencyKey{
	{"usd_kg", "USD/KG", "USD/KG", "$"},
	{"eur_kg", "EUR/KG", "EUR/KG", "€"},
}

type rosterEntry struct {
	Code        string
	Symbol      string
	DefaultRate float64 // per-USD rate used when the fetched table lacks the code
}

// supplementaryRoster lists the currencies synthesized from the USD rate
// table. USD itself is priced straight off the USD/TRY rate.
var supplementaryRoster = []rosterEntry{
	{"USD", "$", 1.0},
	{"EUR", "€", 0.92},
	{"GBP", "£", 0.79},
	{"CHF", "Fr", 0.88},
	{"AUD", "$", 1.54},
	{"CAD", "$", 1.41},
	{"SAR", "ر.س", 3.75},
	{"JPY", "¥", 151.0},
	{"KWD", "KD", 0.31},
}

// Fallback snapshots served whenever a live call fails. The combined and
// split feeds diverge in one gold row (ESKİ ÇEYREK vs REŞAT ALTIN); the
// currency fallback is shared.

var fallbackGoldCombinedItems = []domain.PriceItem{
	{ID: 1, Name: "HAS ALTIN", NameEn: "PURE GOLD", Buy: 5807.50, Sell: 5858.70, Change: 0.74, Unit: priceUnit},
	{ID: 2, Name: "ONS", NameEn: "OUNCE", Buy: 4239.5, Sell: 4239.9, Change: 0.53, Unit: priceUnit},
	{ID: 3, Name: "ÇEYREK ALTIN", NameEn: "QUARTER GOLD", Buy: 2389.0, Sell: 2398.0, Change: 0.68, Unit: priceUnit},
	{ID: 4, Name: "YARIM ALTIN", NameEn: "HALF GOLD", Buy: 4779.0, Sell: 4796.0, Change: 0.72, Unit: priceUnit},
	{ID: 5, Name: "TAM ALTIN", NameEn: "FULL GOLD", Buy: 9558.0, Sell: 9592.0, Change: 0.75, Unit: priceUnit},
	{ID: 6, Name: "22 AYAR", NameEn: "22 CARAT", Buy: 5282.82, Sell: 5545.77, Change: 4.83, Unit: priceUnit},
	{ID: 7, Name: "GRAM ALTIN", NameEn: "GRAM GOLD", Buy: 5778.46, Sell: 5876.28, Change: 1.55, Unit: priceUnit},
	{ID: 8, Name: "ALTIN GÜMÜŞ", NameEn: "GOLD SILVER", Buy: 70.66, Sell: 73.63, Change: 0.59, Unit: priceUnit},
	{ID: 9, Name: "ESKİ ÇEYREK", NameEn: "OLD QUARTER", Buy: 9320.0, Sell: 9493.0, Change: 0.82, Unit: priceUnit},
	{ID: 10, Name: "ATA ALTIN", NameEn: "ATA GOLD", Buy: 9612.0, Sell: 9652.0, Change: 0.78, Unit: priceUnit},
}

var fallbackGoldSplitItems = []domain.PriceItem{
	{ID: 1, Name: "HAS ALTIN", NameEn: "PURE GOLD", Buy: 5807.50, Sell: 5858.70, Change: 0.74, Unit: priceUnit},
	{ID: 2, Name: "ONS", NameEn: "OUNCE", Buy: 4239.5, Sell: 4239.9, Change: 0.53, Unit: priceUnit},
	{ID: 3, Name: "ÇEYREK ALTIN", NameEn: "QUARTER GOLD", Buy: 2389.0, Sell: 2398.0, Change: 0.68, Unit: priceUnit},
	{ID: 4, Name: "YARIM ALTIN", NameEn: "HALF GOLD", Buy: 4779.0, Sell: 4796.0, Change: 0.72, Unit: priceUnit},
	{ID: 5, Name: "TAM ALTIN", NameEn: "FULL GOLD", Buy: 9558.0, Sell: 9592.0, Change: 0.75, Unit: priceUnit},
	{ID: 6, Name: "22 AYAR", NameEn: "22 CARAT", Buy: 5282.82, Sell: 5545.77, Change: 4.83, Unit: priceUnit},
	{ID: 7, Name: "GRAM ALTIN", NameEn: "GRAM GOLD", Buy: 5778.46, Sell: 5876.28, Change: 1.55, Unit: priceUnit},
	{ID: 8, Name: "ALTIN GÜMÜŞ", NameEn: "GOLD SILVER", Buy: 70.66, Sell: 73.63, Change: 0.59, Unit: priceUnit},
	{ID: 9, Name: "REŞAT ALTIN", NameEn: "RESAT GOLD", Buy: 9872.0, Sell: 9912.0, Change: 0.82, Unit: priceUnit},
	{ID: 10, Name: "ATA ALTIN", NameEn: "ATA GOLD", Buy: 9612.0, Sell: 9652.0, Change: 0.78, Unit: priceUnit},
}

var fallbackCurrencyItems = []domain.PriceItem{
	{ID: 1, Name: "USD", NameEn: "USD", Buy: 34.125, Sell: 34.225, Change: 0.55, Symbol: "$", Unit: priceUnit},
	{ID: 2, Name: "EUR", NameEn: "EUR", Buy: 35.890, Sell: 36.050, Change: 0.68, Symbol: "€", Unit: priceUnit},
	{ID: 3, Name: "GBP", NameEn: "GBP", Buy: 43.250, Sell: 43.450, Change: 0.42, Symbol: "£", Unit: priceUnit},
	{ID: 4, Name: "CHF", NameEn: "CHF", Buy: 38.650, Sell: 38.850, Change: 0.38, Symbol: "Fr", Unit: priceUnit},
	{ID: 5, Name: "AUD", NameEn: "AUD", Buy: 22.150, Sell: 22.350, Change: 0.25, Symbol: "$", Unit: priceUnit},
	{ID: 6, Name: "CAD", NameEn: "CAD", Buy: 24.050, Sell: 24.250, Change: 0.31, Symbol: "$", Unit: priceUnit},
	{ID: 7, Name: "SAR", NameEn: "SAR", Buy: 9.100, Sell: 9.200, Change: 0.18, Symbol: "ر.س", Unit: priceUnit},
	{ID: 8, Name: "JPY", NameEn: "JPY", Buy: 0.226, Sell: 0.230, Change: 0.22, Symbol: "¥", Unit: priceUnit},
	{ID: 9, Name: "KWD", NameEn: "KWD", Buy: 111.250, Sell: 112.150, Change: 0.45, Symbol: "KD", Unit: priceUnit},
	{ID: 10, Name: "USD/KG", NameEn: "USD/KG", Buy: 137.020, Sell: 137.520, Change: 0.55, Symbol: "$", Unit: priceUnit},
	{ID: 11, Name: "EUR/KG", NameEn: "EUR/KG", Buy: 118.090, Sell: 118.750, Change: 0.68, Symbol: "€", Unit: priceUnit},
}

// Fallback accessors return clones so callers can append and truncate freely.

func fallbackGoldCombined() []domain.PriceItem { return slices.Clone(fallbackGoldCombinedItems) }

func fallbackGoldSplit() []domain.PriceItem { return slices.Clone(fallbackGoldSplitItems) }

func fallbackCurrency() []domain.PriceItem { return slices.Clone(fallbackCurrencyItems) }
