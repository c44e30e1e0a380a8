package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"goldrates/internal/prices"
)

// GetPrices godoc
// @Summary Current gold and currency prices
// @Description Live quotes normalized to TRY, with static fallback when upstream feeds are unavailable
// @Tags Prices
// @Param type query string false "Category filter" Enums(all, gold, currency) default(all)
// @Produce json
// @Success 200 {object} domain.PriceSnapshot
// @Failure 400 {object} errorResponse
// @Router /api/prices [get]
func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("type"))

	category, err := prices.ParseCategory(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snapshot := h.service.GetPrices(r.Context(), category)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(snapshot)
}
