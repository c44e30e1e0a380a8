package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"goldrates/internal/domain"
)

// PriceService is the aggregation façade as seen by the HTTP layer.
type PriceService interface {
	GetPrices(ctx context.Context, category domain.Category) domain.PriceSnapshot
	History(ctx context.Context, category domain.Category, limit int) ([]domain.HistoryEntry, error)
}

type Handler struct {
	service PriceService
}

func NewPriceHandler(service PriceService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}
