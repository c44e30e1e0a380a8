package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"goldrates/internal/domain"
	"goldrates/internal/portfolio"

	"github.com/google/uuid"
)

const defaultOwnerID = "default"

// PortfolioService is the portfolio use-case layer as seen by HTTP.
type PortfolioService interface {
	Create(ctx context.Context, ownerID string, in portfolio.CreateInput) (domain.PortfolioItem, error)
	List(ctx context.Context, ownerID string) ([]domain.PortfolioItem, error)
	Update(ctx context.Context, id uuid.UUID, ownerID string, patch domain.PortfolioItemPatch) (domain.PortfolioItem, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID string) error
}

type Handler struct {
	service PortfolioService
}

func NewPortfolioHandler(service PortfolioService) *Handler {
	return &Handler{service: service}
}

// ownerID scopes every portfolio operation. The header is optional; without
// it all requests share one owner, matching the single-user frontend.
func ownerID(r *http.Request) string {
	if owner := strings.TrimSpace(r.Header.Get("X-User-ID")); owner != "" {
		return owner
	}
	return defaultOwnerID
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

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
