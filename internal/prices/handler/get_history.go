package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"goldrates/internal/domain"
	"goldrates/internal/prices"

	"github.com/sirupsen/logrus"
)

type GetHistoryResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("category"))

	category, err := prices.ParseCategory(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
	}

	entries, err := h.service.History(r.Context(), category, limit)
	if err != nil {
		msg := "ups, couldn't read price history this time"
		logrus.WithError(err).WithField("handler", "GetHistory").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(GetHistoryResponse{Entries: entries})
}
