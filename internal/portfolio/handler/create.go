package handler

import (
	"encoding/json"
	"net/http"

	"goldrates/internal/portfolio"

	"github.com/sirupsen/logrus"
)

// Create godoc
// @Summary Add a portfolio position
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param item body portfolio.CreateInput true "New position"
// @Success 201 {object} domain.PortfolioItem
// @Failure 400 {object} errorResponse
// @Router /api/portfolio [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4096)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var in portfolio.CreateInput
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := portfolio.ValidateCreate(in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	owner := ownerID(r)
	item, err := h.service.Create(r.Context(), owner, in)
	if err != nil {
		msg := "failed to create portfolio item"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Create", "owner": owner}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}
