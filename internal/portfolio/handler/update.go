package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"goldrates/internal/domain"
	"goldrates/internal/portfolio"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid portfolio item id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var patch domain.PortfolioItemPatch
	if err = dec.Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err = portfolio.ValidatePatch(patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	owner := ownerID(r)
	item, err := h.service.Update(r.Context(), id, owner, patch)
	if err != nil {
		if errors.Is(err, domain.ErrPortfolioItemNotFound) {
			writeError(w, http.StatusNotFound, "portfolio item not found")
			return
		}
		msg := "failed to update portfolio item"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Update", "owner": owner, "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, item)
}
