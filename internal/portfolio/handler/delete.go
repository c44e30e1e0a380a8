package handler

import (
	"errors"
	"net/http"

	"goldrates/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type deleteResponse struct {
	Message string `json:"message"`
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid portfolio item id")
		return
	}

	owner := ownerID(r)
	if err = h.service.Delete(r.Context(), id, owner); err != nil {
		if errors.Is(err, domain.ErrPortfolioItemNotFound) {
			writeError(w, http.StatusNotFound, "portfolio item not found")
			return
		}
		msg := "failed to delete portfolio item"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Delete", "owner": owner, "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Message: "portfolio item deleted"})
}
