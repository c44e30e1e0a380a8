package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)

	items, err := h.service.List(r.Context(), owner)
	if err != nil {
		msg := "failed to list portfolio items"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "List", "owner": owner}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, items)
}
