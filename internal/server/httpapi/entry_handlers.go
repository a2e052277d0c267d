package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *handler) listEntries(w http.ResponseWriter, r *http.Request) {
	list, err := h.entries.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.internalError(w, "list entries", err)
		return
	}

	out := make([]entryDTO, 0, len(list))
	for _, e := range list {
		out = append(out, toEntryDTO(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) createEntry(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeEntry(w, r)
	if !ok {
		return
	}

	e, err := h.entries.Create(r.Context(), userIDFrom(r.Context()), req.toModel())
	if err != nil {
		h.internalError(w, "create entry", err)
		return
	}

	if h.metrics != nil {
		h.metrics.EntriesCreated.Inc()
	}
	writeJSON(w, http.StatusCreated, toEntryDTO(e))
}

func (h *handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeEntry(w, r)
	if !ok {
		return
	}

	e, err := h.entries.Update(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		h.internalError(w, "update entry", err)
		return
	}

	if h.metrics != nil {
		h.metrics.EntriesUpdated.Inc()
	}
	writeJSON(w, http.StatusOK, toEntryDTO(e))
}

func (h *handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	err := h.entries.Delete(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		h.internalError(w, "delete entry", err)
		return
	}

	if h.metrics != nil {
		h.metrics.EntriesDeleted.Inc()
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true})
}

func (h *handler) decodeEntry(w http.ResponseWriter, r *http.Request) (entryRequest, bool) {
	var req entryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return req, false
	}
	return req, true
}

func (h *handler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op+" failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Server error")
}
