package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/bobmcallan/stb/internal/storage"
)

const maxStateBody = 8 << 20 // 8MB

type stateResponse struct {
	Slice   string `json:"slice"`
	Version uint64 `json:"version"`
}

// handleStateSlice handles PUT /api/state/{slice}: the body replaces the
// slice in the store wholesale and is persisted for the next start.
func (s *Server) handleStateSlice(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}
	slice := PathParam(r, "/api/state/", "")
	if slice == "" {
		WriteError(w, http.StatusBadRequest, "slice is required in path")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxStateBody))
	if err != nil {
		WriteError(w, http.StatusRequestEntityTooLarge, "Failed to read body: "+err.Error())
		return
	}

	value, err := storage.Apply(slice, body, s.app.Store)
	if err != nil {
		if errors.Is(err, storage.ErrUnknownSlice) {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.app.Storage.Save(r.Context(), slice, value); err != nil {
		s.logger.Error().Err(err).Str("slice", slice).Msg("Failed to persist state slice")
		WriteError(w, http.StatusInternalServerError, "State applied but not persisted: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, stateResponse{Slice: slice, Version: s.app.Store.Version()})
}
