package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/schoolware/timetab/safeio"
	"github.com/schoolware/timetab/store"
)

func (s *Server) handleListExtractions(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	list, err := s.store.ListRecent(r.Context(), limit)
	if err != nil {
		s.logger.Error("list extractions", "error", err)
		writeError(w, http.StatusInternalServerError, "history unavailable", err)
		return
	}
	if list == nil {
		list = []*store.Extraction{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"extractions": list,
	})
}

func (s *Server) handleGetExtraction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := safeio.ValidateIdentifier(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	e, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.logger.Error("get extraction", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "history unavailable", err)
		return
	}
	if e == nil {
		writeError(w, http.StatusNotFound, "not found", fmt.Errorf("no extraction with id %s", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"extraction": e,
	})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
