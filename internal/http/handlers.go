package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"timelog/internal/core"
)

type entryRequest struct {
	Text string `json:"text"`
	TS   string `json:"tsISO"`
}

type categoryRequest struct {
	Ticket      string `json:"ticket"`
	Description string `json:"description"`
	NonWork     bool   `json:"nonWork"`
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		entries, err := s.tracker.Entries(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "List entries error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load entries")
			return
		}
		if entries == nil {
			entries = []core.Entry{}
		}
		writeJSON(w, http.StatusOK, entries)

	case http.MethodPost:
		var req entryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		ts, err := parseTimestamp(req.TS)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		entry, err := s.tracker.SubmitEntry(r.Context(), req.Text, ts)
		if errors.Is(err, core.ErrBlankText) {
			// Blank capture is a silent no-op
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err != nil {
			slog.ErrorContext(r.Context(), "Submit entry error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save entry")
			return
		}

		s.sheetCache.Purge()
		writeJSON(w, http.StatusCreated, entry)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleEntryByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/entries/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req entryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		ts, err := parseTimestamp(req.TS)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		entry, err := s.tracker.EditEntry(r.Context(), id, req.Text, ts)
		switch {
		case errors.Is(err, core.ErrNotFound):
			writeError(w, http.StatusNotFound, "entry not found")
			return
		case errors.Is(err, core.ErrBlankText):
			writeError(w, http.StatusUnprocessableEntity, "text must not be blank")
			return
		case err != nil:
			slog.ErrorContext(r.Context(), "Edit entry error", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "failed to update entry")
			return
		}

		s.sheetCache.Purge()
		writeJSON(w, http.StatusOK, entry)

	case http.MethodDelete:
		err := s.tracker.DeleteEntry(r.Context(), id)
		switch {
		case errors.Is(err, core.ErrNotFound):
			writeError(w, http.StatusNotFound, "entry not found")
			return
		case err != nil:
			slog.ErrorContext(r.Context(), "Delete entry error", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "failed to delete entry")
			return
		}

		s.sheetCache.Purge()
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cats, err := s.tracker.Categories(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "List categories error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load categories")
			return
		}
		writeJSON(w, http.StatusOK, cats)

	case http.MethodPost:
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		c, err := s.tracker.AddCategory(r.Context(), req.Ticket, req.Description, req.NonWork)
		switch {
		case errors.Is(err, core.ErrEmptyTicket):
			writeError(w, http.StatusUnprocessableEntity, "ticket must not be blank")
			return
		case err != nil:
			slog.ErrorContext(r.Context(), "Add category error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save category")
			return
		}

		s.sheetCache.Purge()
		writeJSON(w, http.StatusCreated, c)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCategoryByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/categories/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		c, err := s.tracker.UpdateCategory(r.Context(), id, req.Ticket, req.Description, req.NonWork)
		switch {
		case errors.Is(err, core.ErrNotFound):
			writeError(w, http.StatusNotFound, "category not found")
			return
		case errors.Is(err, core.ErrEmptyTicket):
			writeError(w, http.StatusUnprocessableEntity, "ticket must not be blank")
			return
		case err != nil:
			slog.ErrorContext(r.Context(), "Update category error", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "failed to update category")
			return
		}

		s.sheetCache.Purge()
		writeJSON(w, http.StatusOK, c)

	case http.MethodDelete:
		removed, err := s.tracker.DeleteCategories(r.Context(), []string{id})
		if err != nil {
			slog.ErrorContext(r.Context(), "Delete category error", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "failed to delete category")
			return
		}
		if removed == 0 {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}

		s.sheetCache.Purge()
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleBulkDeleteCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	removed, err := s.tracker.DeleteCategories(r.Context(), req.IDs)
	if err != nil {
		slog.ErrorContext(r.Context(), "Bulk delete categories error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete categories")
		return
	}

	if removed > 0 {
		s.sheetCache.Purge()
	}
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query().Get("q")
	limit := parseLimit(r.URL.Query().Get("limit"))

	cats, err := s.tracker.Suggest(r.Context(), q, limit)
	if err != nil {
		slog.ErrorContext(r.Context(), "Suggest error", "error", err, "query", q)
		writeError(w, http.StatusInternalServerError, "failed to compute suggestions")
		return
	}
	if cats == nil {
		cats = []core.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

func (s *Server) handleTimesheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	unit, err := parseRangeUnit(r.URL.Query().Get("range"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	filter, err := parseTotalsFilter(r.URL.Query().Get("view"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	ref, err := parseDateParam(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	key := string(unit) + "|" + string(filter) + "|" + ref.Format("2006-01-02")
	if sheet, found := s.sheetCache.Get(key); found {
		slog.DebugContext(r.Context(), "Timesheet cache hit", "key", key)
		writeJSON(w, http.StatusOK, sheet)
		return
	}

	sheet, err := s.tracker.Timesheet(r.Context(), ref, unit, filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "Timesheet error", "error", err,
			"range", unit, "view", filter)
		writeError(w, http.StatusInternalServerError, "failed to build timesheet")
		return
	}

	s.sheetCache.Set(key, sheet)
	writeJSON(w, http.StatusOK, sheet)
}
