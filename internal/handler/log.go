package handler

import (
	"net/http"
	"strconv"

	"github.com/pkordes/community-garden/backend/internal/domain"
)

// LogPage is the body of GET /appointments/log.
type LogPage struct {
	Data       []domain.LogEntry `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

// GetAppointmentLog handles GET /appointments/log.
// It returns the blocks of the appointment log, oldest first, including those
// written by earlier runs. Supports ?page= and ?limit= (defaults: page=1,
// limit=50, max=500).
func (s *Server) GetAppointmentLog(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page")
	if !ok {
		writeJSON(w, http.StatusBadRequest, requestBody("page must be an integer"))
		return
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		writeJSON(w, http.StatusBadRequest, requestBody("limit must be an integer"))
		return
	}
	params := domain.NewPageParams(page, limit)

	entries, err := s.registrations.LogEntries(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if entries == nil {
		entries = []domain.LogEntry{}
	}
	start, end := params.Bounds(len(entries))
	writeJSON(w, http.StatusOK, LogPage{
		Data: entries[start:end],
		Pagination: domain.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(entries),
		},
	})
}

// queryInt reads an optional integer query parameter.
// ok is false only when the parameter is present but not an integer.
func queryInt(r *http.Request, name string) (v *int, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}
