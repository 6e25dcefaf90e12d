package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/community-garden/backend/openapi"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// DayHours is one row of GET /hours.
type DayHours struct {
	Day   string `json:"day"`
	Open  bool   `json:"open"`
	Hours string `json:"hours"`
}

// GetHours handles GET /hours: the operating-hours table, Sunday first.
func (s *Server) GetHours(w http.ResponseWriter, _ *http.Request) {
	table := s.registrations.Hours()
	out := make([]DayHours, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		out = append(out, DayHours{Day: d.String(), Open: table[d] != nil, Hours: table.Describe(d)})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(openapi.Document)
}
