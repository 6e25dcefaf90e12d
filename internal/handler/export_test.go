package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/community-garden/backend/internal/domain"
	"github.com/pkordes/community-garden/backend/internal/handler"
)

func exportServicer(regs ...domain.Registration) *mockRegistrationServicer {
	return &mockRegistrationServicer{
		registrations: func(_ context.Context) []domain.Registration {
			return append([]domain.Registration{}, regs...)
		},
	}
}

func TestExportRegistrations_defaultJSON(t *testing.T) {
	reg := registrationFixture()

	rec := serve(newHTTPHandler(exportServicer(reg), nil, nil), http.MethodGet, "/registrations/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rows []handler.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, handler.ExportRow{
		ID:        reg.ID.String(),
		Name:      "Alice",
		Phone:     "555-1000",
		Email:     "a@x.com",
		Date:      "2024-06-10",
		Time:      "09:00",
		Logged:    true,
		CreatedAt: "2024-06-01T12:00:00Z",
	}, rows[0])
}

func TestExportRegistrations_emptyJSONIsArray(t *testing.T) {
	rec := serve(newHTTPHandler(exportServicer(), nil, nil), http.MethodGet, "/registrations/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestExportRegistrations_csv(t *testing.T) {
	reg := registrationFixture()
	reg.Visitor.Name = "Smith, Alice"
	reg.Logged = false

	rec := serve(newHTTPHandler(exportServicer(reg), nil, nil), http.MethodGet, "/registrations/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "registrations.csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "name", "phone", "email", "date", "time", "logged", "created_at"}, records[0])
	assert.Equal(t, []string{
		reg.ID.String(), "Smith, Alice", "555-1000", "a@x.com",
		"2024-06-10", "09:00", "false", "2024-06-01T12:00:00Z",
	}, records[1])
}

func TestExportRegistrations_unknownFormatReturns400(t *testing.T) {
	rec := serve(newHTTPHandler(exportServicer(), nil, nil), http.MethodGet, "/registrations/export?format=xml", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Code)
}
