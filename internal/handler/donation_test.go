package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/community-garden/backend/internal/domain"
	"github.com/pkordes/community-garden/backend/internal/handler"
	"github.com/pkordes/community-garden/backend/internal/service"
)

// realDonations records what it was handed and delegates to the real service
// so the acknowledgement text is the production one.
type realDonations struct {
	got []domain.Donation
}

func (r *realDonations) RecordDonation(ctx context.Context, d domain.Donation) (string, error) {
	r.got = append(r.got, d)
	return service.NewDonationService(nil, nil).RecordDonation(ctx, d)
}

func postDonation(t *testing.T, rec *realDonations, body string) (int, handler.DonationResponse, handler.ErrorDetail) {
	t.Helper()
	resp := serve(newHTTPHandler(&mockRegistrationServicer{}, rec, nil), http.MethodPost, "/donations", strings.NewReader(body))
	if resp.Code != http.StatusCreated {
		return resp.Code, handler.DonationResponse{}, decodeError(t, resp)
	}
	var out handler.DonationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.Code, out, handler.ErrorDetail{}
}

func TestCreateDonation_moneyAsString(t *testing.T) {
	rec := &realDonations{}

	code, body, _ := postDonation(t, rec, `{"kind":"money","amount":"25.50"}`)

	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, domain.KindMoney, body.Kind)
	require.NotNil(t, body.Amount)
	assert.InDelta(t, 25.50, *body.Amount, 1e-9)
	assert.Equal(t, "Monetary donation of $25.50 received.", body.Message)
	require.Len(t, rec.got, 1)
}

func TestCreateDonation_moneyAsNumber(t *testing.T) {
	code, body, _ := postDonation(t, &realDonations{}, `{"kind":"Money","amount":10}`)

	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Monetary donation of $10.00 received.", body.Message)
}

func TestCreateDonation_item(t *testing.T) {
	code, body, _ := postDonation(t, &realDonations{}, `{"kind":"item","description":"a spade"}`)

	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, domain.KindItem, body.Kind)
	assert.Nil(t, body.Amount)
	assert.Equal(t, "a spade", body.Item)
	assert.Equal(t, "Donation received: a spade", body.Message)
}

func TestCreateDonation_invalidInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMsg  string
	}{
		{"non-numeric amount", `{"kind":"money","amount":"lots"}`, "invalid_amount", `"lots" is not a number`},
		{"negative amount", `{"kind":"money","amount":-5}`, "invalid_amount", "positive"},
		{"missing amount", `{"kind":"money"}`, "invalid_amount", "required"},
		{"null amount", `{"kind":"money","amount":null}`, "invalid_amount", "required"},
		{"blank item", `{"kind":"item","description":"   "}`, "validation_error", "item description is required"},
		{"unknown kind", `{"kind":"tools","description":"rake"}`, "validation_error", "kind must be"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &realDonations{}

			code, _, detail := postDonation(t, rec, tc.body)

			assert.Equal(t, http.StatusUnprocessableEntity, code)
			assert.Equal(t, tc.wantCode, detail.Code)
			assert.Contains(t, detail.Message, tc.wantMsg)
			assert.Empty(t, rec.got, "nothing reaches the service on invalid input")
		})
	}
}

func TestCreateDonation_malformedBodyReturns400(t *testing.T) {
	code, _, detail := postDonation(t, &realDonations{}, `{"kind":`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "bad_request", detail.Code)
}
