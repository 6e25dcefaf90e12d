package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkordes/community-garden/backend/internal/domain"
)

// CreateDonationRequest is the body of POST /donations.
// Amount may be sent as a JSON number or a string; it is parsed with the
// same rules the console uses.
type CreateDonationRequest struct {
	Kind        string          `json:"kind"`
	Amount      json.RawMessage `json:"amount,omitempty"`
	Description string          `json:"description,omitempty"`
}

// DonationResponse acknowledges a recorded donation.
type DonationResponse struct {
	Kind    domain.DonationKind `json:"kind"`
	Amount  *float64            `json:"amount,omitempty"`
	Item    string              `json:"item,omitempty"`
	Message string              `json:"message"`
}

// CreateDonation handles POST /donations.
// Donations are acknowledged only; nothing is persisted.
func (s *Server) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var body CreateDonationRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	d, err := donationFromRequest(body)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	msg, err := s.donations.RecordDonation(r.Context(), d)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := DonationResponse{Kind: d.Kind, Item: d.Item, Message: msg}
	if d.Kind == domain.KindMoney {
		amount := d.Amount
		resp.Amount = &amount
	}
	writeJSON(w, http.StatusCreated, resp)
}

// donationFromRequest validates the request and builds the domain value.
// Unlike the console, an unknown kind is rejected rather than treated as an item.
func donationFromRequest(body CreateDonationRequest) (domain.Donation, error) {
	kind, ok := domain.ParseDonationKind(body.Kind)
	if !ok {
		return domain.Donation{}, fmt.Errorf("%w: kind must be %q or %q", domain.ErrValidation, domain.KindMoney, domain.KindItem)
	}

	if kind == domain.KindItem {
		return domain.NewItemDonation(body.Description)
	}

	amount, err := domain.ParseAmount(rawAmount(body.Amount))
	if err != nil {
		return domain.Donation{}, err
	}
	return domain.NewMoneyDonation(amount)
}

// rawAmount returns the amount text whether it was sent quoted or bare.
func rawAmount(raw json.RawMessage) string {
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	if text == "null" {
		return ""
	}
	return text
}
