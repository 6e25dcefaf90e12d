package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DonationKind tags which variant a Donation holds.
type DonationKind string

const (
	KindMoney DonationKind = "money"
	KindItem  DonationKind = "item"
)

// Donation is a closed two-case variant: Money carries Amount, Item carries
// Item. Build one with NewMoneyDonation or NewItemDonation so the invariants
// (positive amount, non-empty description) always hold.
// Donations are never persisted.
type Donation struct {
	Kind   DonationKind
	Amount float64
	Item   string
}

// NewMoneyDonation returns a Money donation.
// Returns ErrInvalidAmount if amount is not a positive finite number.
func NewMoneyDonation(amount float64) (Donation, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Donation{}, fmt.Errorf("%w: amount must be a positive number", ErrInvalidAmount)
	}
	return Donation{Kind: KindMoney, Amount: amount}, nil
}

// NewItemDonation returns an Item donation.
// The description is kept as given but must not be blank.
func NewItemDonation(description string) (Donation, error) {
	if strings.TrimSpace(description) == "" {
		return Donation{}, fmt.Errorf("%w: item description is required", ErrValidation)
	}
	return Donation{Kind: KindItem, Item: description}, nil
}

// ParseAmount parses the raw text of a donation amount.
// Surrounding whitespace is ignored; anything else that is not a positive
// decimal number yields ErrInvalidAmount.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be a positive number", ErrInvalidAmount)
	}
	return amount, nil
}

// ParseDonationKind maps a free-text choice onto a DonationKind.
// Matching is case-insensitive; ok is false for anything other than
// "money" or "item".
func ParseDonationKind(raw string) (kind DonationKind, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(KindMoney):
		return KindMoney, true
	case string(KindItem):
		return KindItem, true
	}
	return "", false
}
