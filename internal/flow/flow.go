// Package flow drives one registration attempt end to end: collect the form,
// validate and commit it, offer a donation, then print the cumulative
// roster. The presentation is abstracted behind Prompter so the same flow
// runs against a terminal or a scripted test double.
package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkordes/community-garden/backend/internal/domain"
	"github.com/pkordes/community-garden/backend/internal/service"
)

// User-facing texts.
const (
	QuestionName   = "Name:"
	QuestionPhone  = "Phone:"
	QuestionEmail  = "Email:"
	QuestionDate   = "Appointment Date (YYYY-MM-DD):"
	QuestionTime   = "Appointment Time (HH:mm, 24hr format):"
	QuestionDonate = "Would you like to donate? (yes/no)"
	QuestionKind   = "Enter donation type (money/item):"
	QuestionAmount = "Enter donation amount:"
	QuestionItem   = "Enter item donation:"

	NoticeSuccess       = "Registration Successful!"
	NoticeRejected      = "Invalid appointment time. Check operational hours."
	NoticeLogFailed     = "Registration failed: the appointment could not be recorded. Please try again."
	NoticeInvalidAmount = "Invalid amount. Please enter a positive number, e.g. 25.50."
	NoticeDonationSkip  = "Donation skipped."
)

// maxAmountAttempts bounds the re-prompts for a donation amount.
const maxAmountAttempts = 3

// Prompter is the presentation layer: it asks for one value at a time and
// shows notices.
type Prompter interface {
	// Ask shows question and returns the answer exactly as entered.
	// io.EOF means the user closed the input.
	Ask(ctx context.Context, question string) (string, error)

	// Notify shows a one-line notice (success, rejection, error).
	Notify(ctx context.Context, message string) error
}

// Registrar is the part of service.RegistrationService the flow uses.
type Registrar interface {
	Register(ctx context.Context, form domain.Form) (domain.Registration, error)
	Roster(ctx context.Context) domain.Roster
}

// DonationRecorder is the part of service.DonationService the flow uses.
type DonationRecorder interface {
	RecordDonation(ctx context.Context, d domain.Donation) (string, error)
}

// State is the terminal state reached by one Run.
type State int

const (
	// StateRejected: the slot failed validation; nothing was recorded.
	StateRejected State = iota + 1
	// StateFailed: the strict commit policy refused the registration because
	// the log write failed; nothing was recorded.
	StateFailed
	// StateReported: the registration was committed and the roster printed.
	StateReported
)

func (s State) String() string {
	switch s {
	case StateRejected:
		return "rejected"
	case StateFailed:
		return "failed"
	case StateReported:
		return "reported"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome summarizes one Run.
type Outcome struct {
	State        State
	Registration domain.Registration
	// Donation is nil when the visitor declined or the donation step was
	// skipped after repeated invalid input.
	Donation *domain.Donation
}

// Flow is the registration orchestrator. It holds no registration state of
// its own; the Registrar owns the lists.
type Flow struct {
	registrar Registrar
	donations DonationRecorder
	prompt    Prompter
	console   io.Writer
	logger    *slog.Logger
}

// New constructs a Flow. console receives donation acknowledgements and the
// roster listing; a nil logger falls back to slog.Default().
func New(r Registrar, d DonationRecorder, p Prompter, console io.Writer, logger *slog.Logger) *Flow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{registrar: r, donations: d, prompt: p, console: console, logger: logger}
}

// Run performs one registration attempt.
// An io.EOF from the Prompter while collecting the form is returned as is,
// so callers can end a session cleanly.
func (f *Flow) Run(ctx context.Context) (Outcome, error) {
	form, err := f.collect(ctx)
	if err != nil {
		return Outcome{}, err
	}

	reg, err := f.registrar.Register(ctx, form)
	switch {
	case errors.Is(err, domain.ErrSlotRejected):
		return Outcome{State: StateRejected}, f.prompt.Notify(ctx, NoticeRejected)
	case errors.Is(err, domain.ErrLogWrite):
		return Outcome{State: StateFailed}, f.prompt.Notify(ctx, NoticeLogFailed)
	case err != nil:
		return Outcome{}, fmt.Errorf("flow.Run: %w", err)
	}

	if err := f.prompt.Notify(ctx, NoticeSuccess); err != nil {
		return Outcome{}, fmt.Errorf("flow.Run: %w", err)
	}

	out := Outcome{State: StateReported, Registration: reg}

	donation, err := f.donate(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		return Outcome{}, fmt.Errorf("flow.Run: donation: %w", err)
	}
	out.Donation = donation

	if err := service.WriteReport(f.console, f.registrar.Roster(ctx)); err != nil {
		return Outcome{}, fmt.Errorf("flow.Run: report: %w", err)
	}
	return out, nil
}

// collect asks for the five form fields. Answers are kept verbatim.
func (f *Flow) collect(ctx context.Context) (domain.Form, error) {
	var form domain.Form
	fields := []struct {
		question string
		dst      *string
	}{
		{QuestionName, &form.Name},
		{QuestionPhone, &form.Phone},
		{QuestionEmail, &form.Email},
		{QuestionDate, &form.Date},
		{QuestionTime, &form.Time},
	}
	for _, fld := range fields {
		answer, err := f.prompt.Ask(ctx, fld.question)
		if err != nil {
			return domain.Form{}, err
		}
		*fld.dst = answer
	}
	return form, nil
}

// donate runs the optional donation branch. It returns a nil donation when
// the visitor declines or gives up.
func (f *Flow) donate(ctx context.Context) (*domain.Donation, error) {
	choice, err := f.prompt.Ask(ctx, QuestionDonate)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(choice), "yes") {
		return nil, nil
	}

	kindRaw, err := f.prompt.Ask(ctx, QuestionKind)
	if err != nil {
		return nil, err
	}

	var d domain.Donation
	// Anything other than "money" is treated as an item donation.
	if kind, _ := domain.ParseDonationKind(kindRaw); kind == domain.KindMoney {
		d, err = f.askMoney(ctx)
	} else {
		d, err = f.askItem(ctx)
	}
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, f.prompt.Notify(ctx, NoticeDonationSkip)
		}
		return nil, err
	}

	msg, err := f.donations.RecordDonation(ctx, d)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(f.console, msg); err != nil {
		return nil, err
	}
	return &d, nil
}

// askMoney re-prompts for the amount until it parses or the attempts run out.
func (f *Flow) askMoney(ctx context.Context) (domain.Donation, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAmountAttempts; attempt++ {
		raw, err := f.prompt.Ask(ctx, QuestionAmount)
		if err != nil {
			return domain.Donation{}, err
		}
		amount, err := domain.ParseAmount(raw)
		if err == nil {
			return domain.NewMoneyDonation(amount)
		}
		lastErr = err
		f.logger.InfoContext(ctx, "invalid donation amount", "attempt", attempt, "input", raw)
		if err := f.prompt.Notify(ctx, NoticeInvalidAmount); err != nil {
			return domain.Donation{}, err
		}
	}
	return domain.Donation{}, lastErr
}

func (f *Flow) askItem(ctx context.Context) (domain.Donation, error) {
	raw, err := f.prompt.Ask(ctx, QuestionItem)
	if err != nil {
		return domain.Donation{}, err
	}
	return domain.NewItemDonation(raw)
}
