package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/internal/invoice/repository"
	"invoice-escrow/internal/model"
	"invoice-escrow/pkg/deadline"
	"invoice-escrow/pkg/gcalendar"
)

// Submit stakes the given amount and creates the invoice on the ledger.
// On adapter failure the session stays in staking with the stake input
// preserved so the user can retry.
func (uc *implUseCase) Submit(ctx context.Context, sessionID string, input invoice.SubmitInput) (invoice.SubmitOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return invoice.SubmitOutput{}, err
	}

	s.mu.Lock()
	if s.state != model.DraftStaking {
		defer s.mu.Unlock()
		return invoice.SubmitOutput{Session: s.snapshot()}, invoice.ErrInvalidTransition
	}
	if err := s.acquire(); err != nil {
		s.mu.Unlock()
		return invoice.SubmitOutput{}, err
	}

	stake := strings.TrimSpace(input.StakeAmount)
	stakeValue, parseErr := strconv.ParseFloat(stake, 64)
	if parseErr != nil || stakeValue <= 0 {
		s.busy = false
		s.say("Enter a valid stake amount first.")
		defer s.mu.Unlock()
		return invoice.SubmitOutput{Session: s.snapshot()}, invoice.ErrInvalidStake
	}

	// Fast-fail before spending anything; the contract enforces this too.
	dl := deadline.Deadline{Date: s.draft.Deadline, Unix: s.draft.DeadlineUnix}
	if !dl.IsFuture(time.Now()) {
		s.busy = false
		s.say("That deadline is already in the past. Please choose a future date.")
		defer s.mu.Unlock()
		return invoice.SubmitOutput{Session: s.snapshot()}, invoice.ErrDeadlinePast
	}

	draft := s.draft
	s.state = model.DraftSubmitting
	s.say("Staking %s %s and creating invoice…", stake, tokenSymbol)
	s.mu.Unlock()

	description := draft.Description
	if description == "" {
		description = draft.Title
	}

	created, subErr := uc.ledger.CreateInvoice(ctx, repository.CreateInvoiceOptions{
		Title:        draft.Title,
		Description:  description,
		Amount:       formatAmount(draft.Amount),
		DeadlineUnix: draft.DeadlineUnix,
		Stake:        stake,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if subErr != nil {
		uc.l.Errorf(ctx, "draft %s: submission failed: %v", s.id, subErr)
		s.state = model.DraftStaking
		s.say("Transaction failed: %v", subErr)
		return invoice.SubmitOutput{Session: s.snapshot()}, fmt.Errorf("submit invoice: %w", subErr)
	}

	// The event-decoded id and deadline are authoritative, guarding against
	// clock or rounding skew between client and ledger.
	committed := model.Invoice{
		ID:           created.ID,
		Title:        draft.Title,
		Description:  description,
		Amount:       draft.Amount,
		StakeAmount:  stakeValue,
		Deadline:     time.Unix(created.DeadlineUnix, 0).UTC().Format(deadline.DateFormat),
		DeadlineUnix: created.DeadlineUnix,
		Status:       model.StatusStaked,
	}

	s.state = model.DraftSubmitted
	s.say("✅ Invoice created on-chain! (id %d)", created.ID)

	uc.prependInvoice(committed)
	uc.tryCreateCalendarEvent(ctx, committed)

	uc.l.Infof(ctx, "draft %s: invoice %d committed, deadline %s", s.id, committed.ID, committed.Deadline)

	return invoice.SubmitOutput{
		Session: s.snapshot(),
		Invoice: committed,
	}, nil
}

// formatAmount renders a display float back into a decimal string for exact
// base-unit conversion downstream.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// tryCreateCalendarEvent creates a deadline reminder event, when a calendar
// client is configured. Failure is logged and ignored.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, inv model.Invoice) {
	if uc.calendar == nil {
		return
	}

	due := time.Unix(inv.DeadlineUnix, 0).UTC()
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     fmt.Sprintf("Invoice #%d due: %s", inv.ID, inv.Title),
		Description: fmt.Sprintf("%s\nAmount: %g %s, stake: %g %s", inv.Description, inv.Amount, tokenSymbol, inv.StakeAmount, tokenSymbol),
		StartTime:   due.Add(-time.Hour),
		EndTime:     due,
		Timezone:    "UTC",
	})
	if err != nil {
		uc.l.Warnf(ctx, "invoice %d: calendar event creation failed (non-fatal): %v", inv.ID, err)
	}
}
