package usecase_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/internal/invoice/repository"
	"invoice-escrow/internal/invoice/usecase"
	"invoice-escrow/internal/model"
)

// TestInvoiceLifecycle walks a draft from the first prompt to a completed
// on-chain invoice.
func TestInvoiceLifecycle(t *testing.T) {
	date, eod := futureDate(t)
	prompt := fmt.Sprintf("Build a website for 500 FTN by %s", date)
	llm := newExtractionLLM(t, fmt.Sprintf(`{"title":"Build a website","amount":500,"deadline":"%s"}`, date), http.StatusOK)

	ledger := newMockLedger()
	ledger.createResult = repository.CreatedInvoice{ID: 0, DeadlineUnix: eod}

	uc := usecase.New(&mockLogger{}, llm, ledger, nil, newDeadlineParser(t))
	ctx := context.Background()

	started, err := uc.StartDraft(ctx)
	if err != nil {
		t.Fatalf("StartDraft failed: %v", err)
	}

	if _, err := uc.SubmitMessage(ctx, started.SessionID, invoice.MessageInput{Text: prompt}); err != nil {
		t.Fatalf("SubmitMessage failed: %v", err)
	}

	// Change of heart: go back, then re-extract.
	if _, err := uc.Edit(ctx, started.SessionID); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if _, err := uc.SubmitMessage(ctx, started.SessionID, invoice.MessageInput{Text: prompt}); err != nil {
		t.Fatalf("second SubmitMessage failed: %v", err)
	}
	if _, err := uc.Confirm(ctx, started.SessionID); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	submitted, err := uc.Submit(ctx, started.SessionID, invoice.SubmitInput{StakeAmount: "50"})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	inv := submitted.Invoice
	if inv.Amount != 500 || inv.StakeAmount != 50 {
		t.Errorf("amount/stake = %g/%g, want 500/50", inv.Amount, inv.StakeAmount)
	}
	if inv.Status != model.StatusStaked {
		t.Errorf("status = %q, want staked", inv.Status)
	}
	if inv.Deadline != date {
		t.Errorf("deadline = %q, want %q", inv.Deadline, date)
	}

	// A finished session accepts no further input.
	if _, err := uc.SubmitMessage(ctx, started.SessionID, invoice.MessageInput{Text: "more"}); err == nil {
		t.Error("submitted session should reject further messages")
	}

	// Mirror the commit into the ledger fake, then run the buyer-side flow.
	ledger.nextID = 1
	ledger.invoices[0] = inv
	ledger.chainTime = eod - 3600

	accepted, err := uc.Accept(ctx, 0)
	if err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if accepted.Invoice.Status != model.StatusInProgress {
		t.Errorf("status after accept = %q, want in-progress", accepted.Invoice.Status)
	}
	ledger.invoices[0] = accepted.Invoice

	completed, err := uc.Complete(ctx, 0)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completed.Invoice.Status != model.StatusCompleted {
		t.Errorf("status after complete = %q, want completed", completed.Invoice.Status)
	}

	list, err := uc.List(ctx, invoice.ListInput{Refresh: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list.Invoices) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(list.Invoices))
	}
}
