package usecase

import (
	"context"
	"fmt"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/internal/model"
)

// Accept submits the acceptance transaction for a staked invoice. The
// deadline gate uses ledger-reported chain time, never the device clock.
func (uc *implUseCase) Accept(ctx context.Context, id uint64) (invoice.ActionOutput, error) {
	if err := uc.acquireInvoice(id); err != nil {
		return invoice.ActionOutput{}, err
	}
	defer uc.releaseInvoice(id)

	inv, issued, err := uc.ledger.GetInvoice(ctx, id)
	if err != nil {
		return invoice.ActionOutput{}, fmt.Errorf("accept invoice %d: %w", id, err)
	}
	if !issued {
		return invoice.ActionOutput{}, invoice.ErrInvoiceNotFound
	}
	if inv.Status != model.StatusStaked {
		return invoice.ActionOutput{}, invoice.ErrNotAcceptable
	}

	chainTime, err := uc.ledger.ChainTime(ctx)
	if err != nil {
		return invoice.ActionOutput{}, fmt.Errorf("accept invoice %d: %w", id, err)
	}
	if chainTime > inv.DeadlineUnix {
		// Certain to revert; do not spend gas on it.
		return invoice.ActionOutput{}, invoice.ErrDeadlinePassed
	}

	if err := uc.ledger.AcceptInvoice(ctx, id); err != nil {
		return invoice.ActionOutput{}, fmt.Errorf("accept invoice %d: %w", id, err)
	}

	inv.Status = model.StatusInProgress
	uc.advanceStatus(id, model.StatusInProgress)
	uc.l.Infof(ctx, "invoice %d accepted", id)

	return invoice.ActionOutput{Invoice: inv}, nil
}

// Complete submits the completion transaction for an in-progress invoice.
func (uc *implUseCase) Complete(ctx context.Context, id uint64) (invoice.ActionOutput, error) {
	if err := uc.acquireInvoice(id); err != nil {
		return invoice.ActionOutput{}, err
	}
	defer uc.releaseInvoice(id)

	inv, issued, err := uc.ledger.GetInvoice(ctx, id)
	if err != nil {
		return invoice.ActionOutput{}, fmt.Errorf("complete invoice %d: %w", id, err)
	}
	if !issued {
		return invoice.ActionOutput{}, invoice.ErrInvoiceNotFound
	}
	if inv.Status != model.StatusInProgress {
		return invoice.ActionOutput{}, invoice.ErrNotCompletable
	}

	if err := uc.ledger.MarkCompleted(ctx, id); err != nil {
		return invoice.ActionOutput{}, fmt.Errorf("complete invoice %d: %w", id, err)
	}

	inv.Status = model.StatusCompleted
	uc.advanceStatus(id, model.StatusCompleted)
	uc.l.Infof(ctx, "invoice %d completed", id)

	return invoice.ActionOutput{Invoice: inv}, nil
}

// acquireInvoice sets the per-row busy flag, rejecting a duplicate
// submission while one is pending.
func (uc *implUseCase) acquireInvoice(id uint64) error {
	uc.busyMu.Lock()
	defer uc.busyMu.Unlock()

	if uc.busy[id] {
		return invoice.ErrInvoiceBusy
	}
	uc.busy[id] = true
	return nil
}

func (uc *implUseCase) releaseInvoice(id uint64) {
	uc.busyMu.Lock()
	defer uc.busyMu.Unlock()
	delete(uc.busy, id)
}
