package usecase

import (
	"context"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/internal/model"
)

// List returns the invoice collection projection. The ledger is re-read on
// the first load or when refresh is requested; otherwise the cached
// projection is served, flagged stale if any optimistic update happened
// since the last full read.
func (uc *implUseCase) List(ctx context.Context, input invoice.ListInput) (invoice.ListOutput, error) {
	uc.cacheMu.Lock()
	if uc.cacheLoaded && !input.Refresh {
		out := invoice.ListOutput{
			Invoices: copyInvoices(uc.cached),
			Stale:    uc.cacheStale,
		}
		uc.cacheMu.Unlock()
		return out, nil
	}
	uc.cacheMu.Unlock()

	items, err := uc.readAll(ctx)
	if err != nil {
		// Degrade to an empty list rather than blocking the page.
		uc.l.Errorf(ctx, "list: failed to read invoices from ledger: %v", err)
		return invoice.ListOutput{Invoices: []model.Invoice{}}, nil
	}

	uc.cacheMu.Lock()
	uc.cached = items
	uc.cacheLoaded = true
	uc.cacheStale = false
	out := invoice.ListOutput{Invoices: copyInvoices(uc.cached)}
	uc.cacheMu.Unlock()

	return out, nil
}

// readAll reads the full on-chain invoice set by sequential identifier,
// skipping empty/unissued slots.
func (uc *implUseCase) readAll(ctx context.Context) ([]model.Invoice, error) {
	nextID, err := uc.ledger.NextID(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.Invoice, 0, nextID)
	for id := uint64(0); id < nextID; id++ {
		inv, issued, err := uc.ledger.GetInvoice(ctx, id)
		if err != nil {
			return nil, err
		}
		if !issued {
			continue
		}
		items = append(items, inv)
	}

	uc.l.Infof(ctx, "list: loaded %d invoices (nextId=%d)", len(items), nextID)
	return items, nil
}

// prependInvoice inserts a freshly committed invoice at the head of the
// projection and marks it stale until the next full refresh.
func (uc *implUseCase) prependInvoice(inv model.Invoice) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()

	uc.cached = append([]model.Invoice{inv}, uc.cached...)
	uc.cacheLoaded = true
	uc.cacheStale = true
}

// advanceStatus optimistically updates one cached row after a confirmed
// action and marks the projection stale.
func (uc *implUseCase) advanceStatus(id uint64, status model.InvoiceStatus) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()

	for i := range uc.cached {
		if uc.cached[i].ID == id {
			uc.cached[i].Status = status
			break
		}
	}
	uc.cacheStale = true
}

func copyInvoices(src []model.Invoice) []model.Invoice {
	dst := make([]model.Invoice, len(src))
	copy(dst, src)
	return dst
}
