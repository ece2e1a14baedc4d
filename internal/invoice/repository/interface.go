package repository

import (
	"context"
	"errors"

	"invoice-escrow/internal/model"
)

// ErrEventNotFound is returned when a confirmed creation transaction does not
// carry the expected InvoiceCreated event. Funds may have moved; the caller
// must report this inconsistency rather than ignore it.
var ErrEventNotFound = errors.New("InvoiceCreated event not found in confirmed transaction")

// CreateInvoiceOptions are the parameters for the invoice-creation
// transaction. Amount and Stake are decimal strings in native chain units;
// conversion to the ledger's base unit happens inside the repository.
type CreateInvoiceOptions struct {
	Title        string
	Description  string
	Amount       string
	DeadlineUnix int64
	Stake        string
}

// CreatedInvoice carries the ledger-assigned values decoded from the
// InvoiceCreated confirmation event. These are authoritative over any
// locally computed equivalents.
type CreatedInvoice struct {
	ID           uint64
	DeadlineUnix int64
}

// LedgerRepository is the read/write surface of the external escrow contract.
type LedgerRepository interface {
	// NextID reads the total count of issued invoice identifiers.
	NextID(ctx context.Context) (uint64, error)

	// GetInvoice reads one record by identifier. The second return value is
	// false for empty/unissued slots (sentinel zero supplier).
	GetInvoice(ctx context.Context, id uint64) (model.Invoice, bool, error)

	// CreateInvoice issues the creation transaction with the stake as value
	// and blocks until it is confirmed, returning the event-decoded result.
	CreateInvoice(ctx context.Context, opt CreateInvoiceOptions) (CreatedInvoice, error)

	// AcceptInvoice issues the acceptance transaction, attaching value equal
	// to stake+amount taken from the on-chain record, and blocks until
	// confirmed.
	AcceptInvoice(ctx context.Context, id uint64) error

	// MarkCompleted issues the completion transaction (no value) and blocks
	// until confirmed.
	MarkCompleted(ctx context.Context, id uint64) error

	// ChainTime reads the latest block timestamp. Deadline comparisons that
	// gate transactions use this, never the device clock.
	ChainTime(ctx context.Context) (int64, error)
}
