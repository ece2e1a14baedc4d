package invoice

import "errors"

// Domain-specific errors for the invoice package.
var (
	ErrEmptyPrompt      = errors.New("`prompt` is required")
	ErrExtractionFailed = errors.New("AI did not return invoice data")

	ErrSessionNotFound   = errors.New("draft session not found")
	ErrSessionBusy       = errors.New("another operation is in progress for this draft")
	ErrInvalidTransition = errors.New("operation not allowed in current draft state")

	ErrInvalidStake = errors.New("stake amount must be a positive number")
	ErrDeadlinePast = errors.New("deadline is already in the past")

	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvoiceBusy     = errors.New("another transaction is pending for this invoice")
	ErrNotAcceptable   = errors.New("invoice is not open for acceptance")
	ErrNotCompletable  = errors.New("invoice is not in progress")
	ErrDeadlinePassed  = errors.New("cannot accept: deadline has passed on-chain")
)
