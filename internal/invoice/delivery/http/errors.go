package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/pkg/response"
)

// respondError translates domain/use-case errors into the envelope the
// client expects. Unknown errors are treated as ledger/adapter failures and
// surfaced with their message so the conversation can explain the revert.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, invoice.ErrSessionNotFound),
		errors.Is(err, invoice.ErrInvoiceNotFound):
		response.NotFound(c, err)
	case errors.Is(err, invoice.ErrSessionBusy),
		errors.Is(err, invoice.ErrInvoiceBusy):
		response.Conflict(c, err)
	case errors.Is(err, invoice.ErrEmptyPrompt),
		errors.Is(err, invoice.ErrInvalidTransition),
		errors.Is(err, invoice.ErrInvalidStake),
		errors.Is(err, invoice.ErrDeadlinePast),
		errors.Is(err, invoice.ErrNotAcceptable),
		errors.Is(err, invoice.ErrNotCompletable),
		errors.Is(err, invoice.ErrDeadlinePassed):
		response.Error(c, err)
	default:
		response.Error(c, err)
	}
}
