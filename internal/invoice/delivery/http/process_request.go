package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"invoice-escrow/internal/invoice"
)

// processExtractReq binds the extraction request body. An unreadable body
// is treated the same as a missing prompt, matching the endpoint contract.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, invoice.ErrEmptyPrompt
	}
	return req, req.validate()
}

// processMessageReq binds the draft message request body.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, invoice.ErrEmptyPrompt
	}
	return req, req.validate()
}

// processSubmitReq binds the draft submission request body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, invoice.ErrInvalidStake
	}
	return req, req.validate()
}

// processInvoiceID parses the numeric invoice id from the URI.
func (h *handler) processInvoiceID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, invoice.ErrInvoiceNotFound
	}
	return id, nil
}
