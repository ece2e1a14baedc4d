package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/pkg/deadline"
	"invoice-escrow/pkg/response"
)

// ExtractInvoice godoc
// @Summary     Extract invoice fields from free text
// @Description Runs the LLM extraction pipeline on a single prompt and returns the structured fields without opening a draft session.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Free-text invoice description"
// @Success     200 {object} extractResp
// @Failure     400 {object} map[string]string "error: missing prompt or unparseable deadline"
// @Failure     500 {object} map[string]string "error: extraction failure detail"
// @Router      /api/v1/extract-invoice [POST]
func (h *handler) ExtractInvoice(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		if errors.Is(err, invoice.ErrEmptyPrompt) || errors.Is(err, deadline.ErrUnparseable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newExtractResp(output))
}

// StartDraft godoc
// @Summary     Start a new invoice draft
// @Description Opens a conversational draft session in the collecting state.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp{data=draftResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/drafts [POST]
func (h *handler) StartDraft(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.StartDraft(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartDraft: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDraftResp(output))
}

// GetDraft godoc
// @Summary     Get a draft session
// @Description Returns the current state, fields and conversation of a draft.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp{data=draftResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/drafts/{id} [GET]
func (h *handler) GetDraft(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetDraft(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newDraftResp(output))
}

// SubmitMessage godoc
// @Summary     Send a message to a draft
// @Description Runs extraction on the user text. Success moves the draft to reviewing; extraction failures keep it collecting with an explanatory assistant turn.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body messageReq true "User message"
// @Success     200 {object} response.Resp{data=draftResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - extraction already running"
// @Router      /api/v1/drafts/{id}/messages [POST]
func (h *handler) SubmitMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.SubmitMessage(ctx, c.Param("id"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDraftResp(output))
}

// Confirm godoc
// @Summary     Confirm the extracted fields
// @Description Moves a reviewing draft to the staking step.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp{data=draftResp}
// @Failure     400 {object} response.Resp "Bad Request - wrong state"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/drafts/{id}/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Confirm(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newDraftResp(output))
}

// Edit godoc
// @Summary     Reopen a draft for editing
// @Description Moves a reviewing draft back to collecting, discarding the extracted fields but keeping the conversation.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp{data=draftResp}
// @Failure     400 {object} response.Resp "Bad Request - wrong state"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/drafts/{id}/edit [POST]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Edit(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newDraftResp(output))
}

// Submit godoc
// @Summary     Stake and submit a draft
// @Description Stakes the given amount and creates the invoice on the ledger. The id and deadline in the response come from the confirmed ledger event.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Session ID"
// @Param       body body submitReq true "Stake amount (decimal string)"
// @Success     200 {object} response.Resp{data=submitResp}
// @Failure     400 {object} response.Resp "Bad Request - invalid stake, past deadline or transaction failure"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - submission already in flight"
// @Router      /api/v1/drafts/{id}/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Submit(ctx, c.Param("id"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSubmitResp(output))
}

// List godoc
// @Summary     List invoices
// @Description Returns the invoice collection projection. Pass refresh=true to force a full ledger re-read.
// @Tags        Invoices
// @Accept      json
// @Produce     json
// @Param       refresh query bool false "Force a full ledger re-read"
// @Success     200 {object} response.Resp{data=listResp}
// @Router      /api/v1/invoices [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}

// Accept godoc
// @Summary     Accept an invoice
// @Description Submits the acceptance transaction for a staked invoice. Rejected locally when chain time is already past the deadline.
// @Tags        Invoices
// @Accept      json
// @Produce     json
// @Param       id path int true "Invoice ID"
// @Success     200 {object} response.Resp{data=actionResp}
// @Failure     400 {object} response.Resp "Bad Request - wrong status or deadline passed"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - transaction pending"
// @Router      /api/v1/invoices/{id}/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processInvoiceID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Accept(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Accept: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newActionResp(output))
}

// Complete godoc
// @Summary     Complete an invoice
// @Description Submits the completion transaction for an in-progress invoice.
// @Tags        Invoices
// @Accept      json
// @Produce     json
// @Param       id path int true "Invoice ID"
// @Success     200 {object} response.Resp{data=actionResp}
// @Failure     400 {object} response.Resp "Bad Request - wrong status"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - transaction pending"
// @Router      /api/v1/invoices/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processInvoiceID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newActionResp(output))
}
