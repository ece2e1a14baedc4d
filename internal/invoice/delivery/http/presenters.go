package http

import (
	"strings"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Prompt string `json:"prompt"`
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return invoice.ErrEmptyPrompt
	}
	return nil
}

func (r extractReq) toInput() invoice.ExtractInput {
	return invoice.ExtractInput{Prompt: r.Prompt}
}

type messageReq struct {
	Text string `json:"text"`
}

func (r messageReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return invoice.ErrEmptyPrompt
	}
	return nil
}

func (r messageReq) toInput() invoice.MessageInput {
	return invoice.MessageInput{Text: r.Text}
}

type submitReq struct {
	StakeAmount string `json:"stake_amount"`
}

func (r submitReq) validate() error {
	if strings.TrimSpace(r.StakeAmount) == "" {
		return invoice.ErrInvalidStake
	}
	return nil
}

func (r submitReq) toInput() invoice.SubmitInput {
	return invoice.SubmitInput{StakeAmount: r.StakeAmount}
}

type listReq struct {
	Refresh bool `form:"refresh"`
}

func (r listReq) toInput() invoice.ListInput {
	return invoice.ListInput{Refresh: r.Refresh}
}

// --- Response DTOs ---

// extractedResp mirrors the extraction payload contract: description is
// omitted when absent, everything else is always present.
type extractedResp struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Deadline    string  `json:"deadline"`
}

type extractResp struct {
	Extracted extractedResp `json:"extracted"`
}

func newExtractResp(out invoice.ExtractOutput) extractResp {
	return extractResp{
		Extracted: extractedResp{
			Title:       out.Fields.Title,
			Description: out.Fields.Description,
			Amount:      out.Fields.Amount,
			Deadline:    out.Fields.Deadline,
		},
	}
}

type draftFieldsResp struct {
	Title        string  `json:"title,omitempty"`
	Description  string  `json:"description,omitempty"`
	Amount       float64 `json:"amount,omitempty"`
	Deadline     string  `json:"deadline,omitempty"`
	DeadlineUnix int64   `json:"deadline_unix,omitempty"`
}

type draftResp struct {
	SessionID    string                   `json:"session_id"`
	State        model.DraftState         `json:"state"`
	Draft        draftFieldsResp          `json:"draft"`
	Conversation []model.ConversationTurn `json:"conversation"`
}

func newDraftResp(out invoice.DraftOutput) draftResp {
	return draftResp{
		SessionID: out.SessionID,
		State:     out.State,
		Draft: draftFieldsResp{
			Title:        out.Draft.Title,
			Description:  out.Draft.Description,
			Amount:       out.Draft.Amount,
			Deadline:     out.Draft.Deadline,
			DeadlineUnix: out.Draft.DeadlineUnix,
		},
		Conversation: out.Conversation,
	}
}

type invoiceResp struct {
	ID           uint64              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Amount       float64             `json:"amount"`
	StakeAmount  float64             `json:"stake_amount"`
	Deadline     string              `json:"deadline"`
	DeadlineUnix int64               `json:"deadline_unix"`
	Status       model.InvoiceStatus `json:"status"`
	Supplier     string              `json:"supplier,omitempty"`
}

func newInvoiceResp(inv model.Invoice) invoiceResp {
	return invoiceResp{
		ID:           inv.ID,
		Title:        inv.Title,
		Description:  inv.Description,
		Amount:       inv.Amount,
		StakeAmount:  inv.StakeAmount,
		Deadline:     inv.Deadline,
		DeadlineUnix: inv.DeadlineUnix,
		Status:       inv.Status,
		Supplier:     inv.Supplier,
	}
}

type submitResp struct {
	Session draftResp   `json:"session"`
	Invoice invoiceResp `json:"invoice"`
}

func newSubmitResp(out invoice.SubmitOutput) submitResp {
	return submitResp{
		Session: newDraftResp(out.Session),
		Invoice: newInvoiceResp(out.Invoice),
	}
}

type listResp struct {
	Invoices []invoiceResp `json:"invoices"`
	Stale    bool          `json:"stale"`
}

func newListResp(out invoice.ListOutput) listResp {
	items := make([]invoiceResp, len(out.Invoices))
	for i, inv := range out.Invoices {
		items[i] = newInvoiceResp(inv)
	}
	return listResp{
		Invoices: items,
		Stale:    out.Stale,
	}
}

type actionResp struct {
	Invoice invoiceResp `json:"invoice"`
}

func newActionResp(out invoice.ActionOutput) actionResp {
	return actionResp{Invoice: newInvoiceResp(out.Invoice)}
}
