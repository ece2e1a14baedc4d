package invoice

import "invoice-escrow/internal/model"

// ExtractInput is the input for stateless field extraction.
type ExtractInput struct {
	Prompt string
}

// ExtractedFields are the validated structured fields produced by the
// extraction service. Deadline is already normalized to YYYY-MM-DD.
type ExtractedFields struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Deadline    string  `json:"deadline"`
}

// ExtractOutput is the result of stateless field extraction.
type ExtractOutput struct {
	Fields ExtractedFields
}

// MessageInput carries one user message for a draft session.
type MessageInput struct {
	Text string
}

// SubmitInput carries the stake amount for draft submission.
// The amount is a decimal string in native chain units.
type SubmitInput struct {
	StakeAmount string
}

// DraftOutput is the externally visible state of a draft session.
type DraftOutput struct {
	SessionID    string
	State        model.DraftState
	Draft        model.InvoiceDraft
	Conversation []model.ConversationTurn
}

// SubmitOutput is the result of a successful draft submission.
type SubmitOutput struct {
	Session DraftOutput
	Invoice model.Invoice
}

// ListInput controls the collection read.
type ListInput struct {
	Refresh bool
}

// ListOutput is the invoice collection projection.
type ListOutput struct {
	Invoices []model.Invoice
	Stale    bool
}

// ActionOutput is the result of a follow-on lifecycle action. Status is the
// optimistic local advance; the next refresh reconciles against the ledger.
type ActionOutput struct {
	Invoice model.Invoice
}
