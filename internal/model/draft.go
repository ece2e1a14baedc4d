package model

// DraftState is the current step of an invoice draft flow.
type DraftState string

const (
	// DraftCollecting: waiting for user text to extract fields from.
	DraftCollecting DraftState = "collecting"
	// DraftReviewing: extracted fields shown, waiting for confirm/edit.
	DraftReviewing DraftState = "reviewing"
	// DraftStaking: confirmed, waiting for a stake amount.
	DraftStaking DraftState = "staking"
	// DraftSubmitting: ledger transaction in flight.
	DraftSubmitting DraftState = "submitting"
	// DraftSubmitted: terminal; the draft became a committed Invoice.
	DraftSubmitted DraftState = "submitted"
)

// InvoiceDraft is the in-progress, client-only invoice. It is consumed
// exactly once by a successful submission.
type InvoiceDraft struct {
	Title        string
	Description  string
	Amount       float64
	Deadline     string // canonical YYYY-MM-DD
	DeadlineUnix int64  // end-of-day 23:59:59 UTC
}

// Empty reports whether no fields have been extracted yet.
func (d InvoiceDraft) Empty() bool {
	return d == InvoiceDraft{}
}

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one entry of the append-only session transcript.
// Turns are never persisted beyond the session.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
