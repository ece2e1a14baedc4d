package invoice

import (
	"context"
)

// UseCase defines the business logic interface for the invoice domain.
type UseCase interface {
	// Extract runs the field extraction pipeline on a single free-text prompt
	// without touching any draft session.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// StartDraft opens a new draft session in the collecting state.
	StartDraft(ctx context.Context) (DraftOutput, error)

	// GetDraft returns the current state of a draft session.
	GetDraft(ctx context.Context, sessionID string) (DraftOutput, error)

	// SubmitMessage runs extraction + deadline normalization on user text.
	// Success moves the session from collecting to reviewing; any failure
	// keeps it collecting and appends an explanatory turn.
	SubmitMessage(ctx context.Context, sessionID string, input MessageInput) (DraftOutput, error)

	// Confirm moves a reviewing session to staking. No data transformation.
	Confirm(ctx context.Context, sessionID string) (DraftOutput, error)

	// Edit moves a reviewing session back to collecting, discarding the
	// extracted fields but preserving the conversation log.
	Edit(ctx context.Context, sessionID string) (DraftOutput, error)

	// Submit stakes the given amount and creates the invoice on the ledger.
	// On success the session is terminal and the committed Invoice is
	// returned; on failure the session stays in staking for retry.
	Submit(ctx context.Context, sessionID string, input SubmitInput) (SubmitOutput, error)

	// List returns the invoice collection projection, re-reading the ledger
	// when refresh is requested or the cache has been marked stale.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Accept submits an acceptance transaction for a staked invoice,
	// rejecting locally when its on-chain deadline has already passed.
	Accept(ctx context.Context, id uint64) (ActionOutput, error)

	// Complete submits a completion transaction for an in-progress invoice.
	Complete(ctx context.Context, id uint64) (ActionOutput, error)
}
