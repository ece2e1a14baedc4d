package usecase

import (
	"fmt"
	"sync"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/internal/model"
)

const greeting = "Hi there! I'll help you create an invoice. Please describe the work, the amount in " +
	tokenSymbol + ", and the deadline (YYYY-MM-DD)."

// session is one draft flow. A single logical flow exists per session; the
// busy flag rejects overlapping operations instead of queueing them.
type session struct {
	mu           sync.Mutex
	id           string
	state        model.DraftState
	draft        model.InvoiceDraft
	conversation []model.ConversationTurn
	busy         bool
}

func newSession(id string) *session {
	return &session{
		id:    id,
		state: model.DraftCollecting,
		conversation: []model.ConversationTurn{
			{Role: model.RoleAssistant, Content: greeting},
		},
	}
}

// say appends an assistant turn. Caller holds s.mu.
func (s *session) say(format string, args ...any) {
	s.conversation = append(s.conversation, model.ConversationTurn{
		Role:    model.RoleAssistant,
		Content: fmt.Sprintf(format, args...),
	})
}

// hear appends a user turn. Caller holds s.mu.
func (s *session) hear(text string) {
	s.conversation = append(s.conversation, model.ConversationTurn{
		Role:    model.RoleUser,
		Content: text,
	})
}

// snapshot copies the externally visible state. Caller holds s.mu.
func (s *session) snapshot() invoice.DraftOutput {
	turns := make([]model.ConversationTurn, len(s.conversation))
	copy(turns, s.conversation)
	return invoice.DraftOutput{
		SessionID:    s.id,
		State:        s.state,
		Draft:        s.draft,
		Conversation: turns,
	}
}

// acquire marks the session busy for one operation. Caller holds s.mu.
func (s *session) acquire() error {
	if s.busy {
		return invoice.ErrSessionBusy
	}
	s.busy = true
	return nil
}

func (uc *implUseCase) getSession(sessionID string) (*session, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, invoice.ErrSessionNotFound
	}
	return s, nil
}
