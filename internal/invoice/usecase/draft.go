package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/internal/model"
)

// StartDraft opens a new draft session in the collecting state.
func (uc *implUseCase) StartDraft(ctx context.Context) (invoice.DraftOutput, error) {
	s := newSession(uuid.NewString())
	uc.sessions.Add(s.id, s)

	uc.l.Infof(ctx, "draft: started session %s", s.id)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// GetDraft returns the current state of a draft session.
func (uc *implUseCase) GetDraft(ctx context.Context, sessionID string) (invoice.DraftOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return invoice.DraftOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// SubmitMessage runs the extraction pipeline on one user message. Success
// moves the session to reviewing; any pipeline failure keeps it collecting
// and surfaces the reason as an assistant turn.
func (uc *implUseCase) SubmitMessage(ctx context.Context, sessionID string, input invoice.MessageInput) (invoice.DraftOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return invoice.DraftOutput{}, invoice.ErrEmptyPrompt
	}

	s, err := uc.getSession(sessionID)
	if err != nil {
		return invoice.DraftOutput{}, err
	}

	s.mu.Lock()
	if s.state != model.DraftCollecting {
		defer s.mu.Unlock()
		return s.snapshot(), invoice.ErrInvalidTransition
	}
	if err := s.acquire(); err != nil {
		s.mu.Unlock()
		return invoice.DraftOutput{}, err
	}
	s.hear(input.Text)
	s.mu.Unlock()

	fields, dl, extractErr := uc.extractFields(ctx, input.Text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if extractErr != nil {
		uc.l.Warnf(ctx, "draft %s: extraction failed: %v", s.id, extractErr)
		s.say("Couldn't extract invoice data: %v", extractErr)
		return s.snapshot(), nil
	}

	s.draft = model.InvoiceDraft{
		Title:        fields.Title,
		Description:  fields.Description,
		Amount:       fields.Amount,
		Deadline:     dl.Date,
		DeadlineUnix: dl.Unix,
	}
	s.state = model.DraftReviewing
	s.say("Got it! I extracted:\n• Service: %s\n• Amount: %g %s\n• Deadline: %s\n\nPlease confirm or edit.",
		fields.Title, fields.Amount, tokenSymbol, dl.Date)

	return s.snapshot(), nil
}

// Confirm moves a reviewing session to staking. No data transformation.
func (uc *implUseCase) Confirm(ctx context.Context, sessionID string) (invoice.DraftOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return invoice.DraftOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.DraftReviewing {
		return s.snapshot(), invoice.ErrInvalidTransition
	}
	if err := s.acquire(); err != nil {
		return invoice.DraftOutput{}, err
	}
	s.busy = false

	s.state = model.DraftStaking
	s.say("Great! How much %s would you like to stake as collateral?", tokenSymbol)
	return s.snapshot(), nil
}

// Edit returns a reviewing session to collecting. The extracted fields are
// discarded; the conversation log is preserved.
func (uc *implUseCase) Edit(ctx context.Context, sessionID string) (invoice.DraftOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return invoice.DraftOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.DraftReviewing {
		return s.snapshot(), invoice.ErrInvalidTransition
	}
	if err := s.acquire(); err != nil {
		return invoice.DraftOutput{}, err
	}
	s.busy = false

	s.draft = model.InvoiceDraft{}
	s.state = model.DraftCollecting
	s.say("Sure—please provide the updated details.")
	return s.snapshot(), nil
}
