package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/internal/invoice/usecase"
	"invoice-escrow/internal/model"
)

func TestStartDraft(t *testing.T) {
	llm := newExtractionLLM(t, `{}`, http.StatusOK)
	uc := usecase.New(&mockLogger{}, llm, newMockLedger(), nil, newDeadlineParser(t))

	out, err := uc.StartDraft(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.SessionID == "" {
		t.Error("expected a session id")
	}
	if out.State != model.DraftCollecting {
		t.Errorf("state = %q, want collecting", out.State)
	}
	if len(out.Conversation) != 1 || out.Conversation[0].Role != model.RoleAssistant {
		t.Errorf("expected greeting turn, got %+v", out.Conversation)
	}

	got, err := uc.GetDraft(context.Background(), out.SessionID)
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if got.SessionID != out.SessionID {
		t.Errorf("session id mismatch")
	}
}

func TestGetDraftUnknownSession(t *testing.T) {
	llm := newExtractionLLM(t, `{}`, http.StatusOK)
	uc := usecase.New(&mockLogger{}, llm, newMockLedger(), nil, newDeadlineParser(t))

	_, err := uc.GetDraft(context.Background(), "nope")
	if !errors.Is(err, invoice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSubmitMessageMovesToReviewing(t *testing.T) {
	llm := newExtractionLLM(t, `{"title":"Build a website","amount":500,"deadline":"2025-03-01"}`, http.StatusOK)
	uc := usecase.New(&mockLogger{}, llm, newMockLedger(), nil, newDeadlineParser(t))

	started, _ := uc.StartDraft(context.Background())
	out, err := uc.SubmitMessage(context.Background(), started.SessionID, invoice.MessageInput{Text: "Build a website for 500 FTN by 2025-03-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.State != model.DraftReviewing {
		t.Fatalf("state = %q, want reviewing", out.State)
	}
	if out.Draft.Title != "Build a website" || out.Draft.Amount != 500 || out.Draft.Deadline != "2025-03-01" {
		t.Errorf("draft not populated: %+v", out.Draft)
	}
	// user turn + assistant summary appended after the greeting
	if len(out.Conversation) != 3 {
		t.Errorf("expected 3 turns, got %d", len(out.Conversation))
	}
}

func TestSubmitMessageExtractionFailureStaysCollecting(t *testing.T) {
	llm := newExtractionLLM(t, "", http.StatusOK) // no function call
	uc := usecase.New(&mockLogger{}, llm, newMockLedger(), nil, newDeadlineParser(t))

	started, _ := uc.StartDraft(context.Background())
	out, err := uc.SubmitMessage(context.Background(), started.SessionID, invoice.MessageInput{Text: "gibberish"})
	if err != nil {
		t.Fatalf("pipeline failures surface as turns, not errors: %v", err)
	}

	if out.State != model.DraftCollecting {
		t.Errorf("state = %q, want collecting", out.State)
	}
	if !out.Draft.Empty() {
		t.Errorf("draft should stay empty on failure: %+v", out.Draft)
	}
	last := out.Conversation[len(out.Conversation)-1]
	if last.Role != model.RoleAssistant {
		t.Errorf("expected explanatory assistant turn, got %+v", last)
	}
}

func TestSubmitMessageEmptyText(t *testing.T) {
	llm := newExtractionLLM(t, `{}`, http.StatusOK)
	uc := usecase.New(&mockLogger{}, llm, newMockLedger(), nil, newDeadlineParser(t))

	started, _ := uc.StartDraft(context.Background())
	_, err := uc.SubmitMessage(context.Background(), started.SessionID, invoice.MessageInput{Text: "  "})
	if !errors.Is(err, invoice.ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
}

func TestConfirmMovesToStaking(t *testing.T) {
	llm := newExtractionLLM(t, `{"title":"x","amount":5,"deadline":"2030-01-01"}`, http.StatusOK)
	uc := usecase.New(&mockLogger{}, llm, newMockLedger(), nil, newDeadlineParser(t))

	started, _ := uc.StartDraft(context.Background())
	uc.SubmitMessage(context.Background(), started.SessionID, invoice.MessageInput{Text: "x for 5 by 2030-01-01"})

	out, err := uc.Confirm(context.Background(), started.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != model.DraftStaking {
		t.Errorf("state = %q, want staking", out.State)
	}
	if out.Draft.Title != "x" {
		t.Errorf("confirm must not transform the draft: %+v", out.Draft)
	}
}

func TestConfirmRequiresReviewing(t *testing.T) {
	llm := newExtractionLLM(t, `{}`, http.StatusOK)
	uc := usecase.New(&mockLogger{}, llm, newMockLedger(), nil, newDeadlineParser(t))

	started, _ := uc.StartDraft(context.Background())
	_, err := uc.Confirm(context.Background(), started.SessionID)
	if !errors.Is(err, invoice.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestEditClearsDraftKeepsConversation(t *testing.T) {
	llm := newExtractionLLM(t, `{"title":"x","amount":5,"deadline":"2030-01-01"}`, http.StatusOK)
	uc := usecase.New(&mockLogger{}, llm, newMockLedger(), nil, newDeadlineParser(t))

	started, _ := uc.StartDraft(context.Background())
	mid, _ := uc.SubmitMessage(context.Background(), started.SessionID, invoice.MessageInput{Text: "x for 5 by 2030-01-01"})

	out, err := uc.Edit(context.Background(), started.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != model.DraftCollecting {
		t.Errorf("state = %q, want collecting", out.State)
	}
	if !out.Draft.Empty() {
		t.Errorf("edit must clear extracted fields: %+v", out.Draft)
	}
	if len(out.Conversation) <= len(mid.Conversation) {
		t.Error("edit must preserve the conversation log")
	}
}
