package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoice-escrow/internal/invoice/repository"
	"invoice-escrow/internal/model"
	"invoice-escrow/pkg/deadline"
	"invoice-escrow/pkg/gcalendar"
	"invoice-escrow/pkg/openai"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockLedger is an in-memory LedgerRepository.
type mockLedger struct {
	invoices  map[uint64]model.Invoice
	nextID    uint64
	chainTime int64

	createResult repository.CreatedInvoice
	createErr    error
	createCalls  []repository.CreateInvoiceOptions

	acceptErr   error
	acceptCalls int

	completeErr   error
	completeCalls int

	readErr error
}

func newMockLedger() *mockLedger {
	return &mockLedger{invoices: make(map[uint64]model.Invoice)}
}

func (m *mockLedger) NextID(ctx context.Context) (uint64, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.nextID, nil
}

func (m *mockLedger) GetInvoice(ctx context.Context, id uint64) (model.Invoice, bool, error) {
	if m.readErr != nil {
		return model.Invoice{}, false, m.readErr
	}
	inv, ok := m.invoices[id]
	return inv, ok, nil
}

func (m *mockLedger) CreateInvoice(ctx context.Context, opt repository.CreateInvoiceOptions) (repository.CreatedInvoice, error) {
	m.createCalls = append(m.createCalls, opt)
	if m.createErr != nil {
		return repository.CreatedInvoice{}, m.createErr
	}
	return m.createResult, nil
}

func (m *mockLedger) AcceptInvoice(ctx context.Context, id uint64) error {
	m.acceptCalls++
	return m.acceptErr
}

func (m *mockLedger) MarkCompleted(ctx context.Context, id uint64) error {
	m.completeCalls++
	return m.completeErr
}

func (m *mockLedger) ChainTime(ctx context.Context) (int64, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.chainTime, nil
}

type mockCalendar struct {
	fail  bool
	calls int
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls++
	if m.fail {
		return nil, errors.New("cal error")
	}
	return &gcalendar.Event{HtmlLink: "http://cal.link"}, nil
}

// newExtractionLLM returns an OpenAI client pointed at a fake server that
// answers every chat completion with the given function-call arguments.
// An empty arguments string produces a plain text answer with no function
// call; status != 200 produces an API error.
func newExtractionLLM(t *testing.T, arguments string, status int) openai.IOpenAI {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"upstream failure"}}`))
			return
		}

		msg := openai.Message{Role: "assistant", Content: "I cannot help with that."}
		if arguments != "" {
			msg = openai.Message{
				Role: "assistant",
				FunctionCall: &openai.FunctionCall{
					Name:      openai.ExtractFunctionName,
					Arguments: arguments,
				},
			}
		}
		json.NewEncoder(w).Encode(openai.ChatResponse{
			Choices: []openai.Choice{{Message: msg}},
		})
	}))
	t.Cleanup(ts.Close)

	client, err := openai.New(openai.Config{APIKey: "test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("failed to create test LLM client: %v", err)
	}
	return client
}

func newDeadlineParser(t *testing.T) *deadline.Parser {
	t.Helper()
	p, err := deadline.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create deadline parser: %v", err)
	}
	return p
}
