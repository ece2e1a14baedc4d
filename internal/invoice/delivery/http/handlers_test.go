package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"invoice-escrow/internal/invoice"
	invoiceHTTP "invoice-escrow/internal/invoice/delivery/http"
	"invoice-escrow/internal/model"
	"invoice-escrow/pkg/deadline"
)

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

// mockUseCase stubs the invoice usecase per test.
type mockUseCase struct {
	extractOut invoice.ExtractOutput
	extractErr error

	draftOut invoice.DraftOutput
	draftErr error

	listOut invoice.ListOutput

	actionOut invoice.ActionOutput
	actionErr error
}

func (m *mockUseCase) Extract(ctx context.Context, input invoice.ExtractInput) (invoice.ExtractOutput, error) {
	return m.extractOut, m.extractErr
}

func (m *mockUseCase) StartDraft(ctx context.Context) (invoice.DraftOutput, error) {
	return m.draftOut, m.draftErr
}

func (m *mockUseCase) GetDraft(ctx context.Context, sessionID string) (invoice.DraftOutput, error) {
	return m.draftOut, m.draftErr
}

func (m *mockUseCase) SubmitMessage(ctx context.Context, sessionID string, input invoice.MessageInput) (invoice.DraftOutput, error) {
	return m.draftOut, m.draftErr
}

func (m *mockUseCase) Confirm(ctx context.Context, sessionID string) (invoice.DraftOutput, error) {
	return m.draftOut, m.draftErr
}

func (m *mockUseCase) Edit(ctx context.Context, sessionID string) (invoice.DraftOutput, error) {
	return m.draftOut, m.draftErr
}

func (m *mockUseCase) Submit(ctx context.Context, sessionID string, input invoice.SubmitInput) (invoice.SubmitOutput, error) {
	return invoice.SubmitOutput{Session: m.draftOut}, m.draftErr
}

func (m *mockUseCase) List(ctx context.Context, input invoice.ListInput) (invoice.ListOutput, error) {
	return m.listOut, nil
}

func (m *mockUseCase) Accept(ctx context.Context, id uint64) (invoice.ActionOutput, error) {
	return m.actionOut, m.actionErr
}

func (m *mockUseCase) Complete(ctx context.Context, id uint64) (invoice.ActionOutput, error) {
	return m.actionOut, m.actionErr
}

func serveRequest(t *testing.T, uc invoice.UseCase, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	h := invoiceHTTP.New(&mockLogger{}, uc)
	engine.POST("/extract-invoice", h.ExtractInvoice)
	engine.GET("/invoices", h.List)
	engine.GET("/drafts/:id", h.GetDraft)
	engine.POST("/invoices/:id/accept", h.Accept)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestExtractInvoiceEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{extractOut: invoice.ExtractOutput{
			Fields: invoice.ExtractedFields{Title: "Build a website", Amount: 500, Deadline: "2025-03-01"},
		}}

		w := serveRequest(t, uc, http.MethodPost, "/extract-invoice", `{"prompt":"Build a website for 500 FTN by 2025-03-01"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var parsed struct {
			Extracted struct {
				Title    string  `json:"title"`
				Amount   float64 `json:"amount"`
				Deadline string  `json:"deadline"`
			} `json:"extracted"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("failed to parse body: %v", err)
		}
		if parsed.Extracted.Title != "Build a website" || parsed.Extracted.Amount != 500 {
			t.Errorf("unexpected body: %s", w.Body.String())
		}

		// Absent description is omitted entirely.
		if strings.Contains(w.Body.String(), "description") {
			t.Errorf("empty description must be omitted: %s", w.Body.String())
		}
	})

	t.Run("missing prompt", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"prompt":"  "}`, `not json`} {
			w := serveRequest(t, &mockUseCase{}, http.MethodPost, "/extract-invoice", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("body %q: status = %d, want 400", body, w.Code)
			}
			var parsed map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
				t.Fatalf("body %q: failed to parse response: %v", body, err)
			}
			if parsed["error"] != "`prompt` is required" {
				t.Errorf("body %q: error = %q", body, parsed["error"])
			}
		}
	})

	t.Run("unparseable deadline", func(t *testing.T) {
		uc := &mockUseCase{extractErr: fmt.Errorf("%w %q: use YYYY-MM-DD", deadline.ErrUnparseable, "sometime soon")}

		w := serveRequest(t, uc, http.MethodPost, "/extract-invoice", `{"prompt":"do it sometime soon"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var parsed map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if !strings.Contains(parsed["error"], "YYYY-MM-DD") {
			t.Errorf("error = %q, want format hint", parsed["error"])
		}
	})

	t.Run("extraction failure", func(t *testing.T) {
		uc := &mockUseCase{extractErr: fmt.Errorf("extraction service: status 500")}

		w := serveRequest(t, uc, http.MethodPost, "/extract-invoice", `{"prompt":"x"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		var parsed map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if parsed["error"] == "" {
			t.Error("failure detail must be carried in the error field")
		}
	})
}

func TestListEndpoint(t *testing.T) {
	uc := &mockUseCase{listOut: invoice.ListOutput{
		Invoices: []model.Invoice{{ID: 0, Title: "x", Status: model.StatusStaked}},
		Stale:    true,
	}}

	w := serveRequest(t, uc, http.MethodGet, "/invoices", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var parsed struct {
		Data struct {
			Invoices []struct {
				Status string `json:"status"`
			} `json:"invoices"`
			Stale bool `json:"stale"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if len(parsed.Data.Invoices) != 1 || parsed.Data.Invoices[0].Status != "staked" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if !parsed.Data.Stale {
		t.Error("stale flag must be surfaced")
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", invoice.ErrInvoiceNotFound, http.StatusNotFound},
		{"busy", invoice.ErrInvoiceBusy, http.StatusConflict},
		{"deadline passed", invoice.ErrDeadlinePassed, http.StatusBadRequest},
		{"wrong status", invoice.ErrNotAcceptable, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{actionErr: tc.err}
			w := serveRequest(t, uc, http.MethodPost, "/invoices/3/accept", "")
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}

	t.Run("non-numeric id", func(t *testing.T) {
		w := serveRequest(t, &mockUseCase{}, http.MethodPost, "/invoices/abc/accept", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}
