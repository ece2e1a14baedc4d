package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/pkg/deadline"
	"invoice-escrow/pkg/openai"
)

// Extract runs the extraction pipeline on a single prompt without touching
// any draft session.
func (uc *implUseCase) Extract(ctx context.Context, input invoice.ExtractInput) (invoice.ExtractOutput, error) {
	fields, _, err := uc.extractFields(ctx, input.Prompt)
	if err != nil {
		return invoice.ExtractOutput{}, err
	}
	return invoice.ExtractOutput{Fields: fields}, nil
}

// extractFields sends the prompt to the extraction service and validates the
// structured payload at the trust boundary. A single attempt, fail-fast; no
// partial data is ever returned.
func (uc *implUseCase) extractFields(ctx context.Context, prompt string) (invoice.ExtractedFields, deadline.Deadline, error) {
	if strings.TrimSpace(prompt) == "" {
		return invoice.ExtractedFields{}, deadline.Deadline{}, invoice.ErrEmptyPrompt
	}

	resp, err := uc.llm.CreateChatCompletion(ctx, openai.NewExtractionRequest(prompt))
	if err != nil {
		return invoice.ExtractedFields{}, deadline.Deadline{}, fmt.Errorf("extraction service: %w", err)
	}

	if len(resp.Choices) == 0 {
		return invoice.ExtractedFields{}, deadline.Deadline{}, invoice.ErrExtractionFailed
	}
	fc := resp.Choices[0].Message.FunctionCall
	if fc == nil || fc.Arguments == "" {
		return invoice.ExtractedFields{}, deadline.Deadline{}, invoice.ErrExtractionFailed
	}

	var args struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		Deadline    string  `json:"deadline"`
	}
	if err := json.Unmarshal([]byte(fc.Arguments), &args); err != nil {
		return invoice.ExtractedFields{}, deadline.Deadline{}, fmt.Errorf("%w: malformed arguments: %v", invoice.ErrExtractionFailed, err)
	}

	if strings.TrimSpace(args.Title) == "" {
		return invoice.ExtractedFields{}, deadline.Deadline{}, fmt.Errorf("%w: missing title", invoice.ErrExtractionFailed)
	}
	if args.Amount <= 0 {
		return invoice.ExtractedFields{}, deadline.Deadline{}, fmt.Errorf("%w: amount must be positive", invoice.ErrExtractionFailed)
	}

	dl, err := uc.dl.Normalize(args.Deadline, time.Now())
	if err != nil {
		return invoice.ExtractedFields{}, deadline.Deadline{}, err
	}

	return invoice.ExtractedFields{
		Title:       strings.TrimSpace(args.Title),
		Description: strings.TrimSpace(args.Description),
		Amount:      args.Amount,
		Deadline:    dl.Date,
	}, dl, nil
}
