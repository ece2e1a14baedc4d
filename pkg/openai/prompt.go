package openai

// ExtractFunctionName is the declared function the model must call to
// return structured invoice fields.
const ExtractFunctionName = "extractInvoice"

// InvoiceExtractionSystemPrompt is the system instruction for invoice field
// extraction. The model is forced toward the function path rather than prose.
const InvoiceExtractionSystemPrompt = "You're a helper that *must* extract `title`,`description`,`amount`,`deadline` " +
	"from any user text by calling the function extractInvoice."

// InvoiceExtractionFunction declares the extractInvoice function schema:
// title and amount and deadline are required, description is optional.
func InvoiceExtractionFunction() Function {
	return Function{
		Name:        ExtractFunctionName,
		Description: "Extract invoice fields from text",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":       map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"amount":      map[string]any{"type": "number", "description": "native chain units"},
				"deadline":    map[string]any{"type": "string", "description": "YYYY-MM-DD"},
			},
			"required": []string{"title", "amount", "deadline"},
		},
	}
}

// NewExtractionRequest builds the fixed chat request for extracting invoice
// fields from a single free-text prompt.
func NewExtractionRequest(prompt string) *ChatRequest {
	return &ChatRequest{
		Messages: []Message{
			{Role: "system", Content: InvoiceExtractionSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Functions:    []Function{InvoiceExtractionFunction()},
		FunctionCall: "auto",
	}
}
