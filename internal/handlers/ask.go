package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/zeusthug/zeus-api/pkg/dto"
)

type AskHandler struct {
	llmClient LLMClientInterface
}

func NewAskHandler(llmClient LLMClientInterface) *AskHandler {
	return &AskHandler{llmClient: llmClient}
}

// Ask forwards the caller's question to the model. Downstream failures are
// masked behind a generic message; the underlying error is only logged.
func (h *AskHandler) Ask(c *drift.Context) {
	query := c.QueryParam("query")
	if strings.TrimSpace(query) == "" {
		_ = c.JSON(422, dto.ValidationErrorResponse{
			Detail: "query parameter is required and must be non-empty",
			Hint:   "Call /ask?query=<your question>.",
		})
		return
	}

	response, err := h.llmClient.Ask(context.Background(), query)
	if err != nil {
		log.Printf("completion request failed: %v", err)
		_ = c.JSON(503, dto.ErrorResponse{Detail: "Service temporarily unavailable."})
		return
	}

	_ = c.JSON(200, dto.QueryResponse{Response: response})
}
