package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zeusthug/zeus-api/pkg/dto"
	"github.com/zeusthug/zeus-api/tests/testutil"
)

func newAskApp(llmClient LLMClientInterface) http.Handler {
	handler := NewAskHandler(llmClient)
	app := drift.New()
	app.Get("/ask", handler.Ask)
	return app
}

func TestAskHandler_Ask(t *testing.T) {
	mockLLM := new(testutil.MockLLMClient)
	mockLLM.On("Ask", mock.Anything, "what is lightning?").Return("Lightning is an electrostatic discharge.", nil)

	app := newAskApp(mockLLM)
	client := testutil.NewHTTPTestClient(t, app)

	rec := client.GET("/ask?query=what+is+lightning%3F", nil)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var response dto.QueryResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, "Lightning is an electrostatic discharge.", response.Response)
	mockLLM.AssertExpectations(t)
}

func TestAskHandler_Ask_MissingQuery(t *testing.T) {
	mockLLM := new(testutil.MockLLMClient)

	app := newAskApp(mockLLM)
	client := testutil.NewHTTPTestClient(t, app)

	rec := client.GET("/ask", nil)

	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)

	var response dto.ValidationErrorResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Contains(t, response.Detail, "query parameter is required")
	assert.NotEmpty(t, response.Hint)
	mockLLM.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestAskHandler_Ask_BlankQuery(t *testing.T) {
	mockLLM := new(testutil.MockLLMClient)

	app := newAskApp(mockLLM)
	client := testutil.NewHTTPTestClient(t, app)

	rec := client.GET("/ask?query=%20%20", nil)

	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
	mockLLM.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestAskHandler_Ask_DownstreamFailure(t *testing.T) {
	mockLLM := new(testutil.MockLLMClient)
	mockLLM.On("Ask", mock.Anything, "hello").Return("", errors.New("provider returned status 500: internal"))

	app := newAskApp(mockLLM)
	client := testutil.NewHTTPTestClient(t, app)

	rec := client.GET("/ask?query=hello", nil)

	testutil.AssertStatus(t, rec, http.StatusServiceUnavailable)
	assert.Contains(t, rec.Body.String(), "Service temporarily unavailable.")
	assert.NotContains(t, rec.Body.String(), "status 500")
}
