package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrorType classifies backend failures.
type ErrorType string

const (
	ErrorUnreachable ErrorType = "unreachable"
	ErrorTimeout     ErrorType = "timeout"
	ErrorHTTP        ErrorType = "http"
	ErrorEmpty       ErrorType = "empty_response"
)

// Error is a classified backend failure.
type Error struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	parts := []string{"llm", string(e.Type)}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("HTTP %d", e.StatusCode))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	msg := strings.Join(parts, " ")
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Classify turns a transport or API error into an *Error.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Type: ErrorTimeout, Message: "request timed out", Cause: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Type: ErrorTimeout, Message: "request timed out", Cause: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &Error{Type: ErrorHTTP, StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Cause: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &Error{Type: ErrorHTTP, StatusCode: reqErr.HTTPStatusCode, Cause: err}
	}

	return &Error{Type: ErrorUnreachable, Message: "backend not reachable", Cause: err}
}
