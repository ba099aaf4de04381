package llm

import (
	"context"
	"fmt"

	"github.com/cognicore/pulse/pkg/pulse"
	"github.com/cognicore/pulse/pkg/pulse/ingest"
)

// Analyze asks the model for themes, sentiment and actions. Backend
// failures never escape: they become a message in the themes slot with
// placeholders for sentiment and actions. ok is false when the model did
// not answer.
func (c *Client) Analyze(ctx context.Context, text string) (summary pulse.Summary, ok bool) {
	if ingest.IsBlank(text) {
		return pulse.Summary{Themes: pulse.MsgBlankText}, false
	}

	out, err := c.Complete(ctx, Prompt(text, c.maxPromptChars))
	if err != nil {
		return pulse.Summary{
			Themes:    "- " + failureMessage(Classify(err)),
			Sentiment: Placeholder,
			Actions:   Placeholder,
		}, false
	}

	s := ParseSections(out)
	return pulse.Summary{
		Themes:    s.Themes,
		Sentiment: s.Sentiment,
		Actions:   s.Actions,
	}, true
}

func failureMessage(err *Error) string {
	switch err.Type {
	case ErrorTimeout:
		return fmt.Sprintf("LLM backend timed out. The model may still be loading; try again or raise LLM_TIMEOUT. Error: %v", err)
	case ErrorHTTP:
		return fmt.Sprintf("LLM backend rejected the request. Check that the model is pulled and the endpoint is OpenAI-compatible. Error: %v", err)
	case ErrorEmpty:
		return fmt.Sprintf("LLM backend returned no answer. Error: %v", err)
	default:
		return fmt.Sprintf("LLM backend not reachable. Start Ollama and pull a model. Error: %v", err)
	}
}
