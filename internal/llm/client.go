package llm

import "context"

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client is a single chat exchange with a language model: a list of
// messages in, one completion out. No retries, no streaming.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
