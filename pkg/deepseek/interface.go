package deepseek

import "context"

// IDeepSeek defines the interface for DeepSeek LLM client
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	// Complete sends a single user prompt and returns the reply text.
	Complete(ctx context.Context, prompt string) (string, error)
}
