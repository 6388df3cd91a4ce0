package chat

import "context"

// DefaultWordLimit bounds the assistant's reply length via the prompt.
const DefaultWordLimit = 50

// Client answers one free-form question. Stateless per request.
type Client interface {
	Ask(ctx context.Context, message string, wordLimit int) (string, error)
}
