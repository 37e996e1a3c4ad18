package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the LLM produced no content.
var ErrEmptyResponse = errors.New("llm returned empty response")

// Client is the interface for calling the LLM gateway.
// It provides a blocking completion API for planning calls and a
// channel-based streaming API for user-facing responses.
type Client interface {
	// Chat sends a conversation and returns the complete response text.
	Chat(ctx context.Context, input *ChatInput) (string, error)

	// ChatStream sends a conversation and returns a stream of chunks.
	// The returned channel is closed when the stream completes.
	// Errors are delivered as ErrorChunk values in the channel.
	ChatStream(ctx context.Context, input *ChatInput) (<-chan Chunk, error)
}

// ChatInput is a single LLM request.
type ChatInput struct {
	Model       string
	Messages    []Message
	Temperature float32
	MaxTokens   int // 0 = provider default
	JSONMode    bool
}

// Message is one turn of a conversation.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
	Images  []string // data URLs or https URLs, user messages only
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// TextChunk is a chunk of the LLM's text response.
type TextChunk struct{ Content string }

// UsageChunk reports token consumption for this LLM call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int }

// ErrorChunk signals an error from the LLM provider.
type ErrorChunk struct {
	Message   string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType  { return ChunkTypeText }
func (c *UsageChunk) chunkType() ChunkType { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }
