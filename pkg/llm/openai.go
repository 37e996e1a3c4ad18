package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
)

// GatewayClient implements Client against an OpenAI-compatible gateway.
type GatewayClient struct {
	client *openai.Client
	logger *slog.Logger
}

// NewGatewayClient creates a client for the configured LLM gateway.
func NewGatewayClient(cfg config.LLMGatewayConfig, logger *slog.Logger) *GatewayClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &GatewayClient{
		client: openai.NewClientWithConfig(oc),
		logger: logger.With("component", "llm"),
	}
}

// Chat sends a conversation and returns the complete response text.
func (c *GatewayClient) Chat(ctx context.Context, input *ChatInput) (string, error) {
	req := c.buildRequest(input)

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("Chat completion finished",
		"model", req.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)
	return content, nil
}

// ChatStream sends a conversation and returns a channel of chunks.
func (c *GatewayClient) ChatStream(ctx context.Context, input *ChatInput) (<-chan Chunk, error) {
	req := c.buildRequest(input)
	req.Stream = true
	req.StreamOptions = &openai.StreamOptions{IncludeUsage: true}

	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat completion stream failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		defer stream.Close()
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: isRetryable(err)}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromStreamResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func (c *GatewayClient) buildRequest(input *ChatInput) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:       input.Model,
		Temperature: input.Temperature,
		MaxTokens:   input.MaxTokens,
		Messages:    toOpenAIMessages(input.Messages),
	}
	if input.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return req
}

func toOpenAIMessages(msgs []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(msgs))
	for i, m := range msgs {
		om := openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
		// Image attachments require the multi-part content form.
		if len(m.Images) > 0 {
			parts := []openai.ChatMessagePart{{
				Type: openai.ChatMessagePartTypeText,
				Text: m.Content,
			}}
			for _, img := range m.Images {
				parts = append(parts, openai.ChatMessagePart{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: img},
				})
			}
			om.Content = ""
			om.MultiContent = parts
		}
		out[i] = om
	}
	return out
}

func fromStreamResponse(resp openai.ChatCompletionStreamResponse) Chunk {
	if resp.Usage != nil {
		return &UsageChunk{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	if len(resp.Choices) == 0 {
		return nil
	}
	delta := resp.Choices[0].Delta.Content
	if delta == "" {
		return nil
	}
	return &TextChunk{Content: delta}
}

func isRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	return false
}
