package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucinellclark/bvbrc-copilot/pkg/agent/prompt"
	"github.com/cucinellclark/bvbrc-copilot/pkg/events"
	"github.com/cucinellclark/bvbrc-copilot/pkg/llm"
	"github.com/cucinellclark/bvbrc-copilot/pkg/mcp"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// finalize synthesizes the final response: the direct prompt when no tools
// ran, the tool-based prompt otherwise. Chunks are streamed as SSE
// final_response events while the full text accumulates.
func (o *Orchestrator) finalize(
	ctx context.Context,
	in *RunInput,
	executed []*mcp.Result,
	history []prompt.HistoryEntry,
	finalSource string,
) (string, error) {
	data := &in.Data

	finalIn := &prompt.FinalInput{
		SystemPrompt: data.SystemPrompt,
		Query:        data.Query,
		History:      history,
		Budget:       o.cfg.FinalResponseToolChars,
		Images:       data.Images,
	}

	var messages []llm.Message
	if len(executed) == 0 {
		messages = o.prompts.BuildDirectFinalMessages(finalIn)
	} else {
		finalIn.ResultChunks = o.resultChunks(executed)
		finalIn.Enhancements = o.enhancements(executed)
		messages = o.prompts.BuildToolFinalMessages(finalIn)
	}

	model := data.Model
	if model == "" {
		model = o.cfg.ChatModel
	}
	input := &llm.ChatInput{Model: model, Messages: messages}

	return o.streamFinal(ctx, in, input, finalSource)
}

// streamFinal runs the chat call with streaming, forwarding text chunks as
// final_response events. Falls back to the blocking call when the stream
// cannot be opened.
func (o *Orchestrator) streamFinal(ctx context.Context, in *RunInput, input *llm.ChatInput, finalSource string) (string, error) {
	stream, err := o.llm.ChatStream(ctx, input)
	if err != nil {
		o.logger.Warn("Final response stream unavailable, falling back to blocking call",
			"job_id", in.JobID, "error", err)
		text, chatErr := o.llm.Chat(ctx, input)
		if chatErr != nil {
			return "", chatErr
		}
		o.emitFinalChunk(in, text, finalSource)
		return text, nil
	}

	var b strings.Builder
	for chunk := range stream {
		if in.cancelled() {
			return "", models.ErrJobCancelled
		}
		switch c := chunk.(type) {
		case *llm.TextChunk:
			b.WriteString(c.Content)
			o.emitFinalChunk(in, c.Content, finalSource)
		case *llm.ErrorChunk:
			if b.Len() == 0 {
				return "", fmt.Errorf("final response stream failed: %s", c.Message)
			}
			o.logger.Warn("Final response stream ended early, keeping partial text",
				"job_id", in.JobID, "error", c.Message)
			return b.String(), nil
		}
	}
	if b.Len() == 0 {
		return "", llm.ErrEmptyResponse
	}
	return b.String(), nil
}

func (o *Orchestrator) emitFinalChunk(in *RunInput, text, finalSource string) {
	payload := map[string]any{"chunk": text}
	if finalSource != "" {
		payload["tool"] = finalSource
	}
	in.emit(events.EventFinalResponse, payload)
}

// resultChunks serializes executed results for prompt injection, stripping
// internal metadata first. Identifier sanitization and the character budget
// are applied by the prompt builder.
func (o *Orchestrator) resultChunks(executed []*mcp.Result) []string {
	chunks := make([]string, 0, len(executed))
	for _, res := range executed {
		chunks = append(chunks, renderResultChunk(res))
	}
	return chunks
}

func renderResultChunk(res *mcp.Result) string {
	switch res.Kind {
	case mcp.ResultFile:
		if res.File == nil {
			return ""
		}
		if res.File.IsError {
			return fmt.Sprintf("A data lookup failed: %s\n", res.File.ErrorMessage)
		}
		payload := map[string]any{
			"data_type":    res.File.Summary.DataType,
			"record_count": res.File.Summary.RecordCount,
			"fields":       res.File.Summary.Fields,
		}
		if sample, ok := res.File.Summary.SampleRecord.(map[string]any); ok {
			payload["sample_record"] = prompt.StripInternalMetadata(sample)
		} else if res.File.Summary.SampleRecord != nil {
			payload["sample_record"] = res.File.Summary.SampleRecord
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return ""
		}
		return string(data) + "\n"
	case mcp.ResultRag:
		var b strings.Builder
		fmt.Fprintf(&b, "Retrieved %d reference documents:\n", res.Rag.Count)
		for _, doc := range res.Rag.Documents {
			if doc.Title != "" {
				b.WriteString(doc.Title + ": ")
			}
			b.WriteString(doc.Content + "\n")
		}
		return b.String()
	case mcp.ResultBypass:
		stripped := prompt.StripInternalMetadata(res.Raw)
		data, err := json.MarshalIndent(stripped, "", "  ")
		if err != nil {
			return ""
		}
		return string(data) + "\n"
	}
	return ""
}

// enhancements collects per-tool prompt guidance for each distinct tool
// that executed.
func (o *Orchestrator) enhancements(executed []*mcp.Result) []string {
	seen := make(map[string]bool)
	var out []string
	for _, res := range executed {
		if seen[res.Tool] {
			continue
		}
		seen[res.Tool] = true
		if text, ok := o.policy.PromptEnhancement(res.Tool); ok {
			out = append(out, text)
		}
	}
	return out
}
