package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// streamAccumulator collects batch records delivered through progress
// notifications during a streaming tool call. Notifications arrive on the
// transport's receive goroutine, so state is mutex-guarded.
type streamAccumulator struct {
	mu        sync.Mutex
	results   []any
	batches   int
	streamErr string
	cancelled bool
}

// executeStreaming runs a tool call in batch-stream mode. The server sends
// each batch as a notifications/progress message whose message field holds
// a JSON batch record; plain progress notifications are forwarded to the
// client as query_progress events. The final CallTool result is merged
// with the accumulated batches.
func (e *Executor) executeStreaming(ctx context.Context, desc *ToolDescriptor, args map[string]any, cc *CallContext) (map[string]any, int, error) {
	acc := &streamAccumulator{}

	raw, err := e.client.CallToolStreaming(ctx, desc.ServerKey, desc.Name, args,
		func(params *mcpsdk.ProgressNotificationParams) {
			e.handleStreamNotification(acc, desc, params, cc)
		})
	if err != nil {
		return nil, 0, fmt.Errorf("MCP tool error from %s: %w", desc.ID, err)
	}

	acc.mu.Lock()
	results := acc.results
	batches := acc.batches
	streamErr := acc.streamErr
	cancelled := acc.cancelled
	acc.mu.Unlock()

	if cancelled {
		return nil, batches, ctx.Err()
	}
	if streamErr != "" {
		return nil, batches, fmt.Errorf("MCP stream error from %s: %s", desc.ID, streamErr)
	}

	final := decodeResult(raw)
	if raw.IsError {
		final["error"] = true
		return final, batches, nil
	}

	// Merge: batches first (receipt order), then anything carried only in
	// the final result.
	if tail, ok := final["results"].([]any); ok {
		results = append(results, tail...)
	}
	merged := map[string]any{
		"results":     results,
		"count":       len(results),
		"_batchCount": batches,
	}
	if total := pageTotal(final); total > 0 {
		merged["numFound"] = total
	} else {
		merged["numFound"] = len(results)
	}
	if source, ok := final["source"]; ok {
		merged["source"] = source
	}
	return merged, batches, nil
}

// handleStreamNotification processes one progress notification: either a
// JSON batch record in the message field or a bare progress signal.
func (e *Executor) handleStreamNotification(acc *streamAccumulator, desc *ToolDescriptor, params *mcpsdk.ProgressNotificationParams, cc *CallContext) {
	if err := cc.checkpoint(); err != nil {
		acc.mu.Lock()
		acc.cancelled = true
		acc.mu.Unlock()
		return
	}

	if batch, ok := parseBatchRecord(params.Message); ok {
		acc.mu.Lock()
		defer acc.mu.Unlock()

		if isErr, _ := batch["isError"].(bool); isErr {
			acc.streamErr = batchErrorMessage(batch)
			cc.emit("query_error", map[string]any{
				"tool":  desc.ID,
				"error": acc.streamErr,
			})
			return
		}
		if records, ok := batch["results"].([]any); ok {
			acc.results = append(acc.results, records...)
			acc.batches++
		}
		return
	}

	// Bare progress signal: forward as query_progress.
	if params.Total > 0 {
		percentage := int(math.Floor(params.Progress / params.Total * 100))
		cc.emit("query_progress", map[string]any{
			"tool":       desc.ID,
			"current":    int(params.Progress),
			"total":      int(params.Total),
			"percentage": percentage,
		})
	}
}

// parseBatchRecord decodes a progress message as a JSON batch record.
// Returns false for plain human-readable progress messages.
func parseBatchRecord(message string) (map[string]any, bool) {
	trimmed := strings.TrimSpace(message)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	var batch map[string]any
	if err := json.Unmarshal([]byte(trimmed), &batch); err != nil {
		return nil, false
	}
	return batch, true
}

func batchErrorMessage(batch map[string]any) string {
	if msg, ok := batch["message"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := batch["error"].(string); ok && msg != "" {
		return msg
	}
	return "stream reported an error batch"
}
