package mcp

import (
	"context"
	"fmt"
	"strings"
)

// MaxPaginationBatches is the hard safety cap on cursor pagination fetches
// per call, independent of the configurable page cap.
const MaxPaginationBatches = 200

// paginate drives cursor-based pagination for data-query tools. firstPage
// is the already-decoded first response. Batches accumulate in receipt
// order; the first TSV page's header is preserved and stripped from
// subsequent pages. A caller-supplied limit bounds the accumulated record
// count. Batch failures produce a partial result rather than an error.
func (e *Executor) paginate(ctx context.Context, desc *ToolDescriptor, args, firstPage map[string]any, cc *CallContext) (map[string]any, int, error) {
	acc := newAccumulator(firstPage)
	numFound := pageTotal(firstPage)
	cursor := firstPage["nextCursorId"]
	limit := callerLimit(args)
	maxBatches := e.maxBatches()

	batch := 1
	var paginationErrors []string

	cc.emit("query_progress", e.progressPayload(desc.ID, acc.count(), numFound, batch))

	for cursor != nil && !acc.reachedLimit(limit) {
		if err := cc.checkpoint(); err != nil {
			return nil, batch, err
		}

		if batch >= maxBatches {
			cc.emit("query_warning", map[string]any{
				"tool":    desc.ID,
				"message": fmt.Sprintf("pagination stopped at the %d batch cap with more data available", maxBatches),
				"batches": batch,
			})
			break
		}
		if acc.size() > e.files.AccumulateThreshold() {
			cc.emit("query_warning", map[string]any{
				"tool":    desc.ID,
				"message": "pagination stopped at the accumulation size threshold",
				"batches": batch,
			})
			break
		}

		nextArgs := make(map[string]any, len(args)+1)
		for k, v := range args {
			nextArgs[k] = v
		}
		nextArgs["cursorId"] = cursor

		raw, err := e.client.CallTool(ctx, desc.ServerKey, desc.Name, nextArgs)
		if err != nil {
			paginationErrors = append(paginationErrors, err.Error())
			cc.emit("query_error", map[string]any{
				"tool":  desc.ID,
				"batch": batch + 1,
				"error": err.Error(),
			})
			break
		}

		page := decodeResult(raw)
		if raw.IsError {
			paginationErrors = append(paginationErrors,
				fmt.Sprintf("batch %d returned an error payload", batch+1))
			break
		}

		// An empty page with a live cursor would loop forever; stop instead.
		if !acc.append(page) {
			break
		}
		batch++
		cursor = page["nextCursorId"]

		cc.emit("query_progress", e.progressPayload(desc.ID, acc.count(), numFound, batch))
	}

	merged := acc.merge(limit)
	merged["numFound"] = numFound
	merged["_batchCount"] = batch
	if source, ok := firstPage["source"]; ok {
		merged["source"] = source
	}
	if len(paginationErrors) > 0 {
		merged["partial"] = true
		merged["batchesReceived"] = batch
		merged["paginationErrors"] = paginationErrors
	}
	return merged, batch, nil
}

func (e *Executor) maxBatches() int {
	max := MaxPaginationBatches
	if cap := e.files.MaxPages(); cap > 0 && cap < max {
		max = cap
	}
	return max
}

func (e *Executor) progressPayload(toolID string, current, total, batch int) map[string]any {
	percentage := 0
	if total > 0 {
		percentage = current * 100 / total
		if percentage > 100 {
			percentage = 100
		}
	}
	return map[string]any{
		"tool":        toolID,
		"current":     current,
		"total":       total,
		"percentage":  percentage,
		"batchNumber": batch,
	}
}

// accumulator collects pages in either TSV-string or JSON-array form.
type accumulator struct {
	rows     []string // TSV mode: header + data rows
	records  []any    // JSON mode
	isTSV    bool
	byteSize int64
}

func newAccumulator(firstPage map[string]any) *accumulator {
	acc := &accumulator{}
	switch data := pageData(firstPage).(type) {
	case string:
		acc.isTSV = true
		acc.rows = splitRows(data)
		acc.byteSize = int64(len(data))
	case []any:
		acc.records = append(acc.records, data...)
		acc.byteSize = approxSize(data)
	}
	return acc
}

// append adds one page, stripping the TSV header on subsequent fetches.
// Returns false when the page carried no data.
func (a *accumulator) append(page map[string]any) bool {
	switch data := pageData(page).(type) {
	case string:
		rows := splitRows(data)
		if len(rows) > 1 {
			rows = rows[1:] // skip repeated header
		} else {
			return false
		}
		if len(rows) == 0 {
			return false
		}
		a.rows = append(a.rows, rows...)
		a.byteSize += int64(len(data))
		return true
	case []any:
		if len(data) == 0 {
			return false
		}
		a.records = append(a.records, data...)
		a.byteSize += approxSize(data)
		return true
	default:
		return false
	}
}

// count returns the accumulated data record count (TSV header excluded).
func (a *accumulator) count() int {
	if a.isTSV {
		if len(a.rows) <= 1 {
			return 0
		}
		return len(a.rows) - 1
	}
	return len(a.records)
}

func (a *accumulator) size() int64 { return a.byteSize }

func (a *accumulator) reachedLimit(limit int) bool {
	return limit > 0 && a.count() >= limit
}

// merge produces the final accumulated payload, truncated to the caller's
// limit when one was supplied.
func (a *accumulator) merge(limit int) map[string]any {
	if a.isTSV {
		rows := a.rows
		if limit > 0 && len(rows) > limit+1 {
			rows = rows[:limit+1]
		}
		return map[string]any{
			"results": strings.Join(rows, "\n"),
			"count":   max(len(rows)-1, 0),
		}
	}
	records := a.records
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return map[string]any{
		"results": records,
		"count":   len(records),
	}
}

// pageData extracts the data payload of a page, tolerating both the
// "results" and "result" envelope keys and both TSV and JSON forms.
func pageData(page map[string]any) any {
	if tsv, ok := page["tsv"].(string); ok {
		return tsv
	}
	if v, ok := page["results"]; ok {
		return v
	}
	return page["result"]
}

func pageTotal(page map[string]any) int {
	for _, key := range []string{"numFound", "count", "totalCount"} {
		if v, ok := page[key]; ok {
			if f, ok := v.(float64); ok {
				return int(f)
			}
			if n, ok := v.(int); ok {
				return n
			}
		}
	}
	return 0
}

func callerLimit(args map[string]any) int {
	if v, ok := args["limit"]; ok {
		if f, ok := v.(float64); ok {
			return int(f)
		}
		if n, ok := v.(int); ok {
			return n
		}
	}
	return 0
}

func splitRows(s string) []string {
	var rows []string
	for _, row := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if strings.TrimSpace(row) != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

func approxSize(records []any) int64 {
	var size int64
	for _, r := range records {
		if s, ok := r.(string); ok {
			size += int64(len(s))
		} else {
			size += 128 // rough per-record estimate for structured rows
		}
	}
	return size
}
