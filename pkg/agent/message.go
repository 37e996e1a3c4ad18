package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cucinellclark/bvbrc-copilot/pkg/mcp"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// rawFileReadTools are skipped when selecting the UI replay target: their
// byte/line payloads cannot drive a result grid.
func isRawFileReadTool(toolID string) bool {
	name := toolID
	if _, n, ok := strings.Cut(toolID, "."); ok {
		name = n
	}
	return strings.Contains(name, "read_file")
}

// assembleMessage builds the assistant chat message from the final response
// text and the executed results: provenance, UI replay target, display
// metadata, and attached RAG documents.
func (o *Orchestrator) assembleMessage(finalText, finalSource string, executed []*mcp.Result, tr *trace) *models.ChatMessage {
	msg := &models.ChatMessage{
		MessageID: uuid.NewString(),
		Role:      models.RoleAssistant,
		Content:   finalText,
		Timestamp: time.Now().UTC(),
	}

	if finalSource == "" {
		finalSource = tr.lastSuccessfulTool()
	}
	msg.SourceTool = finalSource

	if ui := o.selectUIReplay(executed); ui != nil {
		msg.UISourceTool = ui.Tool
		call := o.replayEnvelope(ui)
		msg.ToolCall = call
		msg.UIToolCall = call
	} else if call := o.replayForTool(finalSource, executed); call != nil {
		msg.ToolCall = call
	}

	o.applyDisplayMetadata(msg, executed)

	for _, res := range executed {
		if res.Kind == mcp.ResultRag && res.Rag != nil {
			msg.Documents = append(msg.Documents, res.Rag.Documents...)
		}
	}
	return msg
}

// selectUIReplay scans executed results newest to oldest and returns the
// first that can drive the UI result grid: the data-query tool takes
// priority, then anything marked replayable or carrying a replay descriptor.
// Raw file-read tools are never selected.
func (o *Orchestrator) selectUIReplay(executed []*mcp.Result) *mcp.Result {
	for i := len(executed) - 1; i >= 0; i-- {
		res := executed[i]
		if res.IsError() || isRawFileReadTool(res.Tool) {
			continue
		}
		if o.isDataQueryTool(res.Tool) {
			return res
		}
		if call := resultCall(res); call != nil && (call.Replayable || call.Replay != nil) {
			return res
		}
	}
	return nil
}

func (o *Orchestrator) isDataQueryTool(toolID string) bool {
	desc, err := o.registry.Get(toolID)
	return err == nil && desc.HasParameter("cursorId")
}

func resultCall(res *mcp.Result) *models.ReplayCall {
	if res.Kind == mcp.ResultFile && res.File != nil {
		return res.File.Call
	}
	return nil
}

// replayEnvelope returns the stored call envelope, synthesizing one from
// the executed arguments when the result did not carry it.
func (o *Orchestrator) replayEnvelope(res *mcp.Result) *models.ReplayCall {
	if call := resultCall(res); call != nil {
		return call
	}
	return &models.ReplayCall{
		Tool:              res.Tool,
		ArgumentsExecuted: res.ArgumentsExecuted,
		Replayable:        o.policy.IsReplayable(res.Tool),
	}
}

func (o *Orchestrator) replayForTool(toolID string, executed []*mcp.Result) *models.ReplayCall {
	for i := len(executed) - 1; i >= 0; i-- {
		if executed[i].Tool == toolID {
			return o.replayEnvelope(executed[i])
		}
	}
	return nil
}

// applyDisplayMetadata attaches frontend dispatch hints for browse and
// workflow surfaces, scanning newest to oldest so the latest surface wins.
func (o *Orchestrator) applyDisplayMetadata(msg *models.ChatMessage, executed []*mcp.Result) {
	for i := len(executed) - 1; i >= 0; i-- {
		res := executed[i]
		if res.IsError() {
			continue
		}
		switch {
		case o.isWorkspaceBrowseTool(res.Tool):
			msg.IsWorkspaceBrowse = true
			msg.UIAction = models.UIActionOpenWorkspaceTab
			if path, ok := res.ArgumentsExecuted["path"].(string); ok && path != "" {
				msg.ChatSummary = fmt.Sprintf("Browsed workspace folder %s", path)
			}
			return
		case isJobListTool(res.Tool):
			msg.IsJobsBrowse = true
			msg.UIAction = models.UIActionOpenJobsTab
			return
		case isWorkflowTool(res.Tool):
			if id := extractWorkflowID(res); id != "" {
				msg.WorkflowID = id
				msg.IsWorkflow = true
				msg.UIAction = models.UIActionOpenWorkflowViewer
				return
			}
		}
	}
}

func (o *Orchestrator) isWorkspaceBrowseTool(toolID string) bool {
	desc, err := o.registry.Get(toolID)
	if err != nil {
		return false
	}
	return strings.Contains(desc.ServerKey, "workspace") && desc.HasParameter("path")
}

func isJobListTool(toolID string) bool {
	name := toolID
	if _, n, ok := strings.Cut(toolID, "."); ok {
		name = n
	}
	return strings.Contains(name, "job") && (strings.Contains(name, "list") || strings.Contains(name, "browse"))
}

func isWorkflowTool(toolID string) bool {
	name := toolID
	if _, n, ok := strings.Cut(toolID, "."); ok {
		name = n
	}
	return strings.Contains(name, "workflow")
}

// extractWorkflowID pulls a workflow id out of a workflow-tool result,
// checking the bypass payload (including nested content, structuredContent,
// and partial_workflow) and the file summary.
func extractWorkflowID(res *mcp.Result) string {
	switch res.Kind {
	case mcp.ResultBypass:
		return workflowIDFromMap(res.Raw, 0)
	case mcp.ResultFile:
		if res.File == nil {
			return ""
		}
		if sample, ok := res.File.Summary.SampleRecord.(map[string]any); ok {
			if id := workflowIDFromMap(sample, 0); id != "" {
				return id
			}
		}
		return workflowIDFromMap(res.File.Summary.SourceMetadata, 0)
	}
	return ""
}

const workflowIDMaxDepth = 3

func workflowIDFromMap(m map[string]any, depth int) string {
	if m == nil || depth > workflowIDMaxDepth {
		return ""
	}
	if id, ok := m["workflow_id"].(string); ok && id != "" {
		return id
	}
	for _, key := range []string{"content", "structuredContent", "partial_workflow", "result"} {
		switch nested := m[key].(type) {
		case map[string]any:
			if id := workflowIDFromMap(nested, depth+1); id != "" {
				return id
			}
		case []any:
			for _, item := range nested {
				if im, ok := item.(map[string]any); ok {
					if id := workflowIDFromMap(im, depth+1); id != "" {
						return id
					}
				}
			}
		}
	}
	return ""
}
