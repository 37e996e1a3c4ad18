package mcp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cucinellclark/bvbrc-copilot/pkg/filestore"
)

// workspacePathPattern matches embedded remote workspace paths of the form
// /<user>/home/... inside code or parameter strings.
var workspacePathPattern = regexp.MustCompile(`/[A-Za-z0-9_.@-]+/home(/[^\s"']*)?`)

// applyOverrides produces the exact parameter set sent to the MCP server.
// Overrides are trust boundaries: values derived from the authenticated job
// context always win over whatever the planner produced.
//
// Steps, in order:
//  1. Inject session_id into tools whose schema declares it; strip it from
//     tools that do not.
//  2. Inject cancel_token ("job:<job_id>") when the schema declares it.
//  3. Workspace-browse tools: root relative paths at the user's home,
//     keep absolute /public/ paths, null out empty list parameters.
//  4. Code-execution tools: rewrite embedded workspace download paths to
//     the local per-session downloads directory; refuse when unresolved
//     workspace paths remain.
//  5. Data-query tools (schema declares cursorId): force stream=false and
//     format=tsv (pagination is used instead of server-side streaming).
//  6. Enable stream=true when the descriptor advertises streaming_hint.
//  7. Context-aware tools: prepend the conversation-context block to
//     user_query and inject workspace_items when expected.
//
// The input map is never mutated.
func (e *Executor) applyOverrides(desc *ToolDescriptor, params map[string]any, cc *CallContext) (map[string]any, error) {
	args := make(map[string]any, len(params)+2)
	for k, v := range params {
		args[k] = v
	}

	// Step 1: session_id
	if desc.HasParameter("session_id") {
		args["session_id"] = cc.SessionID
	} else {
		delete(args, "session_id")
	}

	// Step 2: cancel_token
	if desc.HasParameter("cancel_token") {
		args["cancel_token"] = "job:" + cc.JobID
	}

	// Step 3: workspace browse
	if isWorkspaceBrowseTool(desc) {
		e.applyWorkspaceOverrides(desc, args, cc)
	}

	// Step 4: code execution
	if isCodeExecutionTool(desc) {
		if err := e.rewriteCodePaths(args, cc); err != nil {
			return nil, err
		}
	}

	// Step 5: data query
	isDataQuery := isDataQueryTool(desc)
	if isDataQuery {
		if desc.HasParameter("stream") {
			args["stream"] = false
		}
		if desc.HasParameter("format") {
			args["format"] = "tsv"
		}
	}

	// Step 6: streaming hint
	if !isDataQuery && desc.StreamingHint() &&
		e.agentCfg.StreamingAutoEnableOnHint && desc.HasParameter("stream") {
		args["stream"] = true
	}

	// Step 7: conversation context
	if e.policy.IsContextAware(desc.ID) {
		e.injectConversationContext(desc, args, cc)
	}

	return args, nil
}

// isDataQueryTool identifies cursor-paginated data tools by their schema.
func isDataQueryTool(desc *ToolDescriptor) bool {
	return desc.HasParameter("cursorId")
}

func isWorkspaceBrowseTool(desc *ToolDescriptor) bool {
	return strings.Contains(desc.ServerKey, "workspace") && desc.HasParameter("path")
}

func isCodeExecutionTool(desc *ToolDescriptor) bool {
	return desc.HasParameter("code")
}

func (e *Executor) applyWorkspaceOverrides(desc *ToolDescriptor, args map[string]any, cc *CallContext) {
	user := filestore.UserFromToken(cc.AuthToken)

	if path, ok := args["path"].(string); ok && user != "" {
		args["path"] = rootWorkspacePath(path, user)
	}

	// Empty strings in list parameters confuse the workspace server; they
	// must be null instead.
	props, _ := desc.InputSchema["properties"].(map[string]any)
	for name, rawProp := range props {
		prop, _ := rawProp.(map[string]any)
		if t, _ := prop["type"].(string); t != "array" {
			continue
		}
		if s, ok := args[name].(string); ok && strings.TrimSpace(s) == "" {
			args[name] = nil
		}
	}
}

// rootWorkspacePath anchors a browse path at the authenticated user's home.
// Absolute /public/ paths and paths already under the user's tree pass
// through untouched.
func rootWorkspacePath(path, user string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "" || path == "/":
		return "/" + user + "/home"
	case strings.HasPrefix(path, "/public/"):
		return path
	case strings.HasPrefix(path, "/"+user+"/"):
		return path
	case strings.HasPrefix(path, "/"):
		return "/" + user + "/home" + path
	default:
		return "/" + user + "/home/" + path
	}
}

// rewriteCodePaths maps embedded workspace download paths inside submitted
// code to the local per-session downloads directory, where the result
// files actually live. Any workspace path that cannot be mapped is refused
// rather than letting the code tool fail opaquely.
func (e *Executor) rewriteCodePaths(args map[string]any, cc *CallContext) error {
	code, ok := args["code"].(string)
	if !ok || code == "" {
		return nil
	}

	localDownloads := e.files.DownloadsDir(cc.SessionID)
	uploadDir := "/home/" + e.files.UploadDirName() + "/"

	rewritten := workspacePathPattern.ReplaceAllStringFunc(code, func(match string) string {
		if idx := strings.Index(match, uploadDir); idx >= 0 {
			rest := match[idx+len(uploadDir):]
			return localDownloads + "/" + rest
		}
		return match
	})

	if workspacePathPattern.MatchString(rewritten) {
		return fmt.Errorf("code references workspace paths outside %s; "+
			"only files under the copilot downloads directory are accessible", uploadDir)
	}

	args["code"] = rewritten
	return nil
}

// injectConversationContext prepends a compact context block to user_query
// and passes workspace_items through when the tool expects them.
func (e *Executor) injectConversationContext(desc *ToolDescriptor, args map[string]any, cc *CallContext) {
	if desc.HasParameter("user_query") {
		query, _ := args["user_query"].(string)
		if query == "" {
			query = cc.Query
		}
		args["user_query"] = buildContextBlock(cc) + query
	}
	if desc.HasParameter("workspace_items") && len(cc.WorkspaceItems) > 0 {
		args["workspace_items"] = cc.WorkspaceItems
	}
}

// buildContextBlock renders the conversation context injected into
// context-aware tools. Kept compact: these tools run their own LLM calls
// and every character counts against their prompt budget.
func buildContextBlock(cc *CallContext) string {
	var b strings.Builder
	b.WriteString("[Conversation context]\n")
	if cc.Summary != "" {
		b.WriteString("Summary: " + cc.Summary + "\n")
	}
	if len(cc.RecentMessages) > 0 {
		b.WriteString("Recent messages:\n")
		for _, msg := range cc.RecentMessages {
			b.WriteString("  " + msg + "\n")
		}
	}
	if cc.SessionState != "" {
		b.WriteString("Session state: " + cc.SessionState + "\n")
	}
	b.WriteString("[End context]\n\n")
	return b.String()
}
