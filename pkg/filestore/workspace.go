package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// WorkspaceUploader mirrors result files into the user's remote workspace.
// Object creation goes through the workspace JSON-RPC API; the file bytes
// are then PUT to the Shock node URL returned by the create call.
type WorkspaceUploader struct {
	cfg    *config.FileManagerConfig
	client *http.Client
	logger *slog.Logger
}

// NewWorkspaceUploader creates an uploader against the configured
// workspace API.
func NewWorkspaceUploader(cfg *config.FileManagerConfig, logger *slog.Logger) *WorkspaceUploader {
	return &WorkspaceUploader{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger.With("component", "workspace"),
	}
}

// Upload creates the remote object and uploads the file bytes. Returns the
// workspace path and node URL on success.
func (u *WorkspaceUploader) Upload(ctx context.Context, authToken, fileName, localPath, dataType string) (*models.WorkspaceInfo, error) {
	user := UserFromToken(authToken)
	if user == "" {
		return nil, fmt.Errorf("cannot resolve user from auth token")
	}

	uploadDir := fmt.Sprintf("/%s/home/%s", user, u.cfg.WorkspaceUploadDir)
	wsPath := uploadDir + "/" + fileName

	// Best-effort: the create call below fails if the directory is absent,
	// so try to create it first and ignore "already exists" style errors.
	if err := u.createObject(ctx, authToken, uploadDir, "folder", false); err != nil {
		u.logger.Debug("Workspace directory create skipped", "path", uploadDir, "error", err)
	}

	shockURL, err := u.createUploadNode(ctx, authToken, wsPath, WorkspaceTypeFor(dataType))
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace object: %w", err)
	}

	if err := u.putFile(ctx, authToken, shockURL, localPath, MIMEFor(dataType)); err != nil {
		return nil, fmt.Errorf("failed to upload file to shock node: %w", err)
	}

	return &models.WorkspaceInfo{
		WorkspacePath: wsPath,
		WorkspaceURL:  shockURL,
		UploadedAt:    time.Now().UTC(),
	}, nil
}

func (u *WorkspaceUploader) createObject(ctx context.Context, authToken, path, wsType string, uploadNode bool) error {
	_, err := u.rpc(ctx, authToken, "Workspace.create", map[string]any{
		"objects":           [][]string{{path, wsType}},
		"createUploadNodes": uploadNode,
		"overwrite":         true,
	})
	return err
}

// createUploadNode creates the object with an upload node and extracts the
// Shock URL from the returned object metadata.
func (u *WorkspaceUploader) createUploadNode(ctx context.Context, authToken, path, wsType string) (string, error) {
	result, err := u.rpc(ctx, authToken, "Workspace.create", map[string]any{
		"objects":           [][]string{{path, wsType}},
		"createUploadNodes": true,
		"overwrite":         true,
	})
	if err != nil {
		return "", err
	}
	shockURL := findShockURL(result)
	if shockURL == "" {
		return "", fmt.Errorf("workspace create returned no upload node URL")
	}
	return shockURL, nil
}

func (u *WorkspaceUploader) rpc(ctx context.Context, authToken, method string, params map[string]any) (any, error) {
	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  []any{params},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.cfg.WorkspaceAPIURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authToken)

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("workspace API returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Result any `json:"result"`
		Error  *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode workspace response: %w", err)
	}
	if envelope.Error != nil {
		return nil, fmt.Errorf("workspace API error: %s", envelope.Error.Message)
	}
	return envelope.Result, nil
}

func (u *WorkspaceUploader) putFile(ctx context.Context, authToken, shockURL, localPath, mimeType string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, shockURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("Authorization", "OAuth "+authToken)

	resp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("shock upload returned status %d", resp.StatusCode)
	}
	return nil
}

// findShockURL walks arbitrarily nested object metadata looking for the
// Shock node URL produced by createUploadNodes.
func findShockURL(v any) string {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, "http") && strings.Contains(t, "/node/") {
			return t
		}
	case []any:
		for _, item := range t {
			if url := findShockURL(item); url != "" {
				return url
			}
		}
	case map[string]any:
		for _, item := range t {
			if url := findShockURL(item); url != "" {
				return url
			}
		}
	}
	return ""
}

// UserFromToken extracts the user id from a BV-BRC bearer token. Tokens are
// pipe-separated key=value fields; the "un" field carries the user id.
func UserFromToken(token string) string {
	for _, field := range strings.Split(token, "|") {
		if value, ok := strings.CutPrefix(field, "un="); ok {
			// Strip the realm suffix (user@patricbrc.org → user).
			if at := strings.Index(value, "@"); at > 0 {
				return value[:at]
			}
			return value
		}
	}
	return ""
}
