package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/cucinellclark/bvbrc-copilot/ent"
	"github.com/cucinellclark/bvbrc-copilot/ent/filerecord"
	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Store materializes tool results as files and mirrors their metadata in
// the database. One Store instance is shared across workers.
type Store struct {
	cfg      *config.FileManagerConfig
	db       *ent.Client
	uploader *WorkspaceUploader
	logger   *slog.Logger
}

// NewStore creates a file store. uploader may be nil (workspace upload
// disabled).
func NewStore(cfg *config.FileManagerConfig, db *ent.Client, uploader *WorkspaceUploader, logger *slog.Logger) *Store {
	return &Store{
		cfg:      cfg,
		db:       db,
		uploader: uploader,
		logger:   logger.With("component", "filestore"),
	}
}

// SessionDir returns the on-disk root for a session.
func (s *Store) SessionDir(sessionID string) string {
	return filepath.Join(s.cfg.BaseDir, "sessions", sessionID)
}

// DownloadsDir returns the downloads directory for a session. Downstream
// code-execution tools read result files from this path.
func (s *Store) DownloadsDir(sessionID string) string {
	return filepath.Join(s.SessionDir(sessionID), "downloads")
}

// UploadDirName returns the workspace directory name receiving uploads.
func (s *Store) UploadDirName() string {
	return s.cfg.WorkspaceUploadDir
}

// AccumulateThreshold returns the in-memory pagination accumulation cap in
// bytes.
func (s *Store) AccumulateThreshold() int64 {
	return s.cfg.AccumulateSizeThreshold
}

// MaxPages returns the configured pagination fetch cap.
func (s *Store) MaxPages() int {
	return s.cfg.MaxAccumulatePages
}

// SaveInput carries one tool result into the store.
type SaveInput struct {
	SessionID       string
	UserID          string
	ToolID          string
	Raw             map[string]any
	QueryParameters map[string]any
	Call            *models.ReplayCall
	AuthToken       string
}

// SaveResult normalizes, writes, and registers a tool result.
//
// The on-disk file and the database row must both exist or both be absent:
// the row is written only after a successful disk write, and the file is
// removed if the row write fails.
func (s *Store) SaveResult(ctx context.Context, in SaveInput) (*models.FileReference, error) {
	data, meta := Normalize(in.Raw)
	isError := IsErrorPayload(in.Raw) || IsErrorPayload(data)

	dataType := DetectDataType(data)
	serialized, err := serialize(data, dataType)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize tool result: %w", err)
	}

	summary := Summarize(data, dataType, serialized, meta)
	if isError {
		summary.RecordCount = 0
		summary.Fields = []string{}
		summary.SampleRecord = nil
	}

	fileID := uuid.NewString()
	fileName := fmt.Sprintf("%s_%s.%s",
		sanitizeToolID(in.ToolID), fileID[:8], ExtensionFor(dataType))

	dir := s.DownloadsDir(in.SessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create downloads directory: %w", err)
	}
	filePath := filepath.Join(dir, fileName)
	if err := os.WriteFile(filePath, serialized, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write result file: %w", err)
	}

	ref := &models.FileReference{
		Type:            models.FileReferenceType,
		FileID:          fileID,
		FileName:        fileName,
		FilePath:        filePath,
		IsError:         isError,
		Summary:         summary,
		QueryParameters: in.QueryParameters,
		Call:            in.Call,
		Message: fmt.Sprintf("Result saved to file (%d records, %s)",
			summary.RecordCount, summary.SizeFormatted),
	}
	if isError {
		ref.ErrorType = "tool_error"
		ref.ErrorMessage = errorMessageOf(in.Raw, data)
		ref.Message = "Tool returned an error; payload saved for inspection"
	}

	create := s.db.FileRecord.Create().
		SetID(fileID).
		SetSessionID(in.SessionID).
		SetToolID(in.ToolID).
		SetFileName(fileName).
		SetFilePath(filePath).
		SetIsError(isError).
		SetSummary(toMap(summary)).
		SetErrorType(ref.ErrorType).
		SetErrorMessage(ref.ErrorMessage)
	if in.QueryParameters != nil {
		create.SetQueryParameters(in.QueryParameters)
	}
	if in.Call != nil {
		create.SetCall(toMap(in.Call))
	}
	if _, err := create.Save(ctx); err != nil {
		_ = os.Remove(filePath)
		return nil, fmt.Errorf("failed to persist file record: %w", err)
	}

	if err := s.writeMetadataMirror(ctx, in.SessionID); err != nil {
		s.logger.Warn("Failed to write metadata mirror",
			"session_id", in.SessionID, "error", err)
	}

	// Error payloads are never mirrored to the remote workspace.
	if s.uploader != nil && s.cfg.UploadToWorkspace && !isError {
		ws, err := s.uploader.Upload(ctx, in.AuthToken, fileName, filePath, dataType)
		if err != nil {
			s.logger.Warn("Workspace upload failed",
				"session_id", in.SessionID, "file", fileName, "error", err)
		} else {
			ref.Workspace = ws
			if err := s.db.FileRecord.UpdateOneID(fileID).
				SetWorkspace(toMap(ws)).
				Exec(ctx); err != nil {
				s.logger.Warn("Failed to record workspace info",
					"file_id", fileID, "error", err)
			}
		}
	}

	return ref, nil
}

// GetFile returns the file reference for a stored file.
func (s *Store) GetFile(ctx context.Context, fileID string) (*models.FileReference, error) {
	rec, err := s.db.FileRecord.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return recordToReference(rec), nil
}

// SessionFiles lists all file references for a session in creation order.
func (s *Store) SessionFiles(ctx context.Context, sessionID string) ([]*models.FileReference, error) {
	recs, err := s.db.FileRecord.Query().
		Where(filerecord.SessionID(sessionID)).
		Order(ent.Asc(filerecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]*models.FileReference, len(recs))
	for i, rec := range recs {
		refs[i] = recordToReference(rec)
	}
	return refs, nil
}

// DeleteSessionFiles removes all on-disk files and records for a session.
func (s *Store) DeleteSessionFiles(ctx context.Context, sessionID string) error {
	if _, err := s.db.FileRecord.Delete().
		Where(filerecord.SessionID(sessionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete file records: %w", err)
	}
	if err := os.RemoveAll(s.SessionDir(sessionID)); err != nil {
		return fmt.Errorf("failed to remove session directory: %w", err)
	}
	return nil
}

// writeMetadataMirror rewrites the session's metadata.json from the
// database. Downstream file tools read this mirror instead of querying.
func (s *Store) writeMetadataMirror(ctx context.Context, sessionID string) error {
	refs, err := s.SessionFiles(ctx, sessionID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(map[string]any{
		"session_id": sessionID,
		"files":      refs,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.SessionDir(sessionID), "metadata.json"), data, 0o644)
}

func recordToReference(rec *ent.FileRecord) *models.FileReference {
	ref := &models.FileReference{
		Type:            models.FileReferenceType,
		FileID:          rec.ID,
		FileName:        rec.FileName,
		FilePath:        rec.FilePath,
		IsError:         rec.IsError,
		QueryParameters: rec.QueryParameters,
		ErrorType:       rec.ErrorType,
		ErrorMessage:    rec.ErrorMessage,
	}
	fromMap(rec.Summary, &ref.Summary)
	if rec.Call != nil {
		call := &models.ReplayCall{}
		fromMap(rec.Call, call)
		ref.Call = call
	}
	if rec.Workspace != nil {
		ws := &models.WorkspaceInfo{}
		fromMap(rec.Workspace, ws)
		ref.Workspace = ws
	}
	return ref
}

func serialize(data any, dataType string) ([]byte, error) {
	switch dataType {
	case models.DataTypeFasta, models.DataTypeCSV, models.DataTypeTSV, models.DataTypeText:
		if s, ok := data.(string); ok {
			return []byte(s), nil
		}
	}
	return json.MarshalIndent(data, "", "  ")
}

func sanitizeToolID(toolID string) string {
	sanitized := filenameSanitizer.ReplaceAllString(toolID, "_")
	return strings.Trim(sanitized, "_")
}

func errorMessageOf(raw map[string]any, data any) string {
	for _, v := range []any{data, raw} {
		if m, ok := v.(map[string]any); ok {
			if msg, ok := m["message"].(string); ok && msg != "" {
				return msg
			}
			if msg, ok := m["error_message"].(string); ok && msg != "" {
				return msg
			}
		}
	}
	return "tool returned an error payload"
}

// toMap converts a typed struct to the map form stored in JSON columns.
func toMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]any{}
	}
	return m
}

func fromMap(m map[string]any, out any) {
	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, out)
}
