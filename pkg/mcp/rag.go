package mcp

import (
	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

// normalizeRagResult shapes a RAG-classified tool payload into the
// rag_result envelope. Documents are capped at maxDocs; field names vary
// between retrieval backends, so several spellings are tolerated.
func normalizeRagResult(page map[string]any, query string, maxDocs int) *models.RagResult {
	result := &models.RagResult{
		Type:      models.RagResultType,
		Query:     query,
		Documents: []models.RagDocument{},
	}
	if summary, ok := page["summary"].(string); ok {
		result.Summary = summary
	}

	docs := ragDocumentList(page)
	for _, raw := range docs {
		if maxDocs > 0 && len(result.Documents) >= maxDocs {
			break
		}
		doc, ok := parseRagDocument(raw)
		if !ok {
			continue
		}
		result.Documents = append(result.Documents, doc)
	}

	result.Count = len(result.Documents)
	return result
}

func ragDocumentList(page map[string]any) []any {
	for _, key := range []string{"documents", "results", "docs"} {
		if docs, ok := page[key].([]any); ok {
			return docs
		}
	}
	return nil
}

func parseRagDocument(raw any) (models.RagDocument, bool) {
	switch t := raw.(type) {
	case string:
		return models.RagDocument{Content: t}, t != ""
	case map[string]any:
		doc := models.RagDocument{}
		doc.Title, _ = t["title"].(string)
		doc.Source, _ = t["source"].(string)
		if score, ok := t["score"].(float64); ok {
			doc.Score = score
		}
		for _, key := range []string{"content", "text", "page_content"} {
			if content, ok := t[key].(string); ok && content != "" {
				doc.Content = content
				break
			}
		}
		if meta, ok := t["metadata"].(map[string]any); ok {
			doc.Metadata = meta
			if doc.Source == "" {
				doc.Source, _ = meta["source"].(string)
			}
		}
		return doc, doc.Content != ""
	default:
		return models.RagDocument{}, false
	}
}
