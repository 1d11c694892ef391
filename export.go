package nlmkit

import (
	"context"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// ExportService exports artifacts to Google Docs and Sheets.
type ExportService struct {
	caller ToolCaller
}

// ToDocs exports an artifact to Google Docs. title is optional.
func (e *ExportService) ToDocs(ctx context.Context, notebookID, artifactID, title string) (map[string]any, error) {
	return e.export(ctx, notebookID, artifactID, nlmcontract.ExportTypeDocs, title)
}

// ToSheets exports an artifact to Google Sheets. title is optional.
func (e *ExportService) ToSheets(ctx context.Context, notebookID, artifactID, title string) (map[string]any, error) {
	return e.export(ctx, notebookID, artifactID, nlmcontract.ExportTypeSheets, title)
}

func (e *ExportService) export(ctx context.Context, notebookID, artifactID, exportType, title string) (map[string]any, error) {
	return e.caller.CallTool(ctx, nlmcontract.ToolExportArtifact, map[string]any{
		"notebook_id": notebookID,
		"artifact_id": artifactID,
		"export_type": exportType,
		"title":       nilIfEmpty(title),
	})
}
