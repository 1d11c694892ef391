package nlmkit

import (
	"context"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// DownloadService downloads generated artifacts to local files. The
// writing is done server-side; the client only names the destination.
type DownloadService struct {
	caller ToolCaller
}

// DownloadOption configures Artifact.
type DownloadOption func(*downloadOptions)

type downloadOptions struct {
	artifactID   string
	outputFormat string
}

// WithDownloadArtifactID downloads a specific artifact rather than the
// latest of the type.
func WithDownloadArtifactID(artifactID string) DownloadOption {
	return func(o *downloadOptions) { o.artifactID = artifactID }
}

// WithOutputFormat sets the download format. Default is json.
func WithOutputFormat(format string) DownloadOption {
	return func(o *downloadOptions) { o.outputFormat = format }
}

// Artifact downloads an artifact of the given type to outputPath.
func (d *DownloadService) Artifact(ctx context.Context, notebookID, artifactType, outputPath string, opts ...DownloadOption) (map[string]any, error) {
	o := downloadOptions{outputFormat: "json"}
	for _, opt := range opts {
		opt(&o)
	}
	return d.caller.CallTool(ctx, nlmcontract.ToolDownloadArtifact, map[string]any{
		"notebook_id":   notebookID,
		"artifact_type": artifactType,
		"output_path":   outputPath,
		"artifact_id":   nilIfEmpty(o.artifactID),
		"output_format": o.outputFormat,
	})
}
