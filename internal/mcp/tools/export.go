package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// ExportParams defines the arguments for the saved_export tool
type ExportParams struct {
	SpreadsheetID string `json:"spreadsheet_id,omitempty" jsonschema:"Google Sheets document ID; defaults to GOOGLE_SHEETS_ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, default Saved"`
	ClearTab      bool   `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
}

// ExportTarget is where saved jobs are written
type ExportTarget struct {
	SpreadsheetID string
	Tab           string
	ClearTab      bool
}

// ExportResult describes the summary returned after export
type ExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab"`
	WrittenRows   int       `json:"written_rows"`
	CompletedAt   time.Time `json:"completed_at"`
	Message       string    `json:"message,omitempty"`
}

// SavedExporter writes saved jobs to a spreadsheet
type SavedExporter interface {
	ExportSaved(ctx context.Context, jobs []domain.Job, target ExportTarget) (ExportResult, error)
}

const defaultExportTab = "Saved"

// WithSavedExport registers the saved_export tool
func WithSavedExport(s Session, exporter SavedExporter, defaultSpreadsheetID string) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "saved_export",
			Description: "Export the saved jobs to Google Sheets",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params *ExportParams) (*sdkmcp.CallToolResult, any, error) {
			target := ExportTarget{SpreadsheetID: defaultSpreadsheetID, Tab: defaultExportTab}
			if params != nil {
				if params.SpreadsheetID != "" {
					target.SpreadsheetID = params.SpreadsheetID
				}
				if params.Tab != "" {
					target.Tab = params.Tab
				}
				target.ClearTab = params.ClearTab
			}
			if target.SpreadsheetID == "" {
				return nil, nil, fmt.Errorf("saved_export: spreadsheet_id is required")
			}

			res, err := exporter.ExportSaved(ctx, s.SavedJobs(), target)
			if err != nil {
				reg.logger.Warn("saved_export failed", "spreadsheet_id", target.SpreadsheetID, "err", err)
				return nil, nil, err
			}
			return textResult(res.Message), res, nil
		})
	}
}
