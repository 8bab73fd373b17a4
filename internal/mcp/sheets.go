package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
)

// sheetsWriter is the part of pkg/sheets.Client the exporter uses
type sheetsWriter interface {
	EnsureTab(ctx context.Context, spreadsheetID, tab string) (bool, error)
	ClearTab(ctx context.Context, spreadsheetID, tab string) error
	WriteRows(ctx context.Context, spreadsheetID, tab string, rows [][]interface{}) (int, error)
}

var exportHeader = []interface{}{"ID", "Title", "Company", "Salary", "Location", "Work model", "Job type", "Seniority", "URL"}

type sheetsExporter struct {
	client sheetsWriter
	now    func() time.Time
}

func (a *sheetsExporter) ExportSaved(ctx context.Context, jobs []domain.Job, target tools.ExportTarget) (tools.ExportResult, error) {
	result := tools.ExportResult{
		SpreadsheetID: target.SpreadsheetID,
		Tab:           target.Tab,
	}

	if a == nil || a.client == nil {
		result.Message = "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)"
		return result, fmt.Errorf("sheets: client not configured")
	}

	created, err := a.client.EnsureTab(ctx, target.SpreadsheetID, target.Tab)
	if err != nil {
		return result, err
	}

	// a new tab is already empty
	if target.ClearTab && !created {
		if err := a.client.ClearTab(ctx, target.SpreadsheetID, target.Tab); err != nil {
			return result, err
		}
	}

	if _, err := a.client.WriteRows(ctx, target.SpreadsheetID, target.Tab, jobRows(jobs)); err != nil {
		return result, err
	}

	result.WrittenRows = len(jobs)
	result.CompletedAt = a.now().UTC()
	result.Message = fmt.Sprintf("successfully exported %d saved job(s)", result.WrittenRows)
	return result, nil
}

// jobRows renders a header row followed by one row per job
func jobRows(jobs []domain.Job) [][]interface{} {
	values := make([][]interface{}, 0, len(jobs)+1)
	values = append(values, exportHeader)
	for _, j := range jobs {
		values = append(values, []interface{}{
			j.ID,
			j.Title,
			j.Company,
			j.Salary,
			j.Location,
			j.WorkModel,
			j.JobType,
			j.Seniority,
			j.URL,
		})
	}
	return values
}
