package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
)

type fakeSheets struct {
	tabs    map[string]bool
	cleared []string
	written map[string][][]interface{}
	err     error
}

func (f *fakeSheets) EnsureTab(_ context.Context, _, tab string) (bool, error) {
	if f.tabs == nil {
		f.tabs = map[string]bool{}
	}
	if f.tabs[tab] {
		return false, nil
	}
	f.tabs[tab] = true
	return true, nil
}

func (f *fakeSheets) ClearTab(_ context.Context, _, tab string) error {
	f.cleared = append(f.cleared, tab)
	return nil
}

func (f *fakeSheets) WriteRows(_ context.Context, _, tab string, rows [][]interface{}) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.written == nil {
		f.written = map[string][][]interface{}{}
	}
	f.written[tab] = rows
	return len(rows), nil
}

func TestSheetsExporterWritesHeaderAndRows(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sheets := &fakeSheets{tabs: map[string]bool{"Saved": true}}
	exp := &sheetsExporter{client: sheets, now: func() time.Time { return fixed }}

	jobs := []domain.Job{
		{ID: "1", Title: "Go Engineer", Company: "Acme", Salary: "$100k"},
		{ID: "2", Title: "Designer", Company: "Globex"},
	}
	res, err := exp.ExportSaved(context.Background(), jobs, tools.ExportTarget{SpreadsheetID: "sheet", Tab: "Saved", ClearTab: true})
	if err != nil {
		t.Fatalf("ExportSaved: %v", err)
	}

	if res.WrittenRows != 2 || !res.CompletedAt.Equal(fixed) {
		t.Errorf("result = %+v", res)
	}
	if len(sheets.cleared) != 1 || sheets.cleared[0] != "Saved" {
		t.Errorf("cleared = %v", sheets.cleared)
	}

	rows := sheets.written["Saved"]
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "ID" || rows[1][2] != "Acme" || rows[2][1] != "Designer" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestSheetsExporterNewTabSkipsClear(t *testing.T) {
	sheets := &fakeSheets{}
	exp := &sheetsExporter{client: sheets, now: time.Now}

	_, err := exp.ExportSaved(context.Background(), []domain.Job{{ID: "1"}}, tools.ExportTarget{SpreadsheetID: "s", Tab: "Fresh", ClearTab: true})
	if err != nil {
		t.Fatalf("ExportSaved: %v", err)
	}
	if !sheets.tabs["Fresh"] {
		t.Error("tab should have been created")
	}
	if len(sheets.cleared) != 0 {
		t.Errorf("new tab should not be cleared, got %v", sheets.cleared)
	}
}

func TestSheetsExporterNotConfigured(t *testing.T) {
	var exp *sheetsExporter
	res, err := exp.ExportSaved(context.Background(), nil, tools.ExportTarget{SpreadsheetID: "sheet", Tab: "Saved"})
	if err == nil {
		t.Fatal("expected an error without a client")
	}
	if res.Message == "" {
		t.Error("result should explain the missing configuration")
	}
}

func TestSheetsExporterWriteError(t *testing.T) {
	exp := &sheetsExporter{client: &fakeSheets{err: errors.New("quota")}, now: time.Now}
	_, err := exp.ExportSaved(context.Background(), []domain.Job{{ID: "1"}}, tools.ExportTarget{SpreadsheetID: "s", Tab: "T"})
	if err == nil {
		t.Fatal("expected write error")
	}
}
