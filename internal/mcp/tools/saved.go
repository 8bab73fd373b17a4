package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// JobParams identifies one job
type JobParams struct {
	JobID string `json:"job_id" jsonschema:"Job identifier as returned by jobs_list"`
}

// CloseViewParams defines the arguments for saved_close
type CloseViewParams struct {
	Merge *bool `json:"merge,omitempty" jsonschema:"Apply removals made in the view to the saved jobs (default true)"`
}

type ToggleResult struct {
	JobID string `json:"job_id"`
	Saved bool   `json:"saved"`
}

type SavedResult struct {
	Count int          `json:"count"`
	Jobs  []domain.Job `json:"jobs"`
}

type ViewResult struct {
	IDs     []string     `json:"ids"`
	Jobs    []domain.Job `json:"jobs"`
	TakenAt time.Time    `json:"taken_at,omitempty"`
}

type CloseViewResult struct {
	Merged  bool `json:"merged"`
	Removed int  `json:"removed"`
	Saved   int  `json:"saved"`
}

// WithSaved registers the saved_* tools
func WithSaved(s Session) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "saved_toggle",
			Description: "Save a job, or unsave it if it is already saved",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, params *JobParams) (*sdkmcp.CallToolResult, any, error) {
			if params == nil || params.JobID == "" {
				return nil, nil, fmt.Errorf("saved_toggle: job_id is required")
			}
			isSaved, err := s.ToggleSaved(params.JobID)
			if err != nil {
				return nil, nil, err
			}

			msg := "Job saved."
			if !isSaved {
				msg = "Job removed from saved jobs."
			}
			return textResult(msg), ToggleResult{JobID: params.JobID, Saved: isSaved}, nil
		})

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "saved_list",
			Description: "Return every saved job in the order it was saved",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ *noParams) (*sdkmcp.CallToolResult, any, error) {
			jobs := s.SavedJobs()
			return textResult(fmt.Sprintf("%d saved job(s).", len(jobs))), SavedResult{Count: len(jobs), Jobs: jobs}, nil
		})

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "saved_open",
			Description: "Open the saved jobs view with a snapshot of the saved jobs",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ *noParams) (*sdkmcp.CallToolResult, any, error) {
			snap := s.OpenSavedView()
			if snap.Len() == 0 {
				return textResult("You have no saved jobs."), ViewResult{IDs: []string{}, Jobs: []domain.Job{}, TakenAt: snap.TakenAt}, nil
			}
			return textResult(fmt.Sprintf("%d saved job(s).", snap.Len())), ViewResult{IDs: snap.IDs, Jobs: snap.Records, TakenAt: snap.TakenAt}, nil
		})

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "saved_remove",
			Description: "Remove a job from the open saved jobs view. The change reaches saved jobs when the view is closed with merge",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, params *JobParams) (*sdkmcp.CallToolResult, any, error) {
			if params == nil || params.JobID == "" {
				return nil, nil, fmt.Errorf("saved_remove: job_id is required")
			}
			jobs, err := s.RemoveFromSavedView(params.JobID)
			if err != nil {
				return nil, nil, err
			}
			return textResult(fmt.Sprintf("%d job(s) left in view.", len(jobs))), ViewResult{IDs: domain.IDs(jobs), Jobs: jobs}, nil
		})

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "saved_close",
			Description: "Close the saved jobs view, optionally merging its removals",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, params *CloseViewParams) (*sdkmcp.CallToolResult, any, error) {
			merge := true
			if params != nil && params.Merge != nil {
				merge = *params.Merge
			}
			removed, err := s.CloseSavedView(merge)
			if err != nil {
				return nil, nil, err
			}

			out := CloseViewResult{Merged: merge, Removed: removed, Saved: len(s.SavedJobs())}
			return textResult(fmt.Sprintf("View closed, %d job(s) unsaved.", removed)), out, nil
		})
	}
}
