package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/session"
)

// RefreshResult is returned by jobs_refresh
type RefreshResult struct {
	Seq            uint64 `json:"seq"`
	Status         string `json:"status"`
	Count          int    `json:"count"`
	Error          string `json:"error,omitempty"`
	ErrorKind      string `json:"error_kind,omitempty"`
	RetryAvailable bool   `json:"retry_available"`
}

// SearchParams defines the arguments for the jobs_search tool
type SearchParams struct {
	Query string `json:"query" jsonschema:"Case-insensitive text matched against job title and company; empty shows every job"`
}

// ListResult is the visible listing
type ListResult struct {
	Query string              `json:"query"`
	Total int                 `json:"total"`
	Jobs  []domain.JobSummary `json:"jobs"`
}

// WithJobs registers jobs_refresh, jobs_search and jobs_list
func WithJobs(s Session) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_refresh",
			Description: "Fetch the job listing again. Only the newest refresh is applied; on failure the listing is empty and the refresh can be retried",
		}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *noParams) (*sdkmcp.CallToolResult, any, error) {
			res := s.Refresh(ctx)
			out := RefreshResult{
				Seq:            res.Seq,
				Status:         string(res.Status),
				Count:          res.Count,
				RetryAvailable: res.RetryAvailable,
			}
			if res.Err != nil {
				out.Error = res.Err.Error()
				out.ErrorKind = string(res.ErrKind)
			}

			switch res.Status {
			case session.RefreshFailed:
				reg.logger.Warn("jobs_refresh failed", "kind", res.ErrKind, "err", res.Err)
				return errorResult(fmt.Sprintf("No jobs available (%s). Call jobs_refresh to retry.", res.ErrKind)), out, nil
			case session.RefreshStale:
				return textResult("A newer refresh superseded this one."), out, nil
			default:
				return textResult(fmt.Sprintf("Loaded %d job(s).", res.Count)), out, nil
			}
		})

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_search",
			Description: "Set the search text and return the matching jobs",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, params *SearchParams) (*sdkmcp.CallToolResult, any, error) {
			query := ""
			if params != nil {
				query = params.Query
			}
			jobs := s.SetQuery(query)
			return textResult(fmt.Sprintf("%d job(s) match %q.", len(jobs), query)), listResult(s, jobs), nil
		})

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_list",
			Description: "Return the jobs matching the current search text, with their saved flag",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ *noParams) (*sdkmcp.CallToolResult, any, error) {
			jobs := s.Listing()
			return textResult(fmt.Sprintf("%d job(s) visible.", len(jobs))), listResult(s, jobs), nil
		})
	}
}

func listResult(s Session, jobs []domain.JobSummary) ListResult {
	st := s.Status()
	return ListResult{Query: st.Query, Total: st.Jobs, Jobs: jobs}
}
