package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/application"
	"github.com/honeycarbs/jobboard/internal/session"
)

// ApplyUpdateParams defines the arguments for apply_update; omitted fields keep their value
type ApplyUpdateParams struct {
	Name        *string `json:"name,omitempty" jsonschema:"Applicant full name"`
	Email       *string `json:"email,omitempty" jsonschema:"Applicant email address"`
	Phone       *string `json:"phone,omitempty" jsonschema:"Phone number; non-digits are dropped, 11 digits required"`
	CoverLetter *string `json:"cover_letter,omitempty" jsonschema:"Cover letter text"`
}

// ApplicationResult describes the form in progress
type ApplicationResult struct {
	JobID    string            `json:"job_id"`
	JobTitle string            `json:"job_title"`
	Company  string            `json:"company"`
	State    string            `json:"state"`
	Draft    application.Draft `json:"draft"`
}

// SubmitResult is returned by apply_submit
type SubmitResult struct {
	Accepted     bool                      `json:"accepted"`
	Field        string                    `json:"field,omitempty"`
	Reason       string                    `json:"reason,omitempty"`
	Confirmation *application.Confirmation `json:"confirmation,omitempty"`
}

// WithApply registers the apply_* tools
func WithApply(s Session) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "apply_open",
			Description: "Start an application for a job from the listing or the saved jobs",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, params *JobParams) (*sdkmcp.CallToolResult, any, error) {
			if params == nil || params.JobID == "" {
				return nil, nil, fmt.Errorf("apply_open: job_id is required")
			}
			j, err := s.OpenApplication(params.JobID)
			if err != nil {
				return nil, nil, err
			}

			out := ApplicationResult{JobID: j.ID, JobTitle: j.Title, Company: j.Company, State: string(application.StateEmpty)}
			return textResult(fmt.Sprintf("Applying for %s at %s.", j.Title, j.Company)), out, nil
		})

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "apply_update",
			Description: "Fill in application fields",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, params *ApplyUpdateParams) (*sdkmcp.CallToolResult, any, error) {
			var u session.ApplicationUpdate
			if params != nil {
				u = session.ApplicationUpdate{
					Name:        params.Name,
					Email:       params.Email,
					Phone:       params.Phone,
					CoverLetter: params.CoverLetter,
				}
			}

			st, err := s.UpdateApplication(u)
			if err != nil {
				return nil, nil, err
			}

			out := ApplicationResult{
				JobID:    st.Job.ID,
				JobTitle: st.Job.Title,
				Company:  st.Job.Company,
				State:    string(st.State),
				Draft:    st.Draft,
			}
			return textResult("Application updated."), out, nil
		})

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "apply_submit",
			Description: "Validate and submit the application. A rejected application stays open for correction",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ *noParams) (*sdkmcp.CallToolResult, any, error) {
			c, err := s.SubmitApplication()

			var ve *application.ValidationError
			switch {
			case errors.As(err, &ve):
				out := SubmitResult{Field: ve.Field, Reason: ve.Err.Error()}
				return errorResult(fmt.Sprintf("Application rejected: %s.", ve.Err)), out, nil
			case err != nil:
				return nil, nil, err
			}

			reg.logger.Info("application accepted", "application_id", c.ID, "job_id", c.JobID)
			return textResult(c.Message), SubmitResult{Accepted: true, Confirmation: &c}, nil
		})

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "apply_cancel",
			Description: "Discard the application in progress",
		}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ *noParams) (*sdkmcp.CallToolResult, any, error) {
			if err := s.CancelApplication(); err != nil {
				return nil, nil, err
			}
			return textResult("Application cancelled."), nil, nil
		})
	}
}
