package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/application"
	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/saved"
	"github.com/honeycarbs/jobboard/internal/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Session is the part of session.Session the tools drive
type Session interface {
	Refresh(ctx context.Context) session.RefreshResult
	Status() session.Status
	SetQuery(text string) []domain.JobSummary
	Listing() []domain.JobSummary
	ToggleSaved(id string) (bool, error)
	SavedJobs() []domain.Job
	OpenSavedView() saved.Snapshot
	RemoveFromSavedView(id string) ([]domain.Job, error)
	CloseSavedView(merge bool) (int, error)
	OpenApplication(jobID string) (domain.Job, error)
	UpdateApplication(u session.ApplicationUpdate) (session.ApplicationStatus, error)
	SubmitApplication() (application.Confirmation, error)
	CancelApplication() error
}

var _ Session = (*session.Session)(nil)

// Option configures which tools are registered
type Option func(*registry)

type registry struct {
	server *sdkmcp.Server
	logger *logging.Logger
}

// Register applies the provided tool options
func Register(server *sdkmcp.Server, logger *logging.Logger, opts ...Option) {
	if logger == nil {
		logger = logging.NewNop()
	}
	reg := &registry{server: server, logger: logger.Named("tools")}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
}

// noParams is the input of tools that take no arguments
type noParams struct{}
