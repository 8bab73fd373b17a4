//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	wire.Build(
		// Storage
		provideKV,
		provideBridge,

		// Listing
		provideJobProvider,
		provideJobService,

		// Session
		provideSession,
		provideScheduler,

		// Export
		provideExporter,

		newResources,
	)

	return nil, nil, nil
}
