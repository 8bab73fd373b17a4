package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/db"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	adzunaProvider "github.com/honeycarbs/jobboard/internal/domain/job/providers/adzuna"
	emplloProvider "github.com/honeycarbs/jobboard/internal/domain/job/providers/empllo"
	fileProvider "github.com/honeycarbs/jobboard/internal/domain/job/providers/file"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	"github.com/honeycarbs/jobboard/internal/repository"
	"github.com/honeycarbs/jobboard/internal/session"
	"github.com/honeycarbs/jobboard/internal/storage"
	filestore "github.com/honeycarbs/jobboard/internal/storage/file"
	"github.com/honeycarbs/jobboard/internal/storage/memory"
	neo4jstore "github.com/honeycarbs/jobboard/internal/storage/neo4j"
	pgstore "github.com/honeycarbs/jobboard/internal/storage/postgres"
	redisstore "github.com/honeycarbs/jobboard/internal/storage/redis"
	"github.com/honeycarbs/jobboard/pkg/adzuna"
	"github.com/honeycarbs/jobboard/pkg/logging"
	n4j "github.com/honeycarbs/jobboard/pkg/neo4j"
	sheetsclient "github.com/honeycarbs/jobboard/pkg/sheets"
)

// Resources holds everything the tools need
type Resources struct {
	Session   *session.Session
	Scheduler *session.Scheduler // nil when REFRESH_INTERVAL is empty
	Exporter  tools.SavedExporter
	SheetsID  string
}

// provideKV opens the configured saved-jobs backend
func provideKV(ctx context.Context, cfg config.Config, logger *logging.Logger) (repository.KV, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case config.BackendFile:
		kv, err := filestore.NewKV(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("file store initialized", "dir", cfg.Store.Dir)
		return kv, noop, nil

	case config.BackendRedis:
		rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("redis store initialized")
		return redisstore.NewKV(rdb, ""), func() { _ = rdb.Close() }, nil

	case config.BackendPostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		kv := pgstore.NewKV(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("postgres store initialized")
		return kv, pool.Close, nil

	case config.BackendNeo4j:
		client, err := n4j.NewClient(ctx, n4j.Config{
			URI:      cfg.Neo4j.URI,
			Username: cfg.Neo4j.Username,
			Password: cfg.Neo4j.Password,
		})
		if err != nil {
			return nil, nil, err
		}
		kv := neo4jstore.NewKV(client)
		if err := kv.EnsureConstraint(ctx); err != nil {
			_ = client.Close(ctx)
			return nil, nil, err
		}
		logger.Info("Neo4j store initialized", "uri", cfg.Neo4j.URI)
		cleanup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Close(ctx)
		}
		return kv, cleanup, nil

	default:
		logger.Info("memory store initialized; saved jobs are lost on restart")
		return memory.NewKV(), noop, nil
	}
}

// provideJobProvider builds the configured listing source
func provideJobProvider(cfg config.Config) (job.Provider, error) {
	switch cfg.Jobs.Source {
	case config.SourceAdzuna:
		client, err := adzuna.NewClient(adzuna.Config{
			AppID:   cfg.Adzuna.AppID,
			AppKey:  cfg.Adzuna.AppKey,
			Country: cfg.Adzuna.Country,
		})
		if err != nil {
			return nil, err
		}
		return adzunaProvider.NewProvider(client, cfg.Adzuna.Query, cfg.Adzuna.Location)

	case config.SourceFile:
		return fileProvider.NewProvider(cfg.Jobs.File)

	default:
		return emplloProvider.NewProvider(emplloProvider.Config{URL: cfg.Jobs.URL}), nil
	}
}

func provideJobService(cfg config.Config, provider job.Provider, logger *logging.Logger) (job.Service, error) {
	return job.NewService(
		job.WithProvider(provider),
		job.WithLimit(cfg.Jobs.Limit),
		job.WithLogger(logger),
	)
}

func provideBridge(kv repository.KV, cfg config.Config, logger *logging.Logger) *storage.Bridge {
	return storage.NewBridge(kv, cfg.Store.Key, logger)
}

func provideSession(ctx context.Context, svc job.Service, bridge *storage.Bridge, logger *logging.Logger) (*session.Session, error) {
	return session.New(ctx, svc, bridge, logger)
}

func provideScheduler(sess *session.Session, cfg config.Config, logger *logging.Logger) *session.Scheduler {
	if cfg.RefreshInterval == "" {
		return nil
	}
	return session.NewScheduler(sess, cfg.RefreshInterval, logger)
}

// provideExporter returns an exporter that reports "not configured" when no
// credentials are set
func provideExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) tools.SavedExporter {
	exp := &sheetsExporter{now: time.Now}
	if cfg.Sheets.CredentialsPath == "" {
		return exp
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{
		CredentialsPath: cfg.Sheets.CredentialsPath,
	})
	if err != nil {
		logger.Warn("failed to initialize Google Sheets client", "err", err)
		return exp
	}

	logger.Info("Google Sheets client initialized")
	exp.client = client
	return exp
}

func newResources(sess *session.Session, sched *session.Scheduler, exporter tools.SavedExporter, cfg config.Config) *Resources {
	return &Resources{
		Session:   sess,
		Scheduler: sched,
		Exporter:  exporter,
		SheetsID:  cfg.Sheets.SpreadsheetID,
	}
}

// Start begins scheduled refreshes, or runs a single refresh when none are
// configured
func (r *Resources) Start(ctx context.Context) error {
	if r.Scheduler != nil {
		if err := r.Scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		return nil
	}
	go r.Session.Refresh(ctx)
	return nil
}
