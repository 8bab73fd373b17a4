package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Listing sources
const (
	SourceEmpllo = "empllo"
	SourceAdzuna = "adzuna"
	SourceFile   = "file"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendNeo4j    = "neo4j"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	Jobs struct {
		Source string
		URL    string
		File   string
		Limit  int
	}
	Adzuna struct {
		AppID    string
		AppKey   string
		Country  string
		Query    string
		Location string
	}
	Store struct {
		Backend string
		Dir     string
		Key     string
	}
	RedisURL    string
	DatabaseURL string
	Neo4j       struct {
		URI      string
		Username string
		Password string
	}
	RefreshInterval string // cron spec, empty disables scheduled refresh
	Sheets          struct {
		CredentialsPath string
		SpreadsheetID   string
	}
}

// Load populates config from environment variables. A .env file in the
// working directory is read first when present; real env vars win.
func Load() (Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (Config, error) {
	cfg := Config{
		LogLevel: envOr("LOG_LEVEL", "info"),
		Host:     envOr("MCP_HOST", "0.0.0.0"),
		Port:     envOr("PORT", "8080"),
	}

	cfg.Jobs.Source = strings.ToLower(envOr("JOBS_SOURCE", SourceEmpllo))
	cfg.Jobs.URL = os.Getenv("JOBS_URL")
	cfg.Jobs.File = os.Getenv("JOBS_FILE")
	cfg.Jobs.Limit = 100

	cfg.Adzuna.AppID = os.Getenv("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = os.Getenv("ADZUNA_APP_KEY")
	cfg.Adzuna.Country = envOr("ADZUNA_COUNTRY", "us")
	cfg.Adzuna.Query = os.Getenv("ADZUNA_QUERY")
	cfg.Adzuna.Location = os.Getenv("ADZUNA_LOCATION")

	cfg.Store.Backend = strings.ToLower(envOr("STORE_BACKEND", BackendMemory))
	cfg.Store.Dir = envOr("STORE_DIR", "data")
	cfg.Store.Key = envOr("STORE_KEY", "savedJobs")

	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.RefreshInterval = os.Getenv("REFRESH_INTERVAL")

	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")
	cfg.Sheets.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_ID")

	var problems []string

	if v := os.Getenv("JOBS_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			problems = append(problems, fmt.Sprintf("JOBS_LIMIT must be an integer, got %q", v))
		} else {
			cfg.Jobs.Limit = n
		}
	}

	var missingVars []string

	switch cfg.Jobs.Source {
	case SourceEmpllo:
	case SourceAdzuna:
		if cfg.Adzuna.AppID == "" {
			missingVars = append(missingVars, "ADZUNA_APP_ID")
		}
		if cfg.Adzuna.AppKey == "" {
			missingVars = append(missingVars, "ADZUNA_APP_KEY")
		}
	case SourceFile:
		if cfg.Jobs.File == "" {
			missingVars = append(missingVars, "JOBS_FILE")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown JOBS_SOURCE %q", cfg.Jobs.Source))
	}

	switch cfg.Store.Backend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if cfg.RedisURL == "" {
			missingVars = append(missingVars, "REDIS_URL")
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			missingVars = append(missingVars, "DATABASE_URL")
		}
	case BackendNeo4j:
		if cfg.Neo4j.URI == "" {
			missingVars = append(missingVars, "NEO4J_URI")
		}
		if cfg.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}
		if cfg.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown STORE_BACKEND %q", cfg.Store.Backend))
	}

	if len(missingVars) > 0 {
		problems = append(problems, fmt.Sprintf("missing required environment variables: %s", strings.Join(missingVars, ", ")))
	}

	if len(problems) > 0 {
		return cfg, fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
