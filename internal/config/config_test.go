package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LOG_LEVEL", "MCP_HOST", "PORT", "JOBS_SOURCE", "JOBS_URL", "JOBS_FILE", "JOBS_LIMIT",
		"ADZUNA_APP_ID", "ADZUNA_APP_KEY", "ADZUNA_COUNTRY", "ADZUNA_QUERY", "ADZUNA_LOCATION",
		"STORE_BACKEND", "STORE_DIR", "STORE_KEY", "REDIS_URL", "DATABASE_URL",
		"NEO4J_URI", "NEO4J_USERNAME", "NEO4J_PASSWORD", "REFRESH_INTERVAL",
		"GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEETS_ID",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("fromEnv: %v", err)
	}
	if cfg.Port != "8080" || cfg.Host != "0.0.0.0" || cfg.LogLevel != "info" {
		t.Errorf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Jobs.Source != SourceEmpllo || cfg.Jobs.Limit != 100 {
		t.Errorf("unexpected jobs defaults: %+v", cfg.Jobs)
	}
	if cfg.Store.Backend != BackendMemory || cfg.Store.Key != "savedJobs" {
		t.Errorf("unexpected store defaults: %+v", cfg.Store)
	}
}

func TestMissingVarsAggregated(t *testing.T) {
	clearEnv(t)
	t.Setenv("JOBS_SOURCE", "adzuna")
	t.Setenv("STORE_BACKEND", "neo4j")

	_, err := fromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, name := range []string{"ADZUNA_APP_ID", "ADZUNA_APP_KEY", "NEO4J_URI", "NEO4J_PASSWORD"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"JOBS_LIMIT", "many", "JOBS_LIMIT"},
		{"JOBS_SOURCE", "linkedin", "JOBS_SOURCE"},
		{"STORE_BACKEND", "mongo", "STORE_BACKEND"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := fromEnv()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestBackendRequirementsSatisfied(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JOBS_SOURCE", "FILE")
	t.Setenv("JOBS_FILE", "jobs.json")
	t.Setenv("JOBS_LIMIT", "25")

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("fromEnv: %v", err)
	}
	if cfg.Jobs.Source != SourceFile || cfg.Jobs.Limit != 25 {
		t.Errorf("jobs = %+v", cfg.Jobs)
	}
}
