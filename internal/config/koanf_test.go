// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Store.Backend != BackendDuckDB {
		t.Errorf("Store.Backend = %q, want duckdb", cfg.Store.Backend)
	}
	if cfg.Recommend.MaxCourses != 5 || cfg.Recommend.MaxCareers != 5 {
		t.Errorf("Recommend limits = %d/%d, want 5/5", cfg.Recommend.MaxCourses, cfg.Recommend.MaxCareers)
	}
	if cfg.Recommend.CacheTTL != 10*time.Minute {
		t.Errorf("Recommend.CacheTTL = %v, want 10m", cfg.Recommend.CacheTTL)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"STORE_BACKEND", "store.backend"},
		{"DUCKDB_PATH", "database.path"},
		{"ARTIFACTS_DIR", "artifacts.dir"},
		{"COURSE_CATALOG_PATH", "artifacts.course_catalog"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"RECOMMEND_CACHE_TTL", "recommend.cache_ttl"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Artifacts.Dir != "/data/artifacts" {
		t.Errorf("Artifacts.Dir = %q, want /data/artifacts", cfg.Artifacts.Dir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	chdirTemp(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://pathwise.example.com")
	t.Setenv("RECOMMEND_CACHE_TTL", "90s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://pathwise.example.com" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Recommend.CacheTTL != 90*time.Second {
		t.Errorf("Recommend.CacheTTL = %v, want 90s", cfg.Recommend.CacheTTL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 8181
artifacts:
  dir: /srv/pathwise
store:
  backend: badger
  badger_in_memory: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "8282")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8282 {
		t.Errorf("Server.Port = %d, want env override 8282", cfg.Server.Port)
	}
	if cfg.Artifacts.Dir != "/srv/pathwise" {
		t.Errorf("Artifacts.Dir = %q, want /srv/pathwise", cfg.Artifacts.Dir)
	}
	if cfg.Store.Backend != BackendBadger || !cfg.Store.BadgerInMemory {
		t.Errorf("Store = %+v, want in-memory badger", cfg.Store)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	chdirTemp(t)
	t.Setenv("STORE_BACKEND", "postgres")

	if _, err := Load(); err == nil {
		t.Error("Load() with unknown backend succeeded, want error")
	}
}

func TestArtifactsResolve(t *testing.T) {
	t.Parallel()

	a := ArtifactsConfig{Dir: "/data/artifacts"}
	if got := a.Resolve("course_catalog.csv"); got != filepath.Join("/data/artifacts", "course_catalog.csv") {
		t.Errorf("Resolve(relative) = %q", got)
	}
	if got := a.Resolve("/opt/models/svm.json"); got != "/opt/models/svm.json" {
		t.Errorf("Resolve(absolute) = %q", got)
	}
	if got := a.Resolve(""); got != "" {
		t.Errorf("Resolve(\"\") = %q, want empty", got)
	}
}

// chdirTemp moves into an empty directory so a stray config.yaml is not picked up.
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}
