package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/typemitr/typemitr/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "5m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "typemitr"
user = "typemitr"
password = "typemitr"
ssl_mode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = "15m"
conn_timeout = "5s"

[storage]
enabled = false

[api]
base_path = "/api"
max_request_size = "2MB"

[api.pagination]
default_page_size = 25
max_page_size = 50

[generator]
model = "gpt-4o"
temperature = 0.7
max_tokens = 2000
timeout = "60s"
session_ttl = "30m"
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"

[generator]
model = "gpt-4o-mini"
`

const minimalConfig = `
[database]
name = "typemitr"
user = "typemitr"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "typemitr" {
		t.Errorf("database name: got %s", cfg.Database.Name)
	}
	if cfg.API.Pagination.DefaultPageSize != 25 {
		t.Errorf("default page size: got %d, want 25", cfg.API.Pagination.DefaultPageSize)
	}
	if cfg.API.MaxRequestSizeBytes() != 2*1024*1024 {
		t.Errorf("max request size: got %d, want 2MB", cfg.API.MaxRequestSizeBytes())
	}
	if cfg.Generator.Model != "gpt-4o" {
		t.Errorf("generator model: got %s", cfg.Generator.Model)
	}
	if cfg.Generator.SessionTTLDuration() != 30*time.Minute {
		t.Errorf("session ttl: got %v, want 30m", cfg.Generator.SessionTTLDuration())
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.production.toml", overlayConfig)
	chdir(t, dir)
	t.Setenv("TYPEMITR_ENV", "production")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (overlay)", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("database host: got %s, want prodhost (overlay)", cfg.Database.Host)
	}
	if cfg.Generator.Model != "gpt-4o-mini" {
		t.Errorf("generator model: got %s, want gpt-4o-mini (overlay)", cfg.Generator.Model)
	}
	if cfg.Database.Name != "typemitr" {
		t.Errorf("database name: got %s, want typemitr (base)", cfg.Database.Name)
	}
}

func TestLoadMinimalDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want default 8080", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("base path: got %s, want default /api", cfg.API.BasePath)
	}
	if cfg.Generator.Model != "gpt-4o" {
		t.Errorf("generator model: got %s, want default gpt-4o", cfg.Generator.Model)
	}
	if cfg.Generator.Temperature != 0.7 {
		t.Errorf("generator temperature: got %v, want default 0.7", cfg.Generator.Temperature)
	}
	if cfg.Generator.MaxTokens != 2000 {
		t.Errorf("generator max tokens: got %d, want default 2000", cfg.Generator.MaxTokens)
	}
	if cfg.Storage.Enabled {
		t.Error("storage should default to disabled")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)
	t.Setenv("TYPEMITR_DB_HOST", "envhost")
	t.Setenv("TYPEMITR_GENERATOR_MODEL", "gpt-4.1")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Database.Host != "envhost" {
		t.Errorf("database host: got %s, want envhost", cfg.Database.Host)
	}
	if cfg.Generator.Model != "gpt-4.1" {
		t.Errorf("generator model: got %s, want gpt-4.1", cfg.Generator.Model)
	}
	if cfg.Generator.APIKey != "sk-test" {
		t.Errorf("generator api key not read from environment")
	}
}

func TestLoadInvalidGenerator(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig+`
[generator]
temperature = 3.5
`)
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Error("expected error for temperature above 2")
	}
}
