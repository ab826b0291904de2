package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/puppygraph/puppygraph-go/pkg/puppygraph"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
puppygraph:
  ip: 10.1.2.3
  username: svc
  password: hunter2
  query_language: cypher
app:
  port: 9090
  log_level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.PuppyGraph.IP != "10.1.2.3" || cfg.PuppyGraph.QueryLanguage != "cypher" {
		t.Errorf("PuppyGraph = %+v", cfg.PuppyGraph)
	}
	if cfg.App.Port != 9090 {
		t.Errorf("App.Port = %d, want 9090", cfg.App.Port)
	}

	host := cfg.PuppyGraph.HostConfig()
	if host.IP != "10.1.2.3" || host.Username != "svc" || host.Password != "hunter2" {
		t.Errorf("HostConfig() = %+v", host)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
puppygraph:
  ip: 127.0.0.1
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.PuppyGraph.QueryLanguage != puppygraph.QueryLanguageGremlin {
		t.Errorf("QueryLanguage = %q, want gremlin default", cfg.PuppyGraph.QueryLanguage)
	}
	if cfg.App.Port != 8080 {
		t.Errorf("App.Port = %d, want 8080 default", cfg.App.Port)
	}
}

func TestLoadConfig_InvalidQueryLanguage(t *testing.T) {
	path := writeConfig(t, `
puppygraph:
  query_language: sparql
`)

	_, err := LoadConfig(path)
	if !errors.Is(err, puppygraph.ErrInvalidQueryLanguage) {
		t.Errorf("LoadConfig() error = %v, want ErrInvalidQueryLanguage", err)
	}
}

func TestLoadConfig_ExpandsEnvVars(t *testing.T) {
	t.Setenv("PG_PASSWORD", "from-env")

	path := writeConfig(t, `
puppygraph:
  username: ${PG_USER:-puppygraph}
  password: ${PG_PASSWORD}
  query_language: gremlin
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.PuppyGraph.Password != "from-env" {
		t.Errorf("Password = %q, want value from environment", cfg.PuppyGraph.Password)
	}
	if cfg.PuppyGraph.Username != "puppygraph" {
		t.Errorf("Username = %q, want the fallback default", cfg.PuppyGraph.Username)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() error = nil, want missing-file error")
	}
}
