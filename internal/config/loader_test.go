// internal/config/loader_test.go
//
// Loader tests.  Each test points LANDING_ROOT at a temp directory holding
// its own conf/global.yaml so the repository's file never leaks in.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if body != "" {
		path := filepath.Join(root, "conf", "global.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write yaml: %v", err)
		}
	}
	t.Setenv("LANDING_ROOT", root)
	return root
}

func TestLoad_YAML(t *testing.T) {
	root := writeYAML(t, `
http:
  listen_addr: "127.0.0.1:9000"
  read_timeout: 3s
views:
  dir: templates
  cache: false
routing:
  default_controller: Home
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("listen_addr = %q", cfg.HTTP.ListenAddr)
	}
	if cfg.HTTP.ReadTimeout != 3*time.Second {
		t.Errorf("read_timeout = %v, want 3s", cfg.HTTP.ReadTimeout)
	}
	if cfg.HTTP.WriteTimeout != 15*time.Second {
		t.Errorf("write_timeout default lost: %v", cfg.HTTP.WriteTimeout)
	}
	if cfg.Views.Dir != filepath.Join(root, "templates") {
		t.Errorf("views.dir not anchored: %q", cfg.Views.Dir)
	}
	if cfg.Views.Cache {
		t.Errorf("views.cache = true, want false")
	}
	if cfg.Routing.DefaultController != "Home" || cfg.Routing.DefaultAction != "index" {
		t.Errorf("routing = %+v", cfg.Routing)
	}
}

func TestLoad_DefaultsWithoutYAML(t *testing.T) {
	writeYAML(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ListenAddr != ":8080" {
		t.Errorf("listen_addr = %q, want :8080", cfg.HTTP.ListenAddr)
	}
	if cfg.HTTP.MaxBodyBytes != 64<<10 {
		t.Errorf("max_body_bytes = %d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.Routing.DefaultController != "Application" {
		t.Errorf("default controller = %q", cfg.Routing.DefaultController)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	writeYAML(t, `
http:
  listen_addr: ":8080"
`)
	t.Setenv("LANDING_HTTP__LISTEN_ADDR", ":9090")
	t.Setenv("LANDING_LOG__LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ListenAddr != ":9090" {
		t.Errorf("listen_addr = %q, want :9090", cfg.HTTP.ListenAddr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	writeYAML(t, `
log:
  level: loud
`)

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "Level") {
		t.Errorf("error does not name the field: %v", err)
	}
}

func TestEnvKey(t *testing.T) {
	if got := envKey("LANDING_VIEWS__CACHE_SIZE"); got != "views.cache_size" {
		t.Fatalf("envKey = %q", got)
	}
}
