// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from four layers (highest
precedence last):

  1. Built-in defaults (listen address, timeouts, routing defaults).
  2. Optional `<root>/conf/.env`, exported into the process environment.
  3. `conf/global.yaml`, when present.
  4. Environment variables prefixed `LANDING_`, where `__` maps to “.”
     (e.g., `LANDING_HTTP__LISTEN_ADDR → http.listen_addr`).

After merging, the tree is unmarshalled into typed structs, relative paths
are anchored at the root, and the result is validated.  The caller owns
the returned pointer; settings are read once at startup.

Instrumentation
---------------
  • DEBUG spans: root discovery, YAML read.
  • ERROR spans: YAML parse, env overlay, unmarshal, validation failures.
  • INFO span: final “config loaded” with key highlights.
  • Logs use the global sugared logger (`zap.S()`), a no-op until
    `internal/logger` installs the real one.
*/
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const envPrefix = "LANDING_"

// defaults seeds every optional key so a bare checkout runs without YAML.
var defaults = map[string]any{
	"http.listen_addr":           ":8080",
	"http.read_timeout":          "10s",
	"http.write_timeout":         "15s",
	"http.idle_timeout":          "60s",
	"http.max_body_bytes":        int64(64 << 10),
	"http.metrics_path":          "/metrics",
	"routing.default_controller": "Application",
	"routing.default_action":     "index",
	"views.dir":                  "views",
	"views.assets_dir":           "views/assets",
	"views.cache":                true,
	"views.cache_size":           64,
	"log.dir":                    "logs",
	"log.level":                  "info",
}

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves LANDING_ROOT or climbs directories until conf/global.yaml
// is found.  Falls back to the working directory.
func rootDir() string {
	if r := os.Getenv(envPrefix + "ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "global.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads defaults, .env, YAML, env overrides, validates, and caches Config.
func Load() (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, err
		}
		zap.S().Debugw("config yaml missing, using defaults", "file", yamlPath)
	} else {
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	// Env overrides: LANDING_HTTP__LISTEN_ADDR → http.listen_addr
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	cfg.Paths.Root = root
	cfg.Views.Dir = anchor(root, cfg.Views.Dir)
	cfg.Views.AssetsDir = anchor(root, cfg.Views.AssetsDir)
	cfg.Log.Dir = anchor(root, cfg.Log.Dir)
	cfg.GeoIP.Database = anchor(root, cfg.GeoIP.Database)

	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"force_https", cfg.HTTP.ForceHTTPS,
		"views", cfg.Views.Dir,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// envKey maps LANDING_HTTP__LISTEN_ADDR to http.listen_addr.  LANDING_ROOT
// is consumed by rootDir and maps to "root", which no struct field claims.
func envKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	return strings.ToLower(strings.ReplaceAll(s, "__", "."))
}

// anchor joins p to root unless p is empty or already absolute.
func anchor(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
