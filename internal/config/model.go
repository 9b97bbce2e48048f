// internal/config/model.go
//
// Typed configuration model for the landing front controller.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from four overlay layers:
//
//   • built-in defaults                         – lowest precedence,
//   • optional `conf/.env`                      – dotenv values,
//   • `conf/global.yaml`                        – primary static file,
//   • `LANDING_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • Durations are written as Go duration strings ("10s", "1m").
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"    validate:"required,hostname_port"`
	ForceHTTPS   bool          `koanf:"force_https"`
	ReadTimeout  time.Duration `koanf:"read_timeout"   validate:"gte=0"`
	WriteTimeout time.Duration `koanf:"write_timeout"  validate:"gte=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"   validate:"gte=0"`
	MaxBodyBytes int64         `koanf:"max_body_bytes" validate:"gte=0"`
	MetricsPath  string        `koanf:"metrics_path"   validate:"omitempty,startswith=/"`
}

//
// Routing section
//

// Routing names the controller and action used when the request path does
// not carry them, e.g. “/” → Application/index.
type Routing struct {
	DefaultController string `koanf:"default_controller" validate:"required"`
	DefaultAction     string `koanf:"default_action"     validate:"required"`
}

//
// Views section
//

// Views locates page templates and static assets.  Relative directories are
// resolved against Paths.Root by the loader.
type Views struct {
	Dir       string `koanf:"dir"        validate:"required"`
	AssetsDir string `koanf:"assets_dir"`
	Cache     bool   `koanf:"cache"`
	CacheSize int    `koanf:"cache_size" validate:"gte=1"`
}

// GeoIP points at an optional GeoLite2-City database.  Empty disables the
// lookup; the debug page then shows the client IP only.
type GeoIP struct {
	Database string `koanf:"database"`
}

// Log configures the zap logger.
type Log struct {
	Dir   string `koanf:"dir"   validate:"required"`
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.
type Paths struct {
	Root string // LANDING_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and shared read-only
// for the app lifetime.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Routing Routing `koanf:"routing"`
	Views   Views   `koanf:"views"`
	GeoIP   GeoIP   `koanf:"geoip"`
	Log     Log     `koanf:"log"`
	Paths   Paths   `koanf:"-"` // not loaded from config files
}
