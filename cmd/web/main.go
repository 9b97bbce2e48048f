// cmd/web/main.go
//
// Landing front controller – HTTP entry point.
//
// Start-up sequence
// -----------------
//
//  1. Load env vars (jail-wide file → .env fallback), in init().
//
//  2. Load configuration (defaults → conf/.env → conf/global.yaml →
//     LANDING_* env overrides) and validate it.
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Open the optional GeoLite2 database used by the debug page.
//
//  5. Build the view renderer and the application (route table, AJAX
//     dispatcher, chi router with middleware, /metrics).
//
//  6. Serve until SIGINT/SIGTERM, then shut down gracefully.  SIGHUP
//     purges the view cache so edited templates are re-parsed.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/yanizio/landing/internal/app"
	"github.com/yanizio/landing/internal/config"
	"github.com/yanizio/landing/internal/logger"
	"github.com/yanizio/landing/internal/requestinfo"
	"github.com/yanizio/landing/internal/server"
	"github.com/yanizio/landing/internal/view"
	"github.com/yanizio/landing/internal/viewhelpers"
)

const serverEnvPath = "/usr/local/etc/landing/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	//
	// ── 2.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	//
	// ── 3.  Logger ──────────────────────────────────────────────────────
	//
	logOut, err := logger.New(cfg.Log.Dir, runningInTTY(), cfg.Log.Level)
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	//
	// ── 4.  Optional GeoIP database ─────────────────────────────────────
	//
	if db := cfg.GeoIP.Database; db != "" {
		if err := requestinfo.OpenGeo(db); err != nil {
			logOut.Warnw("geoip disabled", "db", db, "err", err)
		} else {
			logOut.Infow("geoip database opened", "db", db)
			defer requestinfo.CloseGeo()
		}
	}

	//
	// ── 5.  Views + application ─────────────────────────────────────────
	//
	views := view.New(os.DirFS(cfg.Views.Dir), view.Options{
		Cache:     cfg.Views.Cache,
		CacheSize: cfg.Views.CacheSize,
		Funcs:     viewhelpers.FuncMap(),
	})

	a, err := app.New(cfg, views, logOut)
	if err != nil {
		logOut.Fatalw("build application", "err", err)
	}

	//
	// ── 6.  Serve until signalled ───────────────────────────────────────
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go views.PurgeOn(ctx, hup)

	srv := server.New(cfg.HTTP, a.Handler())
	logOut.Infow("starting", "force_https", cfg.HTTP.ForceHTTPS, "views", cfg.Views.Dir)
	if err := server.Run(ctx, srv); err != nil {
		logOut.Errorw("http server", "err", err)
		return
	}
	logOut.Infow("server stopped")
}
