// internal/app/app.go
//
// Application front controller.
//
// Context
// -------
// App owns the static route table, the AJAX dispatcher, and the view
// renderer.  Handler() assembles the chi router:
//
//   1. chi RequestID, RealIP, and Recoverer.
//   2. Access logging, security headers, optional HTTPS redirect.
//   3. Request-info enrichment (UA, IP, geo) for page requests.
//   4. Routes:
//        • /metrics                 – Prometheus (path from config)
//        • GET|HEAD /assets/*       – static files
//        • GET|HEAD /*              – (controller, action) page dispatch
//        • POST /*                  – AJAX dispatcher, whatever the path
//
// Request life-cycle
// ------------------
// Page requests resolve the path into a (controller, action) pair and
// dispatch through the route table.  Unknown pairs answer 404 with a plain
// "controller not found" or "action not found" body.  AJAX requests are
// decoded and handed to the dispatcher; its answer is always HTTP 200 JSON.

package app

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/landing/internal/ajax"
	"github.com/yanizio/landing/internal/config"
	"github.com/yanizio/landing/internal/middleware"
	"github.com/yanizio/landing/internal/requestinfo"
	"github.com/yanizio/landing/internal/route"
)

// Renderer is the view collaborator: execute a named view with data.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// App is built once at startup and shared read-only by all requests.
type App struct {
	cfg    *config.Config
	log    *zap.SugaredLogger
	views  Renderer
	routes *route.Table
	ajax   *ajax.Dispatcher
}

// New wires the route table and dispatcher.  It fails only when the route
// table is inconsistent.
func New(cfg *config.Config, views Renderer, log *zap.SugaredLogger) (*App, error) {
	a := &App{
		cfg:   cfg,
		log:   log,
		views: views,
		ajax:  ajax.New(),
	}

	routes, err := route.NewTable(
		route.Route{Controller: "Application", Action: "index", Handler: a.actionIndex},
		route.Route{Controller: "robots.txt", Action: "index", Handler: a.actionRobots},
		route.Route{Controller: "debug", Action: "index", Handler: a.actionDebug},
	)
	if err != nil {
		return nil, err
	}
	a.routes = routes
	return a, nil
}

// Handler returns the fully wrapped root handler.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(a.log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Security)
	r.Use(middleware.ForceHTTPS(a.cfg.HTTP.ForceHTTPS))

	if p := a.cfg.HTTP.MetricsPath; p != "" {
		r.Method(http.MethodGet, p, promhttp.Handler())
	}

	if dir := a.cfg.Views.AssetsDir; dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			files := http.StripPrefix("/assets/", http.FileServer(http.Dir(dir)))
			r.Get("/assets/*", files.ServeHTTP)
			r.Head("/assets/*", files.ServeHTTP)
		} else {
			a.log.Warnw("assets dir unavailable, /assets disabled", "dir", dir)
		}
	}

	r.Group(func(pages chi.Router) {
		pages.Use(requestinfo.Enrich)
		pages.Get("/*", a.servePage)
		pages.Head("/*", a.servePage)
	})
	r.Post("/*", a.serveAjax)

	return r
}
