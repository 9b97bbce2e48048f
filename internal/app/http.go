// internal/app/http.go
//
// HTTP adapters around the route table and the AJAX dispatcher.

package app

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/yanizio/landing/internal/ajax"
	"github.com/yanizio/landing/internal/logger"
	"github.com/yanizio/landing/internal/metrics"
	"github.com/yanizio/landing/internal/route"
)

// servePage resolves and dispatches a GET or HEAD request.
func (a *App) servePage(w http.ResponseWriter, r *http.Request) {
	controller, action := route.Resolve(r.URL.Path, route.Defaults{
		Controller: a.cfg.Routing.DefaultController,
		Action:     a.cfg.Routing.DefaultAction,
	})

	page, err := a.routes.Dispatch(controller, action, route.NewContext(r))
	status := http.StatusOK
	switch {
	case errors.Is(err, route.ErrControllerNotFound):
		status = http.StatusNotFound
		writeText(w, status, route.ErrControllerNotFound.Error())
	case errors.Is(err, route.ErrActionNotFound):
		status = http.StatusNotFound
		writeText(w, status, route.ErrActionNotFound.Error())
	case err != nil:
		status = http.StatusInternalServerError
		logger.FromContext(r.Context()).Errorw("action failed",
			"controller", controller, "action", action, "err", err)
		writeText(w, status, "template error")
	default:
		w.Header().Set("Content-Type", page.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(page.Body)))
		w.WriteHeader(status)
		if r.Method != http.MethodHead {
			_, _ = io.WriteString(w, page.Body)
		}
	}

	// Unresolved pairs are bucketed so random paths cannot explode label
	// cardinality.
	if status == http.StatusNotFound {
		controller, action = "unknown", "unknown"
	}
	metrics.PageRequestsTotal.WithLabelValues(controller, action, strconv.Itoa(status)).Inc()
}

// serveAjax decodes a POST body and writes the dispatcher's answer as JSON.
func (a *App) serveAjax(w http.ResponseWriter, r *http.Request) {
	var out any
	req, err := ajax.Decode(r, a.cfg.HTTP.MaxBodyBytes)
	if err != nil {
		logger.FromContext(r.Context()).Infow("ajax decode failed", "err", err)
		metrics.AjaxCallsTotal.WithLabelValues("", "error").Inc()
		out = ajax.ErrMalformedRequest
	} else {
		out = a.ajax.Handle(r.Context(), req)
	}
	writeJSON(w, out)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// writeJSON encodes v in full before writing so the body is never partial.
func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
