// internal/view/render.go
//
// View engine: template lookup, func-map injection, and an LRU of parsed
// *template.Template sets.
//
// Public helpers
// --------------
//   - Render  – execute a named view and return the HTML as a string.
//   - Purge   – drop parsed sets; PurgeOn does it on a signal (SIGHUP).
//
// Lookup
// ------
// A view named "index" lives in "index.html" at the root of the views
// filesystem.  Every top-level *.html file is parsed into the same set, so
// shared blocks ({{ template "header" . }}) defined in layout.html work
// from any view.
//
// execName() chooses the template to run:
//   – If the set contains "<name>.html", we run that file.
//   – Else we fall back to "<name>" (a root defined via {{ define }}).
//
// Concurrent first renders of one view share a single parse through
// singleflight.  With caching off every render re-parses, which is what
// you want while editing templates.

package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/landing/internal/cache"
	"github.com/yanizio/landing/internal/metrics"
)

// ErrNotFound is returned when no file backs the requested view.
var ErrNotFound = errors.New("view not found")

// Options tune a Renderer.
type Options struct {
	Cache     bool
	CacheSize int
	Funcs     template.FuncMap // merged over the built-in helpers
}

// Renderer executes views from one filesystem.  Safe for concurrent use.
type Renderer struct {
	fsys  fs.FS
	funcs template.FuncMap
	lru   *cache.LRU[string, *template.Template] // nil when caching is off
	sfg   singleflight.Group
}

// New returns a Renderer reading templates from fsys.
func New(fsys fs.FS, opts Options) *Renderer {
	funcs := template.FuncMap{"dict": dict}
	for k, v := range opts.Funcs {
		funcs[k] = v
	}

	r := &Renderer{fsys: fsys, funcs: funcs}
	if opts.Cache {
		size := opts.CacheSize
		if size < 1 {
			size = 16
		}
		r.lru = cache.New[string, *template.Template](size)
	}
	return r
}

// Render executes view name with data and returns the output.
func (r *Renderer) Render(name string, data any) (string, error) {
	start := time.Now()
	defer func() {
		metrics.RenderSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	t, err := r.load(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, execName(t, name), data); err != nil {
		return "", fmt.Errorf("execute view %s: %w", name, err)
	}
	return buf.String(), nil
}

// Purge drops every cached template set.
func (r *Renderer) Purge() {
	if r.lru != nil {
		r.lru.Purge()
	}
}

// PurgeOn calls Purge each time sig delivers, until ctx is done.  main
// feeds it SIGHUP so edited views go live without a restart.
func (r *Renderer) PurgeOn(ctx context.Context, sig <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-sig:
			r.Purge()
			zap.S().Infow("view cache purged", "signal", s.String())
		}
	}
}

//
// internal: load
//

func (r *Renderer) load(name string) (*template.Template, error) {
	if r.lru != nil {
		if t, ok := r.lru.Get(name); ok {
			return t, nil
		}
	}

	v, err, _ := r.sfg.Do(name, func() (any, error) {
		return r.parse(name)
	})
	if err != nil {
		return nil, err
	}
	t := v.(*template.Template)
	if r.lru != nil {
		r.lru.Add(name, t)
	}
	return t, nil
}

// parse builds the template set for name from every top-level *.html.
func (r *Renderer) parse(name string) (*template.Template, error) {
	file := name + ".html"
	if !fs.ValidPath(file) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if _, err := fs.Stat(r.fsys, file); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	t, err := template.New(name).Funcs(r.funcs).ParseFS(r.fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse views for %s: %w", name, err)
	}
	return t, nil
}

//
// helpers
//

// execName prefers the file-based template "<name>.html" over a root
// template defined in code as "<name>".
func execName(t *template.Template, name string) string {
	if t.Lookup(name+".html") != nil {
		return name + ".html"
	}
	return name
}

// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}
