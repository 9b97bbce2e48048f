// internal/route/context.go
//
// Per-request Context handed to every Action.  It replaces any shared
// request state: the router and actions only see what is passed here.

package route

import (
	"net/http"

	"github.com/yanizio/landing/internal/head"
	"github.com/yanizio/landing/internal/requestinfo"
)

// Context is created once per page request.
type Context struct {
	Request    *http.Request
	Info       *requestinfo.RequestInfo // nil when the Enrich middleware did not run
	Head       *head.Builder
	Controller string // filled by Dispatch
	Action     string // filled by Dispatch
}

// NewContext initialises a Context with an empty head builder and the
// request info attached by requestinfo.Enrich, if any.
func NewContext(r *http.Request) *Context {
	return &Context{
		Request: r,
		Info:    requestinfo.FromContext(r.Context()),
		Head:    head.New(),
	}
}
