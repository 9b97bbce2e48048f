// internal/app/actions.go
//
// Page actions bound in the route table.

package app

import (
	"encoding/json"
	"strings"

	"github.com/yanizio/landing/internal/route"
	"github.com/yanizio/landing/internal/viewhelpers"
)

const (
	contentHTML = "text/html; charset=utf-8"
	contentText = "text/plain; charset=utf-8"
)

// robotsPolicy blocks every crawler from every path.
var robotsPolicy = strings.Join([]string{"User-Agent: *", "Disallow: /"}, "\n")

// actionIndex renders the contact page.
func (a *App) actionIndex(rc *route.Context) (route.Page, error) {
	rc.Head.SetTitle("Contact us")
	rc.Head.Script(viewhelpers.Asset("contact.js"))
	return a.renderPage(rc, "index")
}

// actionDebug renders the request-info page: route, client IP, parsed
// user-agent, and geo hints, plus the same data as indented JSON.
func (a *App) actionDebug(rc *route.Context) (route.Page, error) {
	rc.Head.SetTitle("Debug")
	rc.Head.Meta(`<meta name="robots" content="noindex">`)

	dump, err := json.MarshalIndent(map[string]any{
		"controller": rc.Controller,
		"action":     rc.Action,
		"path":       rc.Request.URL.Path,
		"query":      rc.Request.URL.RawQuery,
		"info":       rc.Info,
	}, "", "  ")
	if err != nil {
		return route.Page{}, err
	}
	return a.renderPage(rc, "debug", "Dump", string(dump))
}

// actionRobots returns the fixed robots.txt policy.
func (a *App) actionRobots(*route.Context) (route.Page, error) {
	return route.Page{ContentType: contentText, Body: robotsPolicy}, nil
}

// renderPage seeds the common head tags and executes view.  extra holds
// additional key/value pairs for the template data.
func (a *App) renderPage(rc *route.Context, view string, extra ...any) (route.Page, error) {
	rc.Head.Meta(`<meta charset="utf-8">`)
	rc.Head.Meta(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	rc.Head.Link(`<link rel="stylesheet" href="` + viewhelpers.Asset("site.css") + `">`)

	data := map[string]any{
		"Ctx":  rc,
		"Head": rc.Head,
		"Info": rc.Info,
	}
	for i := 0; i+1 < len(extra); i += 2 {
		if k, ok := extra[i].(string); ok {
			data[k] = extra[i+1]
		}
	}

	body, err := a.views.Render(view, data)
	if err != nil {
		return route.Page{}, err
	}
	return route.Page{ContentType: contentHTML, Body: body}, nil
}
