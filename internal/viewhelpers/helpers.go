// internal/viewhelpers/helpers.go
//
// Template helpers that pull data out of *requestinfo.RequestInfo.  Passed
// to the view renderer through view.Options.Funcs, so every template can
// call:
//
//	{{ browser .Info }} {{ browserVersion .Info }}
//	{{ os .Info }} – {{ osVersion .Info }}
//	{{ device .Info }}  {{ platform .Info }}
//	{{ clientIP .Info }} {{ country .Info }} {{ city .Info }}
//	{{ if isBot .Info }}Robot!{{ end }}
//	<link href="{{ asset "site.css" }}">
//
// Every helper accepts a nil *RequestInfo and returns the zero value.
package viewhelpers

import (
	"html/template"
	"strings"

	"github.com/yanizio/landing/internal/requestinfo"
)

// AssetPrefix is the URL path the static assets are mounted under.
const AssetPrefix = "/assets/"

// FuncMap returns the request-info and asset helpers.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"browser":        str(func(i *requestinfo.RequestInfo) string { return i.UA.Browser }),
		"browserVersion": str(func(i *requestinfo.RequestInfo) string { return i.UA.Version }),
		"os":             str(func(i *requestinfo.RequestInfo) string { return i.UA.OS }),
		"osVersion":      str(func(i *requestinfo.RequestInfo) string { return i.UA.OSVersion }),
		"device":         str(func(i *requestinfo.RequestInfo) string { return i.UA.Device }),
		"platform":       str(func(i *requestinfo.RequestInfo) string { return i.UA.Platform }),
		"lang":           str(func(i *requestinfo.RequestInfo) string { return i.UA.PrimaryLang }),
		"country":        str(func(i *requestinfo.RequestInfo) string { return i.Geo.CountryISO }),
		"city":           str(func(i *requestinfo.RequestInfo) string { return i.Geo.City }),
		"clientIP": str(func(i *requestinfo.RequestInfo) string {
			if i.Geo.IP == nil {
				return ""
			}
			return i.Geo.IP.String()
		}),
		"isBot": func(i *requestinfo.RequestInfo) bool { return i != nil && i.UA.IsBot },
		"asset": Asset,
	}
}

// Asset resolves a path relative to the assets directory to its URL.
func Asset(p string) string {
	return AssetPrefix + strings.TrimLeft(p, "/")
}

// str wraps f so a nil RequestInfo yields "".
func str(f func(*requestinfo.RequestInfo) string) func(*requestinfo.RequestInfo) string {
	return func(i *requestinfo.RequestInfo) string {
		if i == nil {
			return ""
		}
		return f(i)
	}
}
