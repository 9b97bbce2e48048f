// internal/requestinfo/middleware.go
//
// HTTP middleware that enriches each request with *RequestInfo.
//
/*
Context
--------
Runs after chi's RealIP middleware, so r.RemoteAddr already holds the
left-most forwarded client address.  For every request it:

  1. Parses the User-Agent header and Accept-Language list.
  2. Performs a GeoLite2 lookup when a database is open.
  3. Stores a `*RequestInfo` in the request context under an unexported
     key, so actions and templates can read it without reparsing.

At debug level each invocation logs the client IP, browser, device, and
bot flag through the request-scoped logger, so the line carries the same
request id as the access log.
*/
package requestinfo

import (
	"net"
	"net/http"
	"time"

	"github.com/yanizio/landing/internal/logger"
)

// Enrich wraps an http.Handler, attaches *RequestInfo, and forwards.
func Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := &RequestInfo{
			UA:        parseUA(r.UserAgent(), r.Header.Get("Accept-Language")),
			Geo:       lookupGeo(clientIP(r)),
			URL:       r.URL,
			Timestamp: time.Now().UTC(),
		}

		logger.FromContext(r.Context()).Debugw("request info",
			"ip", info.Geo.IP,
			"country", info.Geo.CountryISO,
			"browser", info.UA.Browser,
			"device", info.UA.Device,
			"bot", info.UA.IsBot,
		)

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), info)))
	})
}

// clientIP parses r.RemoteAddr, which may or may not carry a port.
func clientIP(r *http.Request) net.IP {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return net.ParseIP(r.RemoteAddr)
}
