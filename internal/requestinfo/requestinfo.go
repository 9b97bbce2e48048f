//
//  internal/requestinfo/requestinfo.go
//
//  Per-request metadata: user-agent fingerprint, client IP with optional
//  geolocation, URL, and timestamp.  The debug page prints it.  These
//  structs are inert, so they are safe to log or JSON-encode.
//
//  Dependencies
//  • github.com/avct/uasurfer          (UA parsing)
//  • github.com/oschwald/geoip2-golang (MaxMind lookup, optional)
//

package requestinfo

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	surfer "github.com/avct/uasurfer"
	"github.com/oschwald/geoip2-golang"
)

//
//  -----------------------------
//  Struct definitions
//  -----------------------------
//

// UA holds the parsed user-agent properties.
type UA struct {
	Raw         string `json:"raw"`
	Browser     string `json:"browser"`   // "BrowserChrome", "BrowserFirefox", …
	Version     string `json:"version"`   // "124.0.6367"
	OS          string `json:"os"`        // "OSMacOSX", "OSWindows", …
	OSVersion   string `json:"osVersion"` // "14.5"
	Device      string `json:"device"`    // "Desktop", "Mobile", "Tablet", "Other"
	Platform    string `json:"platform"`  // "PlatformMac", "PlatformLinux", …
	IsBot       bool   `json:"isBot"`
	PrimaryLang string `json:"lang"` // first Accept-Language tag
}

// Geo holds IP-based geolocation hints.  Best-effort; fields stay empty
// when no database is configured or the address is unknown.
type Geo struct {
	IP         net.IP `json:"ip"`
	CountryISO string `json:"country,omitempty"`
	City       string `json:"city,omitempty"`
}

// RequestInfo is attached to the request context by Enrich.
type RequestInfo struct {
	UA        UA        `json:"ua"`
	Geo       Geo       `json:"geo"`
	URL       *url.URL  `json:"-"`
	Timestamp time.Time `json:"ts"`
}

//
//  -----------------------------
//  Geo database
//  -----------------------------
//

var geoReader atomic.Pointer[geoip2.Reader]

// OpenGeo opens a GeoLite2-City database.  Lookups stay disabled until it
// succeeds.  Call once from main().
func OpenGeo(path string) error {
	r, err := geoip2.Open(path)
	if err != nil {
		return fmt.Errorf("open GeoLite2 DB %s: %w", path, err)
	}
	if old := geoReader.Swap(r); old != nil {
		_ = old.Close()
	}
	return nil
}

// CloseGeo releases the database handle, if any.
func CloseGeo() {
	if r := geoReader.Swap(nil); r != nil {
		_ = r.Close()
	}
}

//
//  -----------------------------
//  Context helpers
//  -----------------------------
//

type ctxKey struct{}

// NewContext returns ctx carrying info.
func NewContext(ctx context.Context, info *RequestInfo) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

// FromContext returns the pointer stored by Enrich, or nil.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

//
//  -----------------------------
//  Internal helpers
//  -----------------------------
//

// parseUA converts raw headers into our UA struct.
func parseUA(uaHeader, acceptLang string) UA {
	u := surfer.Parse(uaHeader)

	info := UA{
		Raw:         uaHeader,
		Browser:     u.Browser.Name.String(),
		Version:     versionToString(u.Browser.Version),
		OS:          u.OS.Name.String(),
		OSVersion:   versionToString(u.OS.Version),
		Platform:    u.OS.Platform.String(),
		IsBot:       u.IsBot(),
		PrimaryLang: primaryLang(acceptLang),
	}

	switch u.DeviceType {
	case surfer.DeviceComputer:
		info.Device = "Desktop"
	case surfer.DeviceTablet:
		info.Device = "Tablet"
	case surfer.DevicePhone, surfer.DeviceWearable:
		info.Device = "Mobile"
	default:
		info.Device = "Other"
	}
	return info
}

// versionToString renders 17.0.0 → "17", 17.3.0 → "17.3", 17.3.1 → "17.3.1".
func versionToString(v surfer.Version) string {
	if v.Major == 0 && v.Minor == 0 && v.Patch == 0 {
		return ""
	}
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Minor != 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return strconv.Itoa(int(v.Major))
}

// primaryLang extracts the first language tag before any ";q=" weight.
func primaryLang(al string) string {
	if al == "" {
		return ""
	}
	tag := strings.TrimSpace(strings.Split(al, ",")[0])
	if i := strings.Index(tag, ";"); i != -1 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}

// lookupGeo returns best-effort Geo data using the shared reader.
func lookupGeo(ip net.IP) Geo {
	r := geoReader.Load()
	if r == nil || ip == nil {
		return Geo{IP: ip}
	}
	rec, err := r.City(ip)
	if err != nil {
		return Geo{IP: ip}
	}
	return Geo{
		IP:         ip,
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
}
