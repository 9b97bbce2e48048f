package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yanizio/landing/internal/logger"
)

const chromeMac = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

func TestEnrich_AttachesInfo(t *testing.T) {
	var got *RequestInfo
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/debug", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	req.Header.Set("User-Agent", chromeMac)
	req.Header.Set("Accept-Language", "uk-UA;q=0.9, en;q=0.8")

	Enrich(next).ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("RequestInfo not attached")
	}
	if got.Geo.IP.String() != "203.0.113.7" {
		t.Errorf("IP = %v", got.Geo.IP)
	}
	if got.UA.Device != "Desktop" {
		t.Errorf("Device = %q, want Desktop", got.UA.Device)
	}
	if got.UA.PrimaryLang != "uk-ua" {
		t.Errorf("PrimaryLang = %q", got.UA.PrimaryLang)
	}
	if got.URL.Path != "/debug" {
		t.Errorf("URL = %v", got.URL)
	}
}

func TestFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if FromContext(req.Context()) != nil {
		t.Fatal("expected nil without middleware")
	}
}

func TestClientIP_WithoutPort(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4"
	if ip := clientIP(req); ip.String() != "198.51.100.4" {
		t.Fatalf("clientIP = %v", ip)
	}
}

func TestPrimaryLang(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"en-US,en;q=0.9": "en-us",
		"ru;q=0.8, en":   "ru",
		" FR ":           "fr",
	}
	for in, want := range cases {
		if got := primaryLang(in); got != want {
			t.Errorf("primaryLang(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEnrich_LogsWithRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core).Sugar().With("req_id", "abc-1", "method", "GET", "path", "/debug")

	req := httptest.NewRequest(http.MethodGet, "/debug", nil)
	req.Header.Set("User-Agent", chromeMac)
	req = req.WithContext(logger.WithContext(req.Context(), l))

	Enrich(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request info").All()
	if len(entries) != 1 {
		t.Fatalf("got %d request info entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["req_id"] != "abc-1" || fields["path"] != "/debug" {
		t.Fatalf("fields = %v", fields)
	}
}
