package route

import (
	"errors"
	"net/http/httptest"
	"testing"
)

func page(body string) Action {
	return func(*Context) (Page, error) {
		return Page{ContentType: "text/plain", Body: body}, nil
	}
}

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(
		Route{"Application", "index", page("index")},
		Route{"robots.txt", "index", page("robots")},
		Route{"debug", "index", page("debug")},
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func TestDispatch_Found(t *testing.T) {
	tbl := newTestTable(t)
	rc := NewContext(httptest.NewRequest("GET", "/", nil))

	p, err := tbl.Dispatch("Application", "index", rc)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if p.Body != "index" {
		t.Fatalf("body = %q, want index", p.Body)
	}
	if rc.Controller != "Application" || rc.Action != "index" {
		t.Fatalf("context not stamped: %s/%s", rc.Controller, rc.Action)
	}
}

func TestDispatch_NotFound(t *testing.T) {
	tbl := newTestTable(t)
	rc := NewContext(httptest.NewRequest("GET", "/", nil))

	cases := []struct {
		controller, action string
		want               error
	}{
		{"Unknown", "index", ErrControllerNotFound},
		{"application", "index", ErrControllerNotFound}, // case-sensitive
		{"Application", "missing", ErrActionNotFound},
		{"debug", "Index", ErrActionNotFound},
	}
	for _, tc := range cases {
		_, err := tbl.Dispatch(tc.controller, tc.action, rc)
		if !errors.Is(err, tc.want) {
			t.Errorf("Dispatch(%q, %q) err = %v, want %v", tc.controller, tc.action, err, tc.want)
		}
	}
}

func TestDispatch_PropagatesActionError(t *testing.T) {
	boom := errors.New("boom")
	tbl, err := NewTable(Route{"c", "a", func(*Context) (Page, error) { return Page{}, boom }})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if _, err := tbl.Dispatch("c", "a", &Context{}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestNewTable_RejectsDuplicatesAndNil(t *testing.T) {
	if _, err := NewTable(Route{"c", "a", page("1")}, Route{"c", "a", page("2")}); err == nil {
		t.Error("duplicate route accepted")
	}
	if _, err := NewTable(Route{"c", "a", nil}); err == nil {
		t.Error("nil handler accepted")
	}
	if n := newTestTable(t).Len(); n != 3 {
		t.Errorf("Len = %d, want 3", n)
	}
}

func TestResolve(t *testing.T) {
	def := Defaults{Controller: "Application", Action: "index"}
	cases := []struct {
		path, controller, action string
	}{
		{"/", "Application", "index"},
		{"", "Application", "index"},
		{"/robots.txt", "robots.txt", "index"},
		{"/debug", "debug", "index"},
		{"/debug/", "debug", "index"},
		{"/Application/index", "Application", "index"},
		{"/shop/cart/extra", "shop", "cart"},
	}
	for _, tc := range cases {
		c, a := Resolve(tc.path, def)
		if c != tc.controller || a != tc.action {
			t.Errorf("Resolve(%q) = %s/%s, want %s/%s", tc.path, c, a, tc.controller, tc.action)
		}
	}
}
