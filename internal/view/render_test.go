package view

import (
	"context"
	"errors"
	"os"
	"strings"
	"syscall"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layout.html": {Data: []byte(`{{ define "header" }}<h1>{{ .Title }}</h1>{{ end }}`)},
		"index.html":  {Data: []byte(`{{ template "header" . }}<p>{{ .Body }}</p>`)},
		"pair.html":   {Data: []byte(`{{ with dict "a" 1 }}{{ .a }}{{ end }}`)},
	}
}

func TestRender_UsesSharedLayout(t *testing.T) {
	r := New(testFS(), Options{Cache: true, CacheSize: 4})

	out, err := r.Render("index", map[string]string{"Title": "Hi", "Body": "<x>"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "<h1>Hi</h1><p>&lt;x&gt;</p>" {
		t.Fatalf("output = %q", out)
	}
}

func TestRender_Dict(t *testing.T) {
	out, err := New(testFS(), Options{}).Render("pair", nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "1" {
		t.Fatalf("output = %q", out)
	}
}

func TestRender_NotFound(t *testing.T) {
	r := New(testFS(), Options{})
	for _, name := range []string{"missing", "../etc/passwd"} {
		if _, err := r.Render(name, nil); !errors.Is(err, ErrNotFound) {
			t.Errorf("Render(%q) err = %v, want ErrNotFound", name, err)
		}
	}
}

func TestRender_CacheKeepsParsedSet(t *testing.T) {
	fsys := testFS()
	r := New(fsys, Options{Cache: true, CacheSize: 4})
	if _, err := r.Render("index", map[string]string{}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Edits are invisible until Purge because the parsed set is cached.
	fsys["index.html"] = &fstest.MapFile{Data: []byte(`changed`)}
	out, _ := r.Render("index", map[string]string{})
	if strings.Contains(out, "changed") {
		t.Fatal("cached set was re-parsed")
	}

	r.Purge()
	out, _ = r.Render("index", map[string]string{})
	if out != "changed" {
		t.Fatalf("after Purge output = %q", out)
	}
}

func TestRender_NoCacheReparses(t *testing.T) {
	fsys := testFS()
	r := New(fsys, Options{})
	_, _ = r.Render("pair", nil)

	fsys["pair.html"] = &fstest.MapFile{Data: []byte(`two`)}
	out, err := r.Render("pair", nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "two" {
		t.Fatalf("output = %q, want two", out)
	}
}

func TestPurgeOn_Signal(t *testing.T) {
	fsys := testFS()
	r := New(fsys, Options{Cache: true, CacheSize: 4})
	if _, err := r.Render("pair", nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	fsys["pair.html"] = &fstest.MapFile{Data: []byte(`reloaded`)}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal)
	done := make(chan struct{})
	go func() {
		r.PurgeOn(ctx, sig)
		close(done)
	}()

	// The second send is accepted only after the first purge returned.
	sig <- syscall.SIGHUP
	sig <- syscall.SIGHUP
	cancel()
	<-done

	out, err := r.Render("pair", nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "reloaded" {
		t.Fatalf("output = %q, want reloaded", out)
	}
}
