package head

import (
	"strings"
	"testing"
)

func TestBuilder(t *testing.T) {
	b := New()
	if b.Title() != "" {
		t.Fatalf("empty builder rendered title %q", b.Title())
	}

	b.SetTitle("Tom & Jerry")
	b.SetTitle("Contact <us>")
	if got := string(b.Title()); got != "<title>Contact &lt;us&gt;</title>" {
		t.Fatalf("Title = %q", got)
	}

	b.Meta(`<meta charset="utf-8">`)
	b.Meta(`<meta charset="utf-8">`)
	b.Link(`<link rel="icon" href="/favicon.ico">`)
	b.Script("/assets/contact.js")

	tags := string(b.Tags())
	if strings.Count(tags, "charset") != 1 {
		t.Errorf("meta not deduplicated: %s", tags)
	}
	if !strings.HasSuffix(tags, `<script defer src="/assets/contact.js"></script>`) {
		t.Errorf("script tag missing or out of order: %s", tags)
	}
}
