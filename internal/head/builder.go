// internal/head/builder.go
//
// The Builder collects what a page wants inside its <head> element.  It is
// scoped to one request: actions push a title and tags, and the layout
// template emits them.
//
// Features
// --------
//   - SetTitle    – single <title> tag (last call wins).
//   - Meta, Link  – raw tags, deduplicated by exact text.
//   - Script      – script src URLs, rendered as <script defer src=…>.
//
// Tags passed to Meta and Link are trusted markup written by actions, never
// user input.
package head

import (
	"html/template"
	"strings"
)

// Builder is owned by a single request goroutine and is not locked.
type Builder struct {
	title   string
	metas   []string
	links   []string
	scripts []string
	seen    map[string]struct{}
}

func New() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// SetTitle overrides the page <title>.
func (b *Builder) SetTitle(t string) { b.title = t }

// Title returns an escaped <title> tag or an empty string.
func (b *Builder) Title() template.HTML {
	if b.title == "" {
		return ""
	}
	return template.HTML("<title>" + template.HTMLEscapeString(b.title) + "</title>")
}

func (b *Builder) Meta(tag string) { b.add("meta:"+tag, &b.metas, tag) }
func (b *Builder) Link(tag string) { b.add("link:"+tag, &b.links, tag) }

// Script queues an external script.  The src is attribute-escaped.
func (b *Builder) Script(src string) {
	tag := `<script defer src="` + template.HTMLEscapeString(src) + `"></script>`
	b.add("script:"+src, &b.scripts, tag)
}

func (b *Builder) add(key string, tgt *[]string, tag string) {
	if _, dup := b.seen[key]; dup {
		return
	}
	b.seen[key] = struct{}{}
	*tgt = append(*tgt, tag)
}

// Tags returns metas, links, then scripts, in insertion order.
func (b *Builder) Tags() template.HTML {
	all := make([]string, 0, len(b.metas)+len(b.links)+len(b.scripts))
	all = append(all, b.metas...)
	all = append(all, b.links...)
	all = append(all, b.scripts...)
	return template.HTML(strings.Join(all, "\n"))
}
