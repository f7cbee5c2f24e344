// Package markdown renders announcement bodies to sanitized HTML.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// converter keeps raw HTML in the output on purpose: markdown commonly passes
// inline HTML through, and the sanitizer below is what enforces safety. The
// allow-list must run after expansion, never instead of it.
var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

var policy = buildPolicy()

// buildPolicy defines the allow-list for rendered announcements: standard
// text and structural markup plus anchors and images, with anchors limited to
// href/name/target/rel and images to src/alt. Everything else, including event
// handler attributes and script, is stripped.
func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowStandardURLs()
	p.AllowElements(
		"p", "br", "hr", "div", "span",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li",
		"strong", "em", "b", "i", "u", "s", "del", "sub", "sup",
		"code", "pre", "blockquote",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	p.AllowAttrs("href", "name", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")

	return p
}

// Render converts markdown to sanitized HTML. Empty input renders to the
// empty string. Rendering is deterministic: the same body always yields the
// same bytes.
func Render(body string) (string, error) {
	if body == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := converter.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
