package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	html, err := Render("")
	require.NoError(t, err)
	assert.Equal(t, "", html)
}

func TestRenderBasicMarkdown(t *testing.T) {
	html, err := Render("# Maintenance window\n\nWe will be **down** tonight.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Maintenance window</h1>")
	assert.Contains(t, html, "<strong>down</strong>")
}

func TestRenderStripsScript(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "raw script tag", body: "hello <script>alert('x')</script> world"},
		{name: "script inside markdown", body: "# Title\n\n<script src=\"https://evil.example/x.js\"></script>"},
		{name: "script via code fence neighbor", body: "text\n\n<SCRIPT>alert(1)</SCRIPT>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := Render(tt.body)
			require.NoError(t, err)
			assert.NotContains(t, html, "<script")
			assert.NotContains(t, html, "alert(")
		})
	}
}

func TestRenderKeepsAllowedImage(t *testing.T) {
	html, err := Render(`<img src="https://example.com/chart.png" alt="status chart">`)
	require.NoError(t, err)
	assert.Contains(t, html, `src="https://example.com/chart.png"`)
	assert.Contains(t, html, `alt="status chart"`)
}

func TestRenderStripsImageExtras(t *testing.T) {
	html, err := Render(`<img src="https://example.com/x.png" alt="x" onerror="alert(1)" width="600">`)
	require.NoError(t, err)
	assert.Contains(t, html, `src="https://example.com/x.png"`)
	assert.NotContains(t, html, "onerror")
	assert.NotContains(t, html, "width")
}

func TestRenderKeepsAnchorHref(t *testing.T) {
	html, err := Render(`[status page](https://status.example.com)`)
	require.NoError(t, err)
	assert.Contains(t, html, `href="https://status.example.com"`)
	assert.Contains(t, html, ">status page</a>")
}

func TestRenderStripsAnchorOnclick(t *testing.T) {
	html, err := Render(`<a href="https://example.com" onclick="steal()">link</a>`)
	require.NoError(t, err)
	assert.Contains(t, html, `href="https://example.com"`)
	assert.NotContains(t, html, "onclick")
	assert.NotContains(t, html, "steal")
}

func TestRenderIdempotentPerInput(t *testing.T) {
	body := "# Title\n\nSome *emphasis*, a [link](https://example.com) and <img src=\"/x.png\" alt=\"x\">."

	first, err := Render(body)
	require.NoError(t, err)
	second, err := Render(body)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
