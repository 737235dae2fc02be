package ui

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"launchdash/internal/dashboard"
)

func newTestServer(t *testing.T, about string) *Server {
	t.Helper()
	app, _ := newTestApp(t)
	srv, err := NewServer(ServerConfig{API: app, GinMode: gin.TestMode, About: []byte(about)})
	require.NoError(t, err)
	return srv
}

func TestNewServer_RequiresAPI(t *testing.T) {
	_, err := NewServer(ServerConfig{GinMode: gin.TestMode})
	assert.Error(t, err)
}

func TestServer_Index(t *testing.T) {
	srv := newTestServer(t, "")

	rec := do(t, srv.Handler(), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "<title>SpaceX Launch Records Dashboard</title>")
	assert.Contains(t, body, `id="`+dashboard.SiteDropdownID+`"`)
	assert.Contains(t, body, `id="`+dashboard.PieChartID+`"`)
	assert.Contains(t, body, `id="`+dashboard.ScatterChartID+`"`)
	assert.Contains(t, body, `<option value="ALL" selected>All Sites</option>`)
	assert.Contains(t, body, "<strong>launch site</strong>")
}

func TestServer_SliderStartsAtDatasetBounds(t *testing.T) {
	srv := newTestServer(t, "")
	layout := srv.api.Layout()
	require.Equal(t, 9600.0, layout.Slider.Max)

	body := do(t, srv.Handler(), http.MethodGet, "/", "").Body.String()
	assert.Contains(t, body, `data-bound="low" min="0" max="9600" step="any" data-step="1000" value="0"`)
	assert.Contains(t, body, `data-bound="high" min="0" max="9600" step="any" data-step="1000" value="9600"`)
	assert.NotContains(t, body, `step="1000"`)
}

func TestServer_CustomAbout(t *testing.T) {
	srv := newTestServer(t, "# Pads\n\nSee [the manifest](https://example.com).\n\n<script>alert(1)</script>")

	body := do(t, srv.Handler(), http.MethodGet, "/", "").Body.String()
	assert.Contains(t, body, `<h1 id="pads">Pads</h1>`)
	assert.Contains(t, body, `target="_blank"`)
	assert.NotContains(t, body, "alert(1)")
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, "")

	rec := do(t, srv.Handler(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Equal(t, "ok", gjson.Get(body, "status").String())
	assert.Equal(t, int64(56), gjson.Get(body, "records").Int())
	assert.NotEmpty(t, gjson.Get(body, "dataset").String())
}

func TestServer_DelegatesAPI(t *testing.T) {
	srv := newTestServer(t, "")

	rec := do(t, srv.Handler(), http.MethodPost, "/api/callbacks/"+dashboard.PieChartID, `{"inputs":{"site-dropdown":"ALL"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"pie"`)

	rec = do(t, srv.Handler(), http.MethodPost, "/api/callbacks/unknown", `{"inputs":{}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_StaticAssets(t *testing.T) {
	srv := newTestServer(t, "")

	for _, path := range []string{"/static/js/dashboard.js", "/static/css/dashboard.css"} {
		rec := do(t, srv.Handler(), http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, strings.TrimSpace(rec.Body.String()), path)
	}
}

func TestRenderMarkdown_DropsRawHTML(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		keep   []string
		hidden []string
	}{
		{
			name:   "script block",
			src:    "Intro\n\n<script>alert(1)</script>\n\nOutro",
			keep:   []string{"Intro", "Outro"},
			hidden: []string{"alert(1)", "<script"},
		},
		{
			name:   "inline script",
			src:    "Pads <script>steal()</script> and boosters",
			keep:   []string{"Pads", "and boosters"},
			hidden: []string{"steal()", "<script"},
		},
		{
			name:   "inline style",
			src:    "Sites <style>body{display:none}</style> listed",
			keep:   []string{"Sites", "listed"},
			hidden: []string{"display:none"},
		},
		{
			name:   "plain tags keep their text",
			src:    "A <b>bold</b> claim",
			keep:   []string{"bold", "claim"},
			hidden: []string{"<b>"},
		},
		{
			name:   "div block",
			src:    "<div onclick=\"x()\">\nhidden\n</div>\n\nShown",
			keep:   []string{"Shown"},
			hidden: []string{"onclick", "hidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(RenderMarkdown([]byte(tt.src)))
			for _, s := range tt.keep {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.hidden {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestHTMLTagName(t *testing.T) {
	name, closing := htmlTagName([]byte("<SCRIPT type=\"text/javascript\">"))
	assert.Equal(t, "script", name)
	assert.False(t, closing)

	name, closing = htmlTagName([]byte("</style>"))
	assert.Equal(t, "style", name)
	assert.True(t, closing)
}

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown([]byte("Some **bold** and *soft* text")))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<em>soft</em>")
}
