package web_test

import (
	"embed"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/arbiter/pkg/web"
)

//go:embed testdata/layout/*.tmpl
var layoutFS embed.FS

//go:embed testdata/views/*.tmpl
var viewFS embed.FS

var pageView = web.ViewDef{
	Route:    "/",
	Template: "page.tmpl",
	Title:    "Test Page",
}

func newTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()

	ts, err := web.NewTemplateSet(
		layoutFS, viewFS,
		"testdata/layout/*.tmpl",
		"testdata/views",
		"/base",
		[]web.ViewDef{pageView},
	)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestRenderView(t *testing.T) {
	ts := newTemplateSet(t)

	rec := httptest.NewRecorder()
	data := web.ViewData{
		Title:    pageView.Title,
		BasePath: "/base",
		Data:     "hello",
	}

	if err := ts.Render(rec, "layout", pageView.Template, data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<title>Test Page</title>") {
		t.Error("rendered page should carry the view title")
	}
	if !strings.Contains(body, `data-base="/base"`) {
		t.Error("rendered page should carry the base path")
	}
	if !strings.Contains(body, "<p>hello</p>") {
		t.Error("rendered page should embed the view data")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("content-type = %q, want text/html", ct)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	ts := newTemplateSet(t)

	rec := httptest.NewRecorder()
	err := ts.Render(rec, "layout", "missing.tmpl", web.ViewData{})
	if err == nil {
		t.Fatal("rendering an unregistered view should fail")
	}
	if !strings.Contains(err.Error(), "missing.tmpl") {
		t.Errorf("error = %v, want template name", err)
	}
}

func TestNewTemplateSetUnknownView(t *testing.T) {
	_, err := web.NewTemplateSet(
		layoutFS, viewFS,
		"testdata/layout/*.tmpl",
		"testdata/views",
		"/base",
		[]web.ViewDef{{Route: "/", Template: "absent.tmpl", Title: "Absent"}},
	)
	if err == nil {
		t.Fatal("parsing a missing view template should fail at construction")
	}
}
