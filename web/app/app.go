// Package app serves the human review interface for Arbiter. It renders
// server-side templates for submitting outputs, inspecting decisions, and
// recording dispositions, backed directly by the decision domain system.
package app

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/arbiter/internal/api"
	"github.com/JaimeStill/arbiter/internal/config"
	"github.com/JaimeStill/arbiter/internal/decisions"
	"github.com/JaimeStill/arbiter/internal/infrastructure"
	"github.com/JaimeStill/arbiter/pkg/middleware"
	"github.com/JaimeStill/arbiter/pkg/module"
	"github.com/JaimeStill/arbiter/pkg/web"
)

//go:embed templates/layout/*.tmpl
var layoutFS embed.FS

//go:embed templates/views/*.tmpl
var viewFS embed.FS

//go:embed static/app.css
var staticFS embed.FS

const basePath = "/review"

var reviewView = web.ViewDef{
	Route:    "/",
	Template: "review.tmpl",
	Title:    "Arbiter Review",
}

// NewModule creates the review UI module mounted at /review.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := api.NewRuntime(cfg, infra)
	runtime.Logger = infra.Logger.With("module", "review")
	domain := api.NewDomain(runtime)

	mux, err := Handler(domain.Decisions, runtime.Logger)
	if err != nil {
		return nil, err
	}

	m := module.New(basePath, mux)
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}

// Handler builds the review UI routes against any decision system.
func Handler(sys decisions.System, logger *slog.Logger) (http.Handler, error) {
	templates, err := web.NewTemplateSet(
		layoutFS, viewFS,
		"templates/layout/*.tmpl",
		"templates/views",
		basePath,
		[]web.ViewDef{reviewView},
	)
	if err != nil {
		return nil, err
	}

	h := newHandler(sys, templates, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.page)
	mux.HandleFunc("POST /{$}", h.evaluate)
	mux.HandleFunc("POST /{id}/dispose", h.dispose)
	mux.HandleFunc("GET /static/app.css", web.PublicFile(staticFS, "static", "app.css"))

	return mux, nil
}
