package api

import (
	"net/http"

	"github.com/JaimeStill/arbiter/internal/config"
	"github.com/JaimeStill/arbiter/pkg/openapi"
	"github.com/JaimeStill/arbiter/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) error {
	routes.Register(
		mux,
		domain.Decisions.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
	)

	spec := buildSpec(cfg)
	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return err
	}

	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))
	return nil
}
