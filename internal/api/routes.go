package api

import (
	"net/http"

	"github.com/typemitr/typemitr/internal/catalog"
	"github.com/typemitr/typemitr/internal/config"
	"github.com/typemitr/typemitr/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		catalog.NewHandler(runtime.Logger).Routes(),
		domain.Generation.Handler(cfg.API.MaxRequestSizeBytes()).Routes(),
		domain.Documents.Handler().Routes(),
		domain.Export.Handler().Routes(),
	)
}
