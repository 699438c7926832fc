// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/typemitr/typemitr/internal/config"
	"github.com/typemitr/typemitr/internal/infrastructure"
	"github.com/typemitr/typemitr/pkg/middleware"
	"github.com/typemitr/typemitr/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	if err := domain.Drafts.Start(runtime.Lifecycle); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
