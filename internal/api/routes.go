package api

import (
	"net/http"

	"github.com/veridoc-co/veridoc/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(mux, routes.Group{
		Prefix: "/v1",
		Children: []routes.Group{
			domain.Validation.Handler().Routes(),
			domain.Records.Handler().Routes(),
		},
	})
}
