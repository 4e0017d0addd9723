package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
)

// Version is stamped at build time.
var Version = "dev"

// Router assembles the REST surface.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", httpx.WrapHttpRsp(h.health))
	r.Get("/version", httpx.WrapHttpRsp(h.version))
	r.Route("/assets", func(r chi.Router) {
		mountRoutes(r, "/operators", h.operatorRoutes())
		mountRoutes(r, "/aircraft", h.aircraftRoutes())
		mountRoutes(r, "/vertiports", h.vertiportRoutes())
		mountRoutes(r, "/vertipads", h.vertipadRoutes())
		mountRoutes(r, "/groups", h.groupRoutes())
	})
	return r
}

func mountRoutes(r chi.Router, prefix string, routes []httpx.ResponseHandlerParam) {
	r.Route(prefix, func(r chi.Router) {
		for _, route := range routes {
			r.Method(route.Method, route.Path, httpx.WrapHttpRsp(route.Handler))
		}
	})
}

func (h *Handler) version(r *http.Request) (*httpx.Response, error) {
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]string{"name": "svc-assets", "version": Version},
	}, nil
}
