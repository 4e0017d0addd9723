package api

import (
	"net/http"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/assets"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
)

func (h *Handler) vertiportRoutes() []httpx.ResponseHandlerParam {
	return []httpx.ResponseHandlerParam{
		{Method: http.MethodGet, Path: "/", Handler: h.listVertiports},
		{Method: http.MethodGet, Path: "/{id}", Handler: h.getVertiport},
		{Method: http.MethodPost, Path: "/", Handler: h.registerVertiport},
		{Method: http.MethodPut, Path: "/", Handler: h.updateVertiport},
		{Method: http.MethodDelete, Path: "/{id}", Handler: h.deleteVertiport},
	}
}

func (h *Handler) registerVertiport(r *http.Request) (*httpx.Response, error) {
	return registerResource(h, r, h.Clients.Vertiport, &assets.RegisterVertiportPayload{})
}

func (h *Handler) getVertiport(r *http.Request) (*httpx.Response, error) {
	return getResource(r, h.Clients.Vertiport, "vertiport", assets.VertiportFromStorage)
}

func (h *Handler) listVertiports(r *http.Request) (*httpx.Response, error) {
	return listResource(r, h.Clients.Vertiport, assets.VertiportFromStorage)
}

func (h *Handler) updateVertiport(r *http.Request) (*httpx.Response, error) {
	return updateResource(h, r, h.Clients.Vertiport, "vertiport", assets.VertiportUpdateRules, checkVertiport)
}

func (h *Handler) deleteVertiport(r *http.Request) (*httpx.Response, error) {
	return deleteResource(r, h.Clients.Vertiport, "vertiport")
}

func checkVertiport(d *storage.VertiportData) error {
	_, err := assets.ParseStatus(d.Status)
	return err
}
