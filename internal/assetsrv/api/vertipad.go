package api

import (
	"net/http"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/assets"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
)

func (h *Handler) vertipadRoutes() []httpx.ResponseHandlerParam {
	return []httpx.ResponseHandlerParam{
		{Method: http.MethodGet, Path: "/", Handler: h.listVertipads},
		{Method: http.MethodGet, Path: "/{id}", Handler: h.getVertipad},
		{Method: http.MethodPost, Path: "/", Handler: h.registerVertipad},
		{Method: http.MethodPut, Path: "/", Handler: h.updateVertipad},
		{Method: http.MethodDelete, Path: "/{id}", Handler: h.deleteVertipad},
	}
}

func (h *Handler) registerVertipad(r *http.Request) (*httpx.Response, error) {
	return registerResource(h, r, h.Clients.Vertipad, &assets.RegisterVertipadPayload{})
}

func (h *Handler) getVertipad(r *http.Request) (*httpx.Response, error) {
	return getResource(r, h.Clients.Vertipad, "vertipad", assets.VertipadFromStorage)
}

func (h *Handler) listVertipads(r *http.Request) (*httpx.Response, error) {
	return listResource(r, h.Clients.Vertipad, assets.VertipadFromStorage)
}

func (h *Handler) updateVertipad(r *http.Request) (*httpx.Response, error) {
	return updateResource(h, r, h.Clients.Vertipad, "vertipad", assets.VertipadUpdateRules, checkVertipad)
}

func (h *Handler) deleteVertipad(r *http.Request) (*httpx.Response, error) {
	return deleteResource(r, h.Clients.Vertipad, "vertipad")
}

func checkVertipad(d *storage.VertipadData) error {
	if _, err := assets.ParseStatus(d.Status); err != nil {
		return err
	}
	if d.VertiportID == "" {
		return httpx.ErrInvalidRequest("vertipad must keep a vertiport_id")
	}
	return nil
}
