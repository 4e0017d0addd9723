package api

import (
	"net/http"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/assets"
	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
)

func (h *Handler) groupRoutes() []httpx.ResponseHandlerParam {
	return []httpx.ResponseHandlerParam{
		{Method: http.MethodGet, Path: "/{id}", Handler: h.getGroup},
		{Method: http.MethodPost, Path: "/", Handler: h.registerGroup},
		{Method: http.MethodPut, Path: "/{id}", Handler: h.updateGroup},
		{Method: http.MethodDelete, Path: "/{id}", Handler: h.deleteGroup},
	}
}

func (h *Handler) registerGroup(r *http.Request) (*httpx.Response, error) {
	return registerResource(h, r, h.Clients.Group, &assets.RegisterAssetGroupPayload{})
}

func (h *Handler) getGroup(r *http.Request) (*httpx.Response, error) {
	return getResource(r, h.Clients.Group, "group", assets.GroupFromStorage)
}

func (h *Handler) updateGroup(r *http.Request) (*httpx.Response, error) {
	return updateResource(h, r, h.Clients.Group, "group", assets.GroupUpdateRules, nil)
}

func (h *Handler) deleteGroup(r *http.Request) (*httpx.Response, error) {
	return deleteResource(r, h.Clients.Group, "group")
}
