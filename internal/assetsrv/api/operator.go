package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/assets"
	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
	"github.com/aetheric-oss/svc-assets/internal/common/uuid"
)

// Operator endpoints. No operator backend exists yet, so the lookup returns
// a canned record and the operator-scoped listings are empty.
// TODO: wire these to the operator family when svc-storage exposes one.

func (h *Handler) operatorRoutes() []httpx.ResponseHandlerParam {
	return []httpx.ResponseHandlerParam{
		{Method: http.MethodGet, Path: "/{id}", Handler: h.getOperator},
		{Method: http.MethodGet, Path: "/{id}/assets", Handler: h.listOperatorAssets},
		{Method: http.MethodGet, Path: "/{id}/grouped", Handler: h.listOperatorGrouped},
		{Method: http.MethodGet, Path: "/{id}/grouped/delegated-to", Handler: h.listOperatorGrouped},
		{Method: http.MethodGet, Path: "/{id}/grouped/delegated-from", Handler: h.listOperatorGrouped},
	}
}

func operatorID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.ParseID(id); err != nil {
		return "", httpx.ErrInvalidAssetID("operator")
	}
	return id, nil
}

func (h *Handler) getOperator(r *http.Request) (*httpx.Response, error) {
	id, err := operatorID(r)
	if err != nil {
		return nil, err
	}
	op := assets.Operator{
		ID:        id,
		Name:      "Unknown Operator",
		CreatedAt: time.Now().UTC(),
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: op}, nil
}

func (h *Handler) listOperatorAssets(r *http.Request) (*httpx.Response, error) {
	if _, err := operatorID(r); err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: listResponse[string]{List: []string{}}}, nil
}

func (h *Handler) listOperatorGrouped(r *http.Request) (*httpx.Response, error) {
	if _, err := operatorID(r); err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: listResponse[assets.AssetGroup]{List: []assets.AssetGroup{}}}, nil
}
