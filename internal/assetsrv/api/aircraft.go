package api

import (
	"net/http"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/assets"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
)

func (h *Handler) aircraftRoutes() []httpx.ResponseHandlerParam {
	return []httpx.ResponseHandlerParam{
		{Method: http.MethodGet, Path: "/", Handler: h.listAircraft},
		{Method: http.MethodGet, Path: "/{id}", Handler: h.getAircraft},
		{Method: http.MethodPost, Path: "/", Handler: h.registerAircraft},
		{Method: http.MethodPut, Path: "/", Handler: h.updateAircraft},
		{Method: http.MethodDelete, Path: "/{id}", Handler: h.deleteAircraft},
	}
}

func (h *Handler) registerAircraft(r *http.Request) (*httpx.Response, error) {
	return registerResource(h, r, h.Clients.Vehicle, &assets.RegisterAircraftPayload{})
}

func (h *Handler) getAircraft(r *http.Request) (*httpx.Response, error) {
	return getResource(r, h.Clients.Vehicle, "aircraft", assets.AircraftFromStorage)
}

func (h *Handler) listAircraft(r *http.Request) (*httpx.Response, error) {
	return listResource(r, h.Clients.Vehicle, assets.AircraftFromStorage)
}

func (h *Handler) updateAircraft(r *http.Request) (*httpx.Response, error) {
	return updateResource(h, r, h.Clients.Vehicle, "aircraft", assets.AircraftUpdateRules, checkVehicle)
}

func (h *Handler) deleteAircraft(r *http.Request) (*httpx.Response, error) {
	return deleteResource(r, h.Clients.Vehicle, "aircraft")
}

func checkVehicle(d *storage.VehicleData) error {
	_, err := assets.ParseStatus(d.Status)
	return err
}
