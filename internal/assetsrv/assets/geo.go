package assets

import "github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"

// GeoPoint is a surface coordinate.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoPolygon is an area given by its exterior ring.
type GeoPolygon struct {
	Exterior []GeoPoint `json:"exterior"`
}

func pointFromStorage(p *storage.GeoPoint) (GeoPoint, error) {
	if p == nil {
		return GeoPoint{}, ErrTranslation.New("storage record has no geo_location")
	}
	return GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}, nil
}

func polygonFromStorage(p *storage.GeoPolygon) (GeoPolygon, error) {
	if p == nil || len(p.Exterior) == 0 {
		return GeoPolygon{}, ErrTranslation.New("storage record has no geo_location")
	}
	out := GeoPolygon{Exterior: make([]GeoPoint, 0, len(p.Exterior))}
	for _, pt := range p.Exterior {
		out.Exterior = append(out.Exterior, GeoPoint{Latitude: pt.Latitude, Longitude: pt.Longitude})
	}
	return out, nil
}

func (p GeoPoint) toStorage() *storage.GeoPoint {
	return &storage.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}

func (p GeoPolygon) toStorage() *storage.GeoPolygon {
	out := &storage.GeoPolygon{Exterior: make([]storage.GeoPoint, 0, len(p.Exterior))}
	for _, pt := range p.Exterior {
		out.Exterior = append(out.Exterior, storage.GeoPoint{Latitude: pt.Latitude, Longitude: pt.Longitude})
	}
	return out
}
