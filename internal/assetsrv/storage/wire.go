package storage

import "time"

// Wire model of the storage backend. Every record travels as an Object
// envelope: the id lives beside the data payload, and the payload pointer is
// nil when the backend has no data for the record.

// Object is the id + data envelope returned by get_by_id, insert and search.
type Object[T any] struct {
	ID   string `json:"id"`
	Data *T     `json:"data"`
}

// FieldMask names the data fields an update is allowed to touch.
type FieldMask struct {
	Paths []string `json:"paths"`
}

// UpdateObject is the full-data + mask form the backend expects for updates.
type UpdateObject[T any] struct {
	ID   string    `json:"id"`
	Data *T        `json:"data"`
	Mask FieldMask `json:"mask"`
}

// Id identifies a record for get_by_id and delete.
type Id struct {
	ID string `json:"id"`
}

// SearchFilter restricts search results. The gateway only ever asks for
// records whose deleted_at is unset.
type SearchFilter struct {
	IsNull []string `json:"is_null,omitempty"`
}

// ActiveFilter returns the filter used by every collection listing.
func ActiveFilter() SearchFilter {
	return SearchFilter{IsNull: []string{"deleted_at"}}
}

// ObjectList is the search result envelope.
type ObjectList[T any] struct {
	List []Object[T] `json:"list"`
}

type ReadyRequest struct{}

type ReadyResponse struct {
	Ready bool `json:"ready"`
}

// GeoPoint is a wire coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoPolygon is a wire polygon given by its exterior ring.
type GeoPolygon struct {
	Exterior []GeoPoint `json:"exterior"`
}

// VehicleData is the stored form of an aircraft.
type VehicleData struct {
	Name               *string    `json:"name,omitempty"`
	AssetGroupID       *string    `json:"asset_group_id,omitempty"`
	Owner              *string    `json:"owner,omitempty"`
	Whitelist          []string   `json:"whitelist,omitempty"`
	Status             string     `json:"status,omitempty"`
	Manufacturer       string     `json:"manufacturer,omitempty"`
	Model              string     `json:"model,omitempty"`
	SerialNumber       string     `json:"serial_number,omitempty"`
	RegistrationNumber string     `json:"registration_number,omitempty"`
	Description        *string    `json:"description,omitempty"`
	MaxPayloadKg       float64    `json:"max_payload_kg,omitempty"`
	MaxRangeKm         float64    `json:"max_range_km,omitempty"`
	LastMaintenance    *string    `json:"last_maintenance,omitempty"`
	NextMaintenance    *string    `json:"next_maintenance,omitempty"`
	HangarID           *string    `json:"hangar_id,omitempty"`
	HangarBayID        *string    `json:"hangar_bay_id,omitempty"`
	LastVertiportID    *string    `json:"last_vertiport_id,omitempty"`
	Schedule           *string    `json:"schedule,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// VertiportData is the stored form of a vertiport.
type VertiportData struct {
	Name         *string     `json:"name,omitempty"`
	AssetGroupID *string     `json:"asset_group_id,omitempty"`
	Owner        *string     `json:"owner,omitempty"`
	Whitelist    []string    `json:"whitelist,omitempty"`
	Status       string      `json:"status,omitempty"`
	Description  string      `json:"description,omitempty"`
	GeoLocation  *GeoPolygon `json:"geo_location,omitempty"`
	Schedule     *string     `json:"schedule,omitempty"`
	CreatedAt    *time.Time  `json:"created_at,omitempty"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}

// VertipadData is the stored form of a vertipad.
type VertipadData struct {
	VertiportID string     `json:"vertiport_id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Status      string     `json:"status,omitempty"`
	GeoLocation *GeoPoint  `json:"geo_location,omitempty"`
	Enabled     bool       `json:"enabled"`
	Occupied    bool       `json:"occupied"`
	Schedule    *string    `json:"schedule,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// GroupData is the stored form of an asset group.
type GroupData struct {
	Name      *string    `json:"name,omitempty"`
	Owner     string     `json:"owner,omitempty"`
	Delegatee *string    `json:"delegatee,omitempty"`
	Assets    []string   `json:"assets,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
