package assets

import (
	"time"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/fieldmask"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
)

// Vertipad is the REST view of a vertipad record. Vertipads belong to a
// vertiport and are not groupable, so they carry their fields flat instead
// of embedding Basics.
type Vertipad struct {
	ID          string      `json:"id"`
	VertiportID string      `json:"vertiport_id"`
	Name        *string     `json:"name,omitempty"`
	Status      AssetStatus `json:"status"`
	GeoLocation GeoPoint    `json:"geo_location"`
	Enabled     bool        `json:"enabled"`
	Occupied    bool        `json:"occupied"`
	Schedule    *string     `json:"schedule,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}

func (v *Vertipad) FullName() string {
	if v.Name != nil && *v.Name != "" {
		return *v.Name
	}
	return "Unnamed Vertipad"
}

// VertipadFromStorage translates a stored vertipad. vertiport_id,
// geo_location and created_at are always expected.
func VertipadFromStorage(obj *storage.Object[storage.VertipadData]) (*Vertipad, error) {
	if obj == nil || obj.Data == nil {
		return nil, ErrTranslation.New("vertipad record has no data")
	}
	d := obj.Data
	if d.VertiportID == "" {
		return nil, ErrTranslation.New("vertipad record has no vertiport_id")
	}
	if d.CreatedAt == nil {
		return nil, ErrTranslation.New("storage record has no created_at")
	}
	point, err := pointFromStorage(d.GeoLocation)
	if err != nil {
		return nil, err
	}
	status, err := ParseStatus(d.Status)
	if err != nil {
		return nil, ErrTranslation.New("storage record has invalid status: " + d.Status)
	}
	return &Vertipad{
		ID:          obj.ID,
		VertiportID: d.VertiportID,
		Name:        d.Name,
		Status:      status,
		GeoLocation: point,
		Enabled:     d.Enabled,
		Occupied:    d.Occupied,
		Schedule:    d.Schedule,
		CreatedAt:   *d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

// RegisterVertipadPayload is the POST body for a new vertipad.
type RegisterVertipadPayload struct {
	Name        *string     `json:"name,omitempty"`
	VertiportID string      `json:"vertiport_id" validate:"required,uuid"`
	Status      AssetStatus `json:"status" validate:"required"`
	GeoLocation *GeoPoint   `json:"geo_location" validate:"required"`
	Enabled     bool        `json:"enabled"`
	Occupied    bool        `json:"occupied"`
	Schedule    *string     `json:"schedule,omitempty"`
}

// ToData builds the wire payload for vertipad.insert.
func (p *RegisterVertipadPayload) ToData() *storage.VertipadData {
	var point *storage.GeoPoint
	if p.GeoLocation != nil {
		point = p.GeoLocation.toStorage()
	}
	return &storage.VertipadData{
		VertiportID: p.VertiportID,
		Name:        p.Name,
		Status:      string(p.Status),
		GeoLocation: point,
		Enabled:     p.Enabled,
		Occupied:    p.Occupied,
		Schedule:    p.Schedule,
	}
}

// UpdateVertipadPayload is the PUT body for a partial vertipad update.
type UpdateVertipadPayload struct {
	ID   string   `json:"id" validate:"required"`
	Mask []string `json:"mask" validate:"required,min=1"`
}

// VertipadUpdateRules lists the vertipad fields a mask may touch.
var VertipadUpdateRules = fieldmask.Rules{
	"vertiport_id": fieldmask.Required,
	"name":         fieldmask.Nullable,
	"status":       fieldmask.Required,
	"geo_location": fieldmask.Required,
	"enabled":      fieldmask.Required,
	"occupied":     fieldmask.Required,
	"schedule":     fieldmask.Nullable,
}
