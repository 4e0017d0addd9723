package assets

import (
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/fieldmask"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
)

// Vertiport is the REST view of a vertiport record.
type Vertiport struct {
	Basics
	Description string     `json:"description"`
	GeoLocation GeoPolygon `json:"geo_location"`
	Schedule    *string    `json:"schedule,omitempty"`
}

func (v *Vertiport) FullName() string {
	if v.Name != nil && *v.Name != "" {
		return *v.Name
	}
	return "Unnamed Vertiport"
}

// VertiportFromStorage translates a stored vertiport. The geo_location is
// always expected; a record without one fails the translation.
func VertiportFromStorage(obj *storage.Object[storage.VertiportData]) (*Vertiport, error) {
	if obj == nil || obj.Data == nil {
		return nil, ErrTranslation.New("vertiport record has no data")
	}
	d := obj.Data
	basics, err := basicsFromStorage(obj.ID, d.Name, d.AssetGroupID, d.Owner, d.Whitelist, d.Status, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	polygon, err := polygonFromStorage(d.GeoLocation)
	if err != nil {
		return nil, err
	}
	return &Vertiport{
		Basics:      basics,
		Description: d.Description,
		GeoLocation: polygon,
		Schedule:    d.Schedule,
	}, nil
}

// RegisterVertiportPayload is the POST body for a new vertiport.
type RegisterVertiportPayload struct {
	Name        *string     `json:"name,omitempty"`
	GroupID     *string     `json:"group_id,omitempty" validate:"omitempty,uuid"`
	Owner       string      `json:"owner" validate:"required"`
	Whitelist   []string    `json:"whitelist" validate:"dive,uuid"`
	Status      AssetStatus `json:"status" validate:"required"`
	Description string      `json:"description" validate:"required"`
	GeoLocation *GeoPolygon `json:"geo_location" validate:"required"`
	Schedule    *string     `json:"schedule,omitempty"`
}

// ToData builds the wire payload for vertiport.insert.
func (p *RegisterVertiportPayload) ToData() *storage.VertiportData {
	owner := p.Owner
	var data *storage.GeoPolygon
	if p.GeoLocation != nil {
		data = p.GeoLocation.toStorage()
	}
	return &storage.VertiportData{
		Name:         p.Name,
		AssetGroupID: p.GroupID,
		Owner:        &owner,
		Whitelist:    p.Whitelist,
		Status:       string(p.Status),
		Description:  p.Description,
		GeoLocation:  data,
		Schedule:     p.Schedule,
	}
}

// UpdateVertiportPayload is the PUT body for a partial vertiport update.
type UpdateVertiportPayload struct {
	ID   string   `json:"id" validate:"required"`
	Mask []string `json:"mask" validate:"required,min=1"`
}

// VertiportUpdateRules lists the vertiport fields a mask may touch.
var VertiportUpdateRules = fieldmask.Rules{
	"name":           fieldmask.Nullable,
	"asset_group_id": fieldmask.Nullable,
	"status":         fieldmask.Required,
	"description":    fieldmask.Required,
	"geo_location":   fieldmask.Required,
	"schedule":       fieldmask.Nullable,
}
