package assets

import (
	"strings"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/fieldmask"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
)

// Aircraft is the REST view of a vehicle record.
type Aircraft struct {
	Basics
	Manufacturer       string  `json:"manufacturer"`
	Model              string  `json:"model"`
	SerialNumber       string  `json:"serial_number"`
	RegistrationNumber string  `json:"registration_number"`
	Description        *string `json:"description,omitempty"`
	MaxPayloadKg       float64 `json:"max_payload_kg"`
	MaxRangeKm         float64 `json:"max_range_km"`
	LastMaintenance    *string `json:"last_maintenance,omitempty"`
	NextMaintenance    *string `json:"next_maintenance,omitempty"`
	HangarID           *string `json:"hangar_id,omitempty"`
	LastVertiportID    *string `json:"last_vertiport_id,omitempty"`
	Schedule           *string `json:"schedule,omitempty"`
}

// FullName is the display name: the given name when one is set, otherwise
// manufacturer, model and registration.
func (a *Aircraft) FullName() string {
	if a.Name != nil && *a.Name != "" {
		return *a.Name
	}
	return strings.TrimSpace(a.Manufacturer + " " + a.Model + " " + a.RegistrationNumber)
}

// AircraftFromStorage translates a stored vehicle into an Aircraft. A nil
// data envelope or a missing expected field fails the translation.
func AircraftFromStorage(obj *storage.Object[storage.VehicleData]) (*Aircraft, error) {
	if obj == nil || obj.Data == nil {
		return nil, ErrTranslation.New("vehicle record has no data")
	}
	d := obj.Data
	basics, err := basicsFromStorage(obj.ID, d.Name, d.AssetGroupID, d.Owner, d.Whitelist, d.Status, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if d.Manufacturer == "" || d.Model == "" {
		return nil, ErrTranslation.New("vehicle record has no manufacturer or model")
	}
	if d.SerialNumber == "" || d.RegistrationNumber == "" {
		return nil, ErrTranslation.New("vehicle record has no serial or registration number")
	}
	return &Aircraft{
		Basics:             basics,
		Manufacturer:       d.Manufacturer,
		Model:              d.Model,
		SerialNumber:       d.SerialNumber,
		RegistrationNumber: d.RegistrationNumber,
		Description:        d.Description,
		MaxPayloadKg:       d.MaxPayloadKg,
		MaxRangeKm:         d.MaxRangeKm,
		LastMaintenance:    d.LastMaintenance,
		NextMaintenance:    d.NextMaintenance,
		HangarID:           d.HangarID,
		LastVertiportID:    d.LastVertiportID,
		Schedule:           d.Schedule,
	}, nil
}

// RegisterAircraftPayload is the POST body for a new aircraft.
type RegisterAircraftPayload struct {
	Name               *string     `json:"name,omitempty"`
	GroupID            *string     `json:"group_id,omitempty" validate:"omitempty,uuid"`
	Owner              string      `json:"owner" validate:"required"`
	Whitelist          []string    `json:"whitelist" validate:"dive,uuid"`
	Status             AssetStatus `json:"status" validate:"required"`
	Manufacturer       string      `json:"manufacturer" validate:"required"`
	Model              string      `json:"model" validate:"required"`
	SerialNumber       string      `json:"serial_number" validate:"required"`
	RegistrationNumber string      `json:"registration_number" validate:"required"`
	Description        *string     `json:"description,omitempty"`
	MaxPayloadKg       float64     `json:"max_payload_kg" validate:"gte=0"`
	MaxRangeKm         float64     `json:"max_range_km" validate:"gte=0"`
	LastMaintenance    *string     `json:"last_maintenance,omitempty"`
	NextMaintenance    *string     `json:"next_maintenance,omitempty"`
}

// ToData builds the wire payload for vehicle.insert.
func (p *RegisterAircraftPayload) ToData() *storage.VehicleData {
	owner := p.Owner
	return &storage.VehicleData{
		Name:               p.Name,
		AssetGroupID:       p.GroupID,
		Owner:              &owner,
		Whitelist:          p.Whitelist,
		Status:             string(p.Status),
		Manufacturer:       p.Manufacturer,
		Model:              p.Model,
		SerialNumber:       p.SerialNumber,
		RegistrationNumber: p.RegistrationNumber,
		Description:        p.Description,
		MaxPayloadKg:       p.MaxPayloadKg,
		MaxRangeKm:         p.MaxRangeKm,
		LastMaintenance:    p.LastMaintenance,
		NextMaintenance:    p.NextMaintenance,
	}
}

// UpdateAircraftPayload is the PUT body for a partial aircraft update. Only
// id and mask are decoded here; the field values travel as raw JSON through
// the field-mask merge, so absent and present-but-null are distinguishable.
type UpdateAircraftPayload struct {
	ID   string   `json:"id" validate:"required"`
	Mask []string `json:"mask" validate:"required,min=1"`
}

// AircraftUpdateRules lists the vehicle fields a mask may touch.
var AircraftUpdateRules = fieldmask.Rules{
	"name":                fieldmask.Nullable,
	"asset_group_id":      fieldmask.Nullable,
	"status":              fieldmask.Required,
	"manufacturer":        fieldmask.Required,
	"model":               fieldmask.Required,
	"serial_number":       fieldmask.Required,
	"registration_number": fieldmask.Required,
	"description":         fieldmask.Nullable,
	"max_payload_kg":      fieldmask.Required,
	"max_range_km":        fieldmask.Required,
	"last_maintenance":    fieldmask.Nullable,
	"next_maintenance":    fieldmask.Nullable,
	"hangar_id":           fieldmask.Nullable,
	"hangar_bay_id":       fieldmask.Nullable,
	"last_vertiport_id":   fieldmask.Nullable,
	"schedule":            fieldmask.Nullable,
}
