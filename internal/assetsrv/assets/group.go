package assets

import (
	"time"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/fieldmask"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
)

// AssetGroup is a named collection of asset ids with optional delegation.
type AssetGroup struct {
	ID        string     `json:"id"`
	Name      *string    `json:"name,omitempty"`
	Owner     string     `json:"owner"`
	Delegatee *string    `json:"delegatee,omitempty"`
	Assets    []string   `json:"assets"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// GroupFromStorage translates a stored group record.
func GroupFromStorage(obj *storage.Object[storage.GroupData]) (*AssetGroup, error) {
	if obj == nil || obj.Data == nil {
		return nil, ErrTranslation.New("group record has no data")
	}
	d := obj.Data
	if d.CreatedAt == nil {
		return nil, ErrTranslation.New("storage record has no created_at")
	}
	if d.Owner == "" {
		return nil, ErrTranslation.New("storage record has no owner")
	}
	assets := d.Assets
	if assets == nil {
		assets = []string{}
	}
	return &AssetGroup{
		ID:        obj.ID,
		Name:      d.Name,
		Owner:     d.Owner,
		Delegatee: d.Delegatee,
		Assets:    assets,
		CreatedAt: *d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// RegisterAssetGroupPayload is the POST body for a new asset group.
type RegisterAssetGroupPayload struct {
	Name   *string  `json:"name,omitempty"`
	Owner  string   `json:"owner" validate:"required"`
	Assets []string `json:"assets" validate:"dive,uuid"`
}

// ToData builds the wire payload for group.insert.
func (p *RegisterAssetGroupPayload) ToData() *storage.GroupData {
	return &storage.GroupData{
		Name:   p.Name,
		Owner:  p.Owner,
		Assets: p.Assets,
	}
}

// UpdateAssetGroupPayload is the PUT body for a partial group update.
type UpdateAssetGroupPayload struct {
	ID   string   `json:"id" validate:"required"`
	Mask []string `json:"mask" validate:"required,min=1"`
}

// GroupUpdateRules lists the group fields a mask may touch.
var GroupUpdateRules = fieldmask.Rules{
	"name":      fieldmask.Nullable,
	"owner":     fieldmask.Required,
	"delegatee": fieldmask.Nullable,
	"assets":    fieldmask.Required,
}
