package assets

import (
	"time"
)

// Asset is the capability set shared by groupable assets. One contract,
// many concrete types; callers hold the interface when the concrete type
// does not matter.
type Asset interface {
	AssetID() string
	FullName() string
	IsGrouped() bool
	IsPublic() bool
	CreatedTime() time.Time
	UpdatedTime() *time.Time
	AssetStatus() AssetStatus
}

// Basics carries the fields common to groupable assets. Concrete asset
// types embed it and add FullName.
type Basics struct {
	ID        string      `json:"id"`
	Name      *string     `json:"name,omitempty"`
	GroupID   *string     `json:"group_id,omitempty"`
	Owner     string      `json:"owner"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
	Whitelist []string    `json:"whitelist"`
	Status    AssetStatus `json:"status"`
}

func (b Basics) AssetID() string {
	return b.ID
}

// IsGrouped reports whether the asset belongs to an asset group.
func (b Basics) IsGrouped() bool {
	return b.GroupID != nil && *b.GroupID != ""
}

// IsPublic reports whether the asset is open to all: an empty whitelist
// means no access restriction.
func (b Basics) IsPublic() bool {
	return len(b.Whitelist) == 0
}

func (b Basics) CreatedTime() time.Time {
	return b.CreatedAt
}

func (b Basics) UpdatedTime() *time.Time {
	return b.UpdatedAt
}

func (b Basics) AssetStatus() AssetStatus {
	return b.Status
}

// basicsFromStorage assembles the common fields from a stored record.
// created_at, owner and status are always expected; their absence is a
// translation failure, never a default.
func basicsFromStorage(id string, name, groupID *string, owner *string, whitelist []string, status string, createdAt, updatedAt *time.Time) (Basics, error) {
	if createdAt == nil {
		return Basics{}, ErrTranslation.New("storage record has no created_at")
	}
	if owner == nil || *owner == "" {
		return Basics{}, ErrTranslation.New("storage record has no owner")
	}
	parsed, err := ParseStatus(status)
	if err != nil {
		return Basics{}, ErrTranslation.New("storage record has invalid status: " + status)
	}
	if whitelist == nil {
		whitelist = []string{}
	}
	return Basics{
		ID:        id,
		Name:      name,
		GroupID:   groupID,
		Owner:     *owner,
		CreatedAt: *createdAt,
		UpdatedAt: updatedAt,
		Whitelist: whitelist,
		Status:    parsed,
	}, nil
}
