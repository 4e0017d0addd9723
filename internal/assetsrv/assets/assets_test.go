package assets

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
)

func strptr(s string) *string { return &s }

func timeptr(t time.Time) *time.Time { return &t }

func vehicleFixture() *storage.Object[storage.VehicleData] {
	now := time.Now().UTC()
	return &storage.Object[storage.VehicleData]{
		ID: "40ef6814-52d1-4a63-9b8f-e0ab0b0c81a2",
		Data: &storage.VehicleData{
			Owner:              strptr("1f1b9e3f-1f44-4f2f-b9b1-0b7c2d9a9e21"),
			Status:             "Available",
			Manufacturer:       "AeroCorp",
			Model:              "Swift-9",
			SerialNumber:       "SN-1",
			RegistrationNumber: "N12345",
			CreatedAt:          timeptr(now),
		},
	}
}

func TestStatusClosedSet(t *testing.T) {
	var s AssetStatus
	require.NoError(t, json.Unmarshal([]byte(`"Available"`), &s))
	assert.Equal(t, StatusAvailable, s)

	for _, bad := range []string{`"available"`, `"Grounded"`, `""`, `42`} {
		var s AssetStatus
		assert.Error(t, json.Unmarshal([]byte(bad), &s), "input %s", bad)
	}
}

func TestAircraftImplementsAsset(t *testing.T) {
	a, err := AircraftFromStorage(vehicleFixture())
	require.NoError(t, err)

	var asset Asset = a
	assert.Equal(t, "40ef6814-52d1-4a63-9b8f-e0ab0b0c81a2", asset.AssetID())
	assert.Equal(t, "AeroCorp Swift-9 N12345", asset.FullName(), "falls back to manufacturer model registration")
	assert.True(t, asset.IsPublic(), "empty whitelist means public")
	assert.False(t, asset.IsGrouped())
	assert.Equal(t, StatusAvailable, asset.AssetStatus())

	a.Name = strptr("Bluebird")
	assert.Equal(t, "Bluebird", asset.FullName())

	a.GroupID = strptr("7b9a4f7e-3f21-45e6-9f2b-1a2b3c4d5e6f")
	a.Whitelist = []string{"1f1b9e3f-1f44-4f2f-b9b1-0b7c2d9a9e21"}
	assert.True(t, asset.IsGrouped())
	assert.False(t, asset.IsPublic())
}

func TestVertiportImplementsAsset(t *testing.T) {
	now := time.Now().UTC()
	obj := &storage.Object[storage.VertiportData]{
		ID: "9d25b1b3-6f64-4dbd-8a22-1b2b3c4d5e6f",
		Data: &storage.VertiportData{
			Owner:       strptr("1f1b9e3f-1f44-4f2f-b9b1-0b7c2d9a9e21"),
			Status:      "Unavailable",
			Description: "rooftop pad cluster",
			GeoLocation: &storage.GeoPolygon{Exterior: []storage.GeoPoint{
				{Latitude: 37.77, Longitude: -122.41},
				{Latitude: 37.78, Longitude: -122.41},
				{Latitude: 37.78, Longitude: -122.42},
			}},
			CreatedAt: timeptr(now),
		},
	}
	v, err := VertiportFromStorage(obj)
	require.NoError(t, err)

	var asset Asset = v
	assert.Equal(t, "Unnamed Vertiport", asset.FullName())
	assert.Equal(t, StatusUnavailable, asset.AssetStatus())
	assert.Len(t, v.GeoLocation.Exterior, 3)
}

func TestTranslationFailsClosed(t *testing.T) {
	t.Run("nil data", func(t *testing.T) {
		obj := vehicleFixture()
		obj.Data = nil
		_, err := AircraftFromStorage(obj)
		assert.True(t, errors.Is(err, ErrTranslation), "got %v", err)
	})

	t.Run("missing created_at", func(t *testing.T) {
		obj := vehicleFixture()
		obj.Data.CreatedAt = nil
		_, err := AircraftFromStorage(obj)
		assert.True(t, errors.Is(err, ErrTranslation), "got %v", err)
	})

	t.Run("missing owner", func(t *testing.T) {
		obj := vehicleFixture()
		obj.Data.Owner = nil
		_, err := AircraftFromStorage(obj)
		assert.True(t, errors.Is(err, ErrTranslation), "got %v", err)
	})

	t.Run("unknown status", func(t *testing.T) {
		obj := vehicleFixture()
		obj.Data.Status = "Grounded"
		_, err := AircraftFromStorage(obj)
		assert.True(t, errors.Is(err, ErrTranslation), "got %v", err)
	})

	t.Run("vertiport without geo_location", func(t *testing.T) {
		obj := &storage.Object[storage.VertiportData]{
			ID: "9d25b1b3-6f64-4dbd-8a22-1b2b3c4d5e6f",
			Data: &storage.VertiportData{
				Owner:     strptr("1f1b9e3f-1f44-4f2f-b9b1-0b7c2d9a9e21"),
				Status:    "Available",
				CreatedAt: timeptr(time.Now().UTC()),
			},
		}
		_, err := VertiportFromStorage(obj)
		assert.True(t, errors.Is(err, ErrTranslation), "got %v", err)
	})

	t.Run("vertipad without vertiport_id", func(t *testing.T) {
		obj := &storage.Object[storage.VertipadData]{
			ID: "2c1a7d44-93b2-4a88-b1b2-aabbccddeeff",
			Data: &storage.VertipadData{
				Status:      "Available",
				GeoLocation: &storage.GeoPoint{Latitude: 37.77, Longitude: -122.41},
				CreatedAt:   timeptr(time.Now().UTC()),
			},
		}
		_, err := VertipadFromStorage(obj)
		assert.True(t, errors.Is(err, ErrTranslation), "got %v", err)
	})
}

func TestGroupFromStorage(t *testing.T) {
	now := time.Now().UTC()
	obj := &storage.Object[storage.GroupData]{
		ID: "c9b2f1d0-5a3e-4f6b-8d7c-123456789abc",
		Data: &storage.GroupData{
			Owner:     "1f1b9e3f-1f44-4f2f-b9b1-0b7c2d9a9e21",
			CreatedAt: timeptr(now),
		},
	}
	g, err := GroupFromStorage(obj)
	require.NoError(t, err)
	assert.NotNil(t, g.Assets, "assets renders as [] not null")
	assert.Empty(t, g.Assets)
}
