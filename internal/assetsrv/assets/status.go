package assets

import "encoding/json"

// AssetStatus is the operational state of an asset. The set is closed: any
// other value fails to decode.
type AssetStatus string

const (
	StatusAvailable   AssetStatus = "Available"
	StatusUnavailable AssetStatus = "Unavailable"
	StatusEmergency   AssetStatus = "Emergency"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable, StatusEmergency:
		return true
	}
	return false
}

// ParseStatus converts a stored status string, failing on anything outside
// the closed set. An empty string fails too: status is always expected.
func ParseStatus(s string) (AssetStatus, error) {
	status := AssetStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus.New("invalid asset status: " + s)
	}
	return status, nil
}

func (s *AssetStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}
