package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetheric-oss/svc-assets/internal/common/uuid"
)

func TestUpdateAircraftMaskedFieldsOnly(t *testing.T) {
	s, _ := newTestServer(t)
	id := registerTestAircraft(t, s)

	req, _ := http.NewRequest(http.MethodPut, "/assets/aircraft", nil)
	setRequestBodyAndHeader(t, req, map[string]any{
		"id":          id,
		"description": "repainted",
		// serial_number present in the body but not in the mask: must be ignored
		"serial_number": "SN-999",
		"mask":          []string{"description"},
	})
	rr := executeTestRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	req, _ = http.NewRequest(http.MethodGet, "/assets/aircraft/"+id, nil)
	rr = executeTestRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var aircraft struct {
		Description  string `json:"description"`
		SerialNumber string `json:"serial_number"`
		Manufacturer string `json:"manufacturer"`
	}
	decodeRsp(t, rr, &aircraft)
	assert.Equal(t, "repainted", aircraft.Description)
	assert.Equal(t, "SN-100", aircraft.SerialNumber, "unmasked field must keep its stored value")
	assert.Equal(t, "AeroCorp", aircraft.Manufacturer)
}

func TestUpdateClearsNullableField(t *testing.T) {
	s, _ := newTestServer(t)
	id := registerTestAircraft(t, s)

	// masked but absent: description is nullable, so it clears
	req, _ := http.NewRequest(http.MethodPut, "/assets/aircraft", nil)
	setRequestBodyAndHeader(t, req, map[string]any{
		"id":   id,
		"mask": []string{"description"},
	})
	rr := executeTestRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	req, _ = http.NewRequest(http.MethodGet, "/assets/aircraft/"+id, nil)
	rr = executeTestRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), `"description"`)
}

func TestUpdateCannotClearRequiredField(t *testing.T) {
	s, _ := newTestServer(t)
	id := registerTestAircraft(t, s)

	req, _ := http.NewRequest(http.MethodPut, "/assets/aircraft", nil)
	setRequestBodyAndHeader(t, req, map[string]any{
		"id":   id,
		"mask": []string{"serial_number"},
	})
	rr := executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// the record is untouched
	req, _ = http.NewRequest(http.MethodGet, "/assets/aircraft/"+id, nil)
	rr = executeTestRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "SN-100")
}

func TestUpdateRejectsUnknownMaskField(t *testing.T) {
	s, _ := newTestServer(t)
	id := registerTestAircraft(t, s)

	for _, field := range []string{"created_at", "owner", "bogus"} {
		req, _ := http.NewRequest(http.MethodPut, "/assets/aircraft", nil)
		setRequestBodyAndHeader(t, req, map[string]any{
			"id":   id,
			"mask": []string{field},
		})
		rr := executeTestRequest(t, s, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "mask field %s", field)
	}
}

func TestUpdateRequiresMask(t *testing.T) {
	s, _ := newTestServer(t)
	id := registerTestAircraft(t, s)

	req, _ := http.NewRequest(http.MethodPut, "/assets/aircraft", nil)
	setRequestBodyAndHeader(t, req, map[string]any{
		"id":          id,
		"description": "no mask given",
	})
	rr := executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, "/assets/aircraft", nil)
	setRequestBodyAndHeader(t, req, map[string]any{
		"id":          uuid.New().String(),
		"description": "ghost",
		"mask":        []string{"description"},
	})
	rr := executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateRejectsInvalidStatusValue(t *testing.T) {
	s, _ := newTestServer(t)
	id := registerTestAircraft(t, s)

	req, _ := http.NewRequest(http.MethodPut, "/assets/aircraft", nil)
	setRequestBodyAndHeader(t, req, map[string]any{
		"id":     id,
		"status": "Grounded",
		"mask":   []string{"status"},
	})
	rr := executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
