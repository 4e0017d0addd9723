package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage/storagetest"
)

func newTestServer(t *testing.T) (*Server, *storagetest.Backend) {
	backend := storagetest.New()
	t.Cleanup(backend.Close)

	s := CreateServerWithClients(storage.NewClients(backend.URL()))
	s.MountHandlers()
	return s, backend
}

func executeTestRequest(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func checkHeader(t *testing.T, h http.Header) {
	expected := "application/json"
	got := h.Get("Content-Type")
	assert.Equal(t, expected, got, "Content-Type expected %s, got %s", expected, got)
	assert.NotEmpty(t, h.Get("X-Assets-Request-ID"), "No Request Id")
}

func compareJson(t *testing.T, expected any, actual string) {
	j, err := json.Marshal(expected)
	assert.NoError(t, err, "json marshal")
	assert.JSONEq(t, string(j), actual, "Expected: %v\n Got: %v\n", expected, actual)
}

func setRequestBodyAndHeader(t *testing.T, req *http.Request, data interface{}) {
	// check if the input itself is json
	var jsonData []byte
	if s, ok := data.(string); ok {
		if json.Valid([]byte(s)) {
			jsonData = []byte(s)
		}
	} else if b, ok := data.([]byte); ok {
		if json.Valid(b) {
			jsonData = b
		}
	} else {
		var err error
		jsonData, err = json.Marshal(data)
		assert.NoError(t, err, "Failed to marshal data into JSON")
	}

	req.Body = io.NopCloser(bytes.NewReader(jsonData))
	req.ContentLength = int64(len(jsonData))
	req.Header.Set("Content-Type", "application/json")
}

// decodeRsp unmarshals a recorded JSON body into out.
func decodeRsp(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out), "body: %s", rr.Body.String())
}

type idRsp struct {
	ID string `json:"id"`
}

func registerTestAircraft(t *testing.T, s *Server) string {
	t.Helper()
	payload := map[string]any{
		"owner":               "1f1b9e3f-1f44-4f2f-b9b1-0b7c2d9a9e21",
		"status":              "Available",
		"manufacturer":        "AeroCorp",
		"model":               "Swift-9",
		"serial_number":       "SN-100",
		"registration_number": "N12345",
		"max_payload_kg":      120.5,
		"max_range_km":        320.0,
		"description":         "cargo demo unit",
	}
	req, _ := http.NewRequest(http.MethodPost, "/assets/aircraft", nil)
	setRequestBodyAndHeader(t, req, payload)
	rr := executeTestRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code, "register: %s", rr.Body.String())

	var rsp idRsp
	decodeRsp(t, rr, &rsp)
	require.NotEmpty(t, rsp.ID)
	return rsp.ID
}
