package fieldmask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var testRules = Rules{
	"description":     Nullable,
	"schedule":        Nullable,
	"serial_number":   Required,
	"max_payload_kg":  Required,
	"last_vertiport":  Nullable,
	"nested.deep":     Nullable,
	"nested.required": Required,
}

const current = `{"serial_number":"SN-1","description":"old","schedule":"MON-FRI","max_payload_kg":100,"created_at":"2024-01-01T00:00:00Z","nested":{"deep":"x","required":"y"}}`

func TestApplyOverwritesMaskedFields(t *testing.T) {
	payload := `{"description":"new","max_payload_kg":150}`
	merged, err := Apply([]byte(current), []byte(payload), []string{"description", "max_payload_kg"}, testRules)
	require.NoError(t, err)

	assert.JSONEq(t, `{"serial_number":"SN-1","description":"new","schedule":"MON-FRI","max_payload_kg":150,"created_at":"2024-01-01T00:00:00Z","nested":{"deep":"x","required":"y"}}`, string(merged))
}

func TestApplyLeavesUnmaskedFieldsAlone(t *testing.T) {
	// payload carries serial_number but the mask does not name it
	payload := `{"description":"new","serial_number":"SN-9"}`
	merged, err := Apply([]byte(current), []byte(payload), []string{"description"}, testRules)
	require.NoError(t, err)

	assert.Equal(t, "SN-1", jsonGet(t, merged, "serial_number"))
	assert.Equal(t, "new", jsonGet(t, merged, "description"))
	assert.Equal(t, "2024-01-01T00:00:00Z", jsonGet(t, merged, "created_at"))
}

func TestApplyClearsNullableOnSilence(t *testing.T) {
	merged, err := Apply([]byte(current), []byte(`{}`), []string{"description", "schedule"}, testRules)
	require.NoError(t, err)

	assert.JSONEq(t, `{"serial_number":"SN-1","max_payload_kg":100,"created_at":"2024-01-01T00:00:00Z","nested":{"deep":"x","required":"y"}}`, string(merged))
}

func TestApplyClearsNullableOnExplicitNull(t *testing.T) {
	merged, err := Apply([]byte(current), []byte(`{"description":null}`), []string{"description"}, testRules)
	require.NoError(t, err)

	assert.NotContains(t, string(merged), `"description"`)
}

func TestApplyRejectsClearingRequired(t *testing.T) {
	_, err := Apply([]byte(current), []byte(`{}`), []string{"serial_number"}, testRules)
	assert.True(t, errors.Is(err, ErrRequiredField), "got %v", err)

	_, err = Apply([]byte(current), []byte(`{"serial_number":null}`), []string{"serial_number"}, testRules)
	assert.True(t, errors.Is(err, ErrRequiredField), "got %v", err)
}

func TestApplyRejectsUnknownMaskEntry(t *testing.T) {
	_, err := Apply([]byte(current), []byte(`{"owner":"o"}`), []string{"owner"}, testRules)
	assert.True(t, errors.Is(err, ErrUnknownField), "got %v", err)

	// fields the wire model owns, like created_at, are not updatable either
	_, err = Apply([]byte(current), []byte(`{"created_at":"2030-01-01T00:00:00Z"}`), []string{"created_at"}, testRules)
	assert.True(t, errors.Is(err, ErrUnknownField), "got %v", err)
}

func TestApplyEmptyMaskIsNoop(t *testing.T) {
	merged, err := Apply([]byte(current), []byte(`{"description":"new"}`), nil, testRules)
	require.NoError(t, err)
	assert.JSONEq(t, current, string(merged))
}

func TestApplyNestedPaths(t *testing.T) {
	merged, err := Apply([]byte(current), []byte(`{"nested":{"deep":"z"}}`), []string{"nested.deep"}, testRules)
	require.NoError(t, err)
	assert.Equal(t, "z", jsonGet(t, merged, "nested.deep"))
	assert.Equal(t, "y", jsonGet(t, merged, "nested.required"))
}

func jsonGet(t *testing.T, doc []byte, path string) string {
	t.Helper()
	v := gjson.GetBytes(doc, path)
	require.True(t, v.Exists(), "path %s missing in %s", path, doc)
	return v.String()
}
