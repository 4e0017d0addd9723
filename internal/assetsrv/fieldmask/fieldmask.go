// Package fieldmask implements mask-driven partial updates over JSON
// documents. The caller supplies the current stored record, the update
// payload, and the list of field paths the update is allowed to touch.
package fieldmask

import (
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/aetheric-oss/svc-assets/internal/common/apperrors"
)

// Rule states what a masked field does when the payload carries no value.
type Rule int

const (
	// Nullable fields are cleared when masked but absent from the payload.
	Nullable Rule = iota
	// Required fields reject an update that masks them without a value.
	Required
)

// Rules maps updatable field paths to their absence behavior. Paths not in
// the map cannot appear in a mask.
type Rules map[string]Rule

var (
	ErrUnknownField  = apperrors.New("field is not updatable").SetStatusCode(http.StatusBadRequest)
	ErrRequiredField = apperrors.New("required field cannot be cleared").SetStatusCode(http.StatusBadRequest)
)

// Apply merges payload into current under mask and returns the merged
// document. Fields outside the mask are never touched. A masked field
// present in the payload overwrites the current value; a masked field that
// is absent (or explicitly null) clears a Nullable field and fails a
// Required one.
func Apply(current, payload []byte, mask []string, rules Rules) ([]byte, error) {
	merged := current
	for _, path := range mask {
		rule, ok := rules[path]
		if !ok {
			return nil, ErrUnknownField.New("field is not updatable: " + path)
		}
		v := gjson.GetBytes(payload, path)
		if !v.Exists() || v.Type == gjson.Null {
			if rule == Required {
				return nil, ErrRequiredField.New("required field cannot be cleared: " + path)
			}
			var err error
			merged, err = sjson.DeleteBytes(merged, path)
			if err != nil {
				return nil, ErrUnknownField.New("unable to clear field: " + path).Err(err)
			}
			continue
		}
		var err error
		merged, err = sjson.SetRawBytes(merged, path, []byte(v.Raw))
		if err != nil {
			return nil, ErrUnknownField.New("unable to set field: " + path).Err(err)
		}
	}
	return merged, nil
}
