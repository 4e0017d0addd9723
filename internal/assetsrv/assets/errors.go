package assets

import (
	"net/http"

	"github.com/aetheric-oss/svc-assets/internal/common/apperrors"
)

var (
	// ErrTranslation is returned when a storage record cannot be rendered as
	// a REST resource. Translation never substitutes defaults for missing
	// required fields.
	ErrTranslation = apperrors.New("unable to translate storage record").SetStatusCode(http.StatusInternalServerError)

	// ErrInvalidStatus is returned when a status value is outside the
	// closed set.
	ErrInvalidStatus = apperrors.New("invalid asset status").SetStatusCode(http.StatusBadRequest)
)
