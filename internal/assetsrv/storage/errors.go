package storage

import (
	"net/http"

	"github.com/aetheric-oss/svc-assets/internal/common/apperrors"
)

var (
	// ErrBackendUnavailable covers dial failures and transport failures on an
	// established connection.
	ErrBackendUnavailable = apperrors.New("storage backend unavailable").SetStatusCode(http.StatusServiceUnavailable)

	// ErrNotFound is returned when the backend reports no record for an id.
	ErrNotFound = apperrors.New("resource not found").SetStatusCode(http.StatusNotFound)

	// ErrRPC covers protocol-level failures: malformed frames, unexpected
	// results, backend-side errors other than not-found.
	ErrRPC = apperrors.New("storage backend error").SetStatusCode(http.StatusInternalServerError)
)
