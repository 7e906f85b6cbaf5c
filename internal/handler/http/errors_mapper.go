package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

// errorStatusMap maps service errors to response codes. Unknown emails and
// reset tokens are reported as 403, like the rest of the form API.
var errorStatusMap = map[error]int{
	service.ErrInvalidInput:       http.StatusBadRequest,
	service.ErrAlreadyExists:      http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrNotFound:           http.StatusForbidden,
	service.ErrStorage:            http.StatusInternalServerError,

	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
