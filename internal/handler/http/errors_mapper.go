package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-zkeb/internal/service"
	"github.com/MKhiriev/go-zkeb/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrHashMismatch:          http.StatusBadRequest,
	service.ErrDeviceMismatch:        http.StatusForbidden,
	service.ErrSignatureVerification: http.StatusUnauthorized,
	service.ErrChallengeNotFound:     http.StatusUnauthorized,
	service.ErrChallengeExpired:      http.StatusUnauthorized,
	service.ErrChallengeMismatch:     http.StatusUnauthorized,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,

	store.ErrDeviceAlreadyRegistered: http.StatusConflict,
	store.ErrDeviceNotFound:          http.StatusNotFound,
	store.ErrBackupNotFound:          http.StatusNotFound,
	store.ErrVersionConflict:         http.StatusConflict,
	store.ErrBackupNotSaved:          http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
