package http

import (
	"errors"
	"net/http"

	"github.com/verdantlabs/wastesentry/internal/feed"
	"github.com/verdantlabs/wastesentry/internal/service"
	"github.com/verdantlabs/wastesentry/internal/store"
	"github.com/verdantlabs/wastesentry/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrInvalidPIN:            http.StatusUnauthorized,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,
	service.ErrAdminRequired:         http.StatusForbidden,
	service.ErrInvalidTransition:     http.StatusConflict,
	service.ErrChecksumMismatch:      http.StatusConflict,
	service.ErrCaptureInProgress:     http.StatusLocked,
	service.ErrEmptyFrame:            http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	validators.ErrUnsupportedType: http.StatusBadRequest,
	validators.ErrUnknownField:    http.StatusBadRequest,
	validators.ErrEmptyEvidenceID: http.StatusBadRequest,
	validators.ErrEmptyRequester:  http.StatusBadRequest,
	validators.ErrEmptyReason:     http.StatusBadRequest,
	validators.ErrEmptyAdmin:      http.StatusBadRequest,

	store.ErrEvidenceNotFound: http.StatusNotFound,

	feed.ErrFeedAlreadyActive: http.StatusConflict,
	feed.ErrFeedInactive:      http.StatusConflict,
	feed.ErrDeviceAccess:      http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
