package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/styleon-app/stylist-scheduler/internal/faults"
)

// statusFor maps error kinds to HTTP statuses. Conflict and invalid
// transition both land on 409: a legitimate user can hit either and the
// payload carries the why.
func statusFor(kind faults.Kind) int {
	switch kind {
	case faults.KindValidation:
		return http.StatusBadRequest
	case faults.KindAuthentication:
		return http.StatusUnauthorized
	case faults.KindAuthorization:
		return http.StatusForbidden
	case faults.KindNotFound:
		return http.StatusNotFound
	case faults.KindConflict, faults.KindInvalidTransition:
		return http.StatusConflict
	case faults.KindTransient:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// From translates a core error into the JSON error contract. Unclassified
// errors are masked as a generic 500.
func From(c *gin.Context, err error) {
	var fe *faults.Error
	if errors.As(err, &fe) {
		Write(c, statusFor(fe.Kind), fe.Code, fe.Message)
		return
	}
	Internal(c, "internal_error", "Something went wrong.")
}
