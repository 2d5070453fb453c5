package boundary

import (
	"net/http"

	"github.com/kbukum/faultkit/code"
)

// StatusOf maps a code to the HTTP status used by Middleware. Wire-protocol
// mapping is a collaborator concern, so the mapping is deliberately coarse;
// applications needing a different one wrap the handler themselves.
func StatusOf(c code.Code) int {
	switch c {
	case code.NotFound:
		return http.StatusNotFound
	case code.AlreadyExists:
		return http.StatusConflict
	case code.InvalidInput, code.BadConfig:
		return http.StatusBadRequest
	case code.PermissionDenied:
		return http.StatusForbidden
	case code.Timeout:
		return http.StatusGatewayTimeout
	case code.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
