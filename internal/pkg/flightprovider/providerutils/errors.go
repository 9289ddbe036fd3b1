package providerutils

import (
	"net/http"

	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/exception"
)

var ErrProviderUnavailable = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider unavailable or returned an error status",
}

var ErrProviderMalformedResponse = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider returned a malformed response",
}
