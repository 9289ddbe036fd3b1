package service

import (
	"net/http"

	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/a2a"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/exception"
)

var ErrAgentUnavailable = exception.ApplicationError{
	Message:    "agent not available",
	StatusCode: http.StatusInternalServerError,
	RPCCode:    a2a.CodeInternalError,
}
