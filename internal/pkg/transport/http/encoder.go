package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/a2a"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// ErrorResponse encodes a failure for the client. Errors carrying an
// envelope responder get the wire shape of the request they failed for (an
// RPC error object for RPC requests); everything else gets the bare error
// object, with unknown errors mapped to a 500.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")

	var envErr *a2a.EnvelopeError
	if errors.As(err, &envErr) && envErr.Responder != nil {
		status, body := envErr.Responder.Error(envErr.Err)
		respWriter.WriteHeader(status)

		//nolint:errcheck,errchkjson
		json.NewEncoder(respWriter).Encode(body)

		return
	}

	var (
		appErr  exception.ApplicationError
		message string
	)

	if errors.As(err, &appErr) {
		respWriter.WriteHeader(appErr.StatusCode)

		message = appErr.Message
	} else {
		respWriter.WriteHeader(http.StatusInternalServerError)

		message = err.Error()

		slog.ErrorContext(ctx, message, slog.Any("error", err))
	}

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(dto.ErrorResponse{
		Error: message,
	})
}
