package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/a2a"
)

type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// MakeHandlerFunc bridges a go-kit endpoint into a chi handler: decode,
// invoke, encode, with every error funneled through ErrorResponse.
func MakeHandlerFunc(ep endpoint.Endpoint, dec DecodeRequestFunc, enc EncodeResponseFunc) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := dec(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := enc(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeA2ARequest reads the raw body and normalizes it into a canonical
// query plus its envelope responder. Unreadable or unparseable bodies fail
// here, before the endpoint runs.
func DecodeA2ARequest(_ context.Context, req *http.Request) (interface{}, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", a2a.ErrInvalidJSON)
	}

	query, responder, err := a2a.Normalize(body)
	if err != nil {
		return nil, fmt.Errorf("normalize request: %w", err)
	}

	return &a2a.Request{Query: query, Responder: responder}, nil
}
