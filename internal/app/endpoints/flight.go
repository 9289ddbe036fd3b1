package endpoints

import (
	"context"
	"errors"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/service"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/a2a"
)

type FlightAgentService interface {
	FindFlights(ctx context.Context, query dto.FlightQuery) dto.SearchResult
}

type Endpoints struct {
	FlightEndpoint FlightEndpoint
}

type FlightEndpoint struct {
	Search endpoint.Endpoint
}

func MakeFlightEndpoint(agent FlightAgentService) FlightEndpoint {
	return FlightEndpoint{
		Search: makeSearchEndpoint(agent),
	}
}

func makeSearchEndpoint(agent FlightAgentService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*a2a.Request)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if agent == nil {
			return nil, &a2a.EnvelopeError{
				Err:       service.ErrAgentUnavailable,
				Responder: request.Responder,
			}
		}

		result := agent.FindFlights(ctx, request.Query)

		return request.Responder.Result(result), nil
	}
}
