package a2a

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/exception"
)

// ErrInvalidJSON is returned before normalization when the request body is
// not parseable JSON. It must surface as a 400, never a 500.
var ErrInvalidJSON = exception.ApplicationError{
	Message:    "invalid json",
	StatusCode: http.StatusBadRequest,
	RPCCode:    CodeInvalidRequest,
}

// queryKeys are the flat fields collected when an RPC request carries no
// data part; only keys actually present contribute to the query.
var queryKeys = []string{"input", "from", "to", "destination", "date", "adults", "flight"}

// Request is a fully normalized inbound request: the canonical query plus
// the responder that restores the caller's envelope shape.
type Request struct {
	Query     dto.FlightQuery
	Responder *Responder
}

// EnvelopeError pairs a failure with the responder of the request it failed
// for, so the transport can emit an RPC error object when the request was
// RPC-shaped.
type EnvelopeError struct {
	Err       error
	Responder *Responder
}

func (e *EnvelopeError) Error() string { return e.Err.Error() }

func (e *EnvelopeError) Unwrap() error { return e.Err }

// Responder rebuilds the outbound shape matching the inbound envelope: RPC
// requests get an RPC envelope with the original id, everything else gets
// the bare result object.
type Responder struct {
	rpc bool
	id  json.RawMessage
}

// Result wraps a successful search result for the wire.
func (r *Responder) Result(result interface{}) interface{} {
	if !r.rpc {
		return result
	}

	return Response{
		JSONRPC: Version,
		ID:      r.id,
		Result:  result,
	}
}

// Error wraps a failure for the wire and reports the HTTP status to use.
func (r *Responder) Error(err error) (int, interface{}) {
	var (
		appErr exception.ApplicationError
		status = http.StatusInternalServerError
		code   = CodeInternalError
	)

	if errors.As(err, &appErr) {
		status = appErr.StatusCode

		if appErr.RPCCode != 0 {
			code = appErr.RPCCode
		}
	}

	if !r.rpc {
		return status, dto.ErrorResponse{Error: err.Error()}
	}

	return status, Response{
		JSONRPC: Version,
		ID:      r.id,
		Error: &RPCError{
			Code:    code,
			Message: err.Error(),
		},
	}
}

// Normalize reconciles the three inbound wire shapes into one canonical
// query: a bare query object, a JSON-RPC "flight/search" request, or a
// JSON-RPC "message/send"/"execute" request carrying message parts.
func Normalize(body []byte) (dto.FlightQuery, *Responder, error) {
	if !json.Valid(body) {
		return dto.FlightQuery{}, nil, ErrInvalidJSON
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		// valid JSON but not an object (array or scalar): nothing to
		// extract, all defaults apply
		return dto.FlightQuery{}, &Responder{}, nil
	}

	if version, ok := root["jsonrpc"]; ok && strings.Trim(string(version), `"`) == Version {
		return normalizeRPC(body)
	}

	if rawQuery, ok := root["query"]; ok {
		return queryFromRaw(rawQuery), &Responder{}, nil
	}

	return queryFromRaw(body), &Responder{}, nil
}

func normalizeRPC(body []byte) (dto.FlightQuery, *Responder, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return dto.FlightQuery{}, nil, ErrInvalidJSON
	}

	responder := &Responder{rpc: true, id: env.ID}

	var query dto.FlightQuery

	switch env.Method {
	case MethodFlightSearch:
		query = flightSearchQuery(env.Params)
	case MethodMessageSend:
		query = messageSendQuery(env.Params)
	case MethodExecute:
		query = executeQuery(env.Params)
	default:
		// unknown method: empty query, defaults apply downstream
	}

	return query, responder, nil
}

// flightSearchQuery reads params.query, with an optional params-level "from"
// filling the origin when the query itself left it blank.
func flightSearchQuery(rawParams json.RawMessage) dto.FlightQuery {
	var params struct {
		Query json.RawMessage `json:"query"`
		From  string          `json:"from"`
	}

	if err := json.Unmarshal(rawParams, &params); err != nil {
		return dto.FlightQuery{}
	}

	query := queryFromRaw(params.Query)
	if query.Origin == "" && params.From != "" {
		query.Origin = params.From
	}

	return query
}

// messageSendQuery scans params.message.parts for the first data part that
// looks like a query; with none present it falls back to flat fields on
// params itself.
func messageSendQuery(rawParams json.RawMessage) dto.FlightQuery {
	var params struct {
		Message Message `json:"message"`
	}

	if err := json.Unmarshal(rawParams, &params); err == nil {
		if data, ok := findQueryPart(params.Message.Parts); ok {
			return queryFromMap(data)
		}
	}

	return flatFallbackQuery(rawParams)
}

// executeQuery applies the same data-part scan across params.messages, then
// the same flat fallback on params.
func executeQuery(rawParams json.RawMessage) dto.FlightQuery {
	var params struct {
		Messages []Message `json:"messages"`
	}

	if err := json.Unmarshal(rawParams, &params); err == nil {
		for _, message := range params.Messages {
			if data, ok := findQueryPart(message.Parts); ok {
				return queryFromMap(data)
			}
		}
	}

	return flatFallbackQuery(rawParams)
}

// findQueryPart returns the first data part whose payload carries at least
// one of the trigger keys.
func findQueryPart(parts []Part) (map[string]interface{}, bool) {
	for _, part := range parts {
		if part.Kind != "data" || part.Data == nil {
			continue
		}

		for _, key := range []string{"from", "input", "to"} {
			if _, ok := part.Data[key]; ok {
				return part.Data, true
			}
		}
	}

	return nil, false
}

func flatFallbackQuery(rawParams json.RawMessage) dto.FlightQuery {
	var params map[string]interface{}
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return dto.FlightQuery{}
	}

	flat := make(map[string]interface{}, len(queryKeys))

	for _, key := range queryKeys {
		if value, ok := params[key]; ok {
			flat[key] = value
		}
	}

	return queryFromMap(flat)
}

func queryFromRaw(raw json.RawMessage) dto.FlightQuery {
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return dto.FlightQuery{}
	}

	return queryFromMap(fields)
}

// queryFromMap applies the field aliasing shared by every inbound shape:
// destination from the first of to/destination/flight, origin from the first
// of from/origin/input, lenient adults, currency passed through.
func queryFromMap(fields map[string]interface{}) dto.FlightQuery {
	return dto.FlightQuery{
		Origin:      stringField(fields, "from", "origin", "input"),
		Destination: stringField(fields, "to", "destination", "flight"),
		Date:        stringField(fields, "date"),
		Adults:      lenientAdults(fields["adults"]),
		Currency:    stringField(fields, "currency"),
	}
}

func stringField(fields map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := fields[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}

// lenientAdults accepts numbers and numeric strings; anything else counts
// as a single adult.
func lenientAdults(value interface{}) int {
	switch v := value.(type) {
	case float64:
		if v >= 1 {
			return int(v)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 1 {
			return n
		}
	case json.Number:
		if n, err := v.Int64(); err == nil && n >= 1 {
			return int(n)
		}
	}

	return 0
}
