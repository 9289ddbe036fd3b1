package a2a

import "encoding/json"

// Version is the only protocol version this service speaks.
const Version = "2.0"

// Methods understood by the flight endpoint. Anything else still gets a
// well-formed response built from an empty query.
const (
	MethodFlightSearch = "flight/search"
	MethodMessageSend  = "message/send"
	MethodExecute      = "execute"
)

// JSON-RPC error codes emitted by this service.
const (
	CodeInvalidRequest = -32600
	CodeInternalError  = -32603
)

// Envelope is the inbound JSON-RPC 2.0 request wrapper. The id is kept as
// raw JSON so it is echoed back byte for byte.
type Envelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// Response is the outbound JSON-RPC 2.0 envelope. Exactly one of Result and
// Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the JSON-RPC error object.
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Message is an A2A message carrying one or more parts.
type Message struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a single message part. Only data parts contribute to the query;
// text and file parts are tolerated and skipped.
type Part struct {
	Kind string                 `json:"kind"`
	Text string                 `json:"text,omitempty"`
	Data map[string]interface{} `json:"data,omitempty"`
}
