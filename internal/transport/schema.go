package transport

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// RequestSchema returns the JSON Schema of the request envelope, for
// validating what external tooling writes to the socket.
func RequestSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Request{})
	sch.Title = "easel pane request"
	return sch
}

// EventSchema returns the JSON Schema of the event envelope.
func EventSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Event{})
	sch.Title = "easel pane event"
	return sch
}

// MarshalSchema indents a schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
