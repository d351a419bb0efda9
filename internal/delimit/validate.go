package delimit

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["x", "y", "width", "height", "referenceWidth", "referenceHeight"],
  "properties": {
    "x": {"type": "number", "minimum": 0},
    "y": {"type": "number", "minimum": 0},
    "width": {"type": "number", "exclusiveMinimum": 0},
    "height": {"type": "number", "exclusiveMinimum": 0},
    "referenceWidth": {"type": "number", "exclusiveMinimum": 0},
    "referenceHeight": {"type": "number", "exclusiveMinimum": 0}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// ValidationError lists why a delimitation document was rejected.
type ValidationError struct {
	Problems []string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return "invalid delimitation: " + strings.Join(e.Problems, "; ")
}

// Validate checks a raw JSON delimitation document before it is accepted.
func Validate(raw []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return &ValidationError{Problems: msgs}
}
