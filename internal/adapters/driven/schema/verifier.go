package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/custodia-labs/ycard/internal/core/ports/driven"
)

// Ensure Verifier implements the interface.
var _ driven.RecordVerifier = (*Verifier)(nil)

const schemaURL = "https://ycard.local/schema/ycard.json"

//go:embed ycard.schema.json
var schemaJSON []byte

// Verifier checks stored records against the yCard schema.
type Verifier struct {
	schema *jsonschema.Schema
}

// NewVerifier compiles the embedded schema.
func NewVerifier() (*Verifier, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Verifier{schema: schema}, nil
}

// Verify decodes data and validates it. Failures are returned as *VerificationError.
func (v *Verifier) Verify(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return &VerificationError{Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if dec.More() {
		return &VerificationError{Message: "invalid JSON: trailing data after record"}
	}

	if err := v.schema.Validate(doc); err != nil {
		return toVerificationError(err)
	}
	return nil
}

// VerificationError describes the first schema failure.
type VerificationError struct {
	// Path is the dotted location of the failing value, e.g. people[0].uid.
	Path    string
	Message string
}

// Error implements error.
func (e *VerificationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

func toVerificationError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &VerificationError{Message: err.Error()}
	}
	leaf := firstLeaf(ve)
	return &VerificationError{
		Path:    pointerToPath(leaf.InstanceLocation),
		Message: leaf.Message,
	}
}

// firstLeaf follows the first cause chain down to the most specific error.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// pointerToPath converts a JSON pointer such as /people/0/uid to people[0].uid.
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
