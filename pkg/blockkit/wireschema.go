package blockkit

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaURL identifies the embedded message schema.
const SchemaURL = "https://github.com/dyluth/blockkit/schema/message.schema.json"

//go:embed schema/message.schema.json
var messageSchema string

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// MessageSchema returns the compiled structural schema for message payloads.
func MessageSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(SchemaURL, strings.NewReader(messageSchema)); err != nil {
			schemaErr = fmt.Errorf("failed to load message schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(SchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile message schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// ValidateWire checks raw payload JSON against the structural message schema.
// It catches unknown type names and missing keys before any decoding happens.
func ValidateWire(data []byte) error {
	schema, err := MessageSchema()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("failed to parse payload JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match message schema: %w", err)
	}
	return nil
}

// ParseMessage checks data against the message schema, decodes it and
// validates the resulting tree.
func ParseMessage(data []byte) (*Message, error) {
	if err := ValidateWire(data); err != nil {
		return nil, err
	}
	return DecodeMessage(data)
}
