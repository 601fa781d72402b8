package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	specialsSchemaOnce sync.Once
	specialsSchema     *jsonschema.Schema
	specialsSchemaErr  error
)

// ValidateSpecials validates data against BuildSpecialsJSONSchema, compiling it once.
func ValidateSpecials(data []byte) error {
	specialsSchemaOnce.Do(func() {
		specialsSchema, specialsSchemaErr = compileSchema(BuildSpecialsJSONSchema())
	})
	if specialsSchemaErr != nil {
		return specialsSchemaErr
	}
	return validate(specialsSchema, data)
}

func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func validate(schema *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
