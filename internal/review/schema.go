package review

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"dtr-engine/constants"
)

// rulesSchema constrains an approval's extraction rules: at least one rule,
// keys restricted to the logical field names, values either a group index
// or a named group identifier.
func rulesSchema() map[string]any {
	props := map[string]any{}
	for _, f := range constants.AsStringSlice() {
		props[f] = map[string]any{
			"type":    "string",
			"pattern": `^([0-9]+|[A-Za-z_][A-Za-z0-9_]*)$`,
		}
	}
	return map[string]any{
		"type":                 "object",
		"minProperties":        1,
		"properties":           props,
		"additionalProperties": false,
	}
}

// ValidateRules validates an extraction-rules mapping against the schema.
func ValidateRules(rules map[string]string) error {
	data, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	return validateJSONAgainstSchema(rulesSchema(), data)
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
