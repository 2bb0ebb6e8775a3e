package storage

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resumeforge/internal/errors"
)

// importSchema is the shape an import payload must satisfy. Entries
// missing name, data, or customization are rejected before anything is
// written.
const importSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "data", "customization"],
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "data": {"type": "object"},
      "customization": {"type": "object"},
      "date": {"type": "string"}
    }
  }
}`

// validateImport checks raw import bytes against the schema and decodes
// them. The store is only touched after this succeeds.
func validateImport(data []byte) ([]SavedResume, error) {
	schemaLoader := gojsonschema.NewStringLoader(importSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, errors.NewValidationError(
			errors.ErrCodeInvalidImport,
			"import payload is not valid JSON",
			err,
		)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, errors.NewValidationError(
			errors.ErrCodeInvalidImport,
			"import payload failed validation: "+strings.Join(msgs, "; "),
			nil,
		)
	}

	var imported []SavedResume
	if err := json.Unmarshal(data, &imported); err != nil {
		return nil, errors.NewValidationError(
			errors.ErrCodeInvalidImport,
			"import payload does not decode",
			err,
		)
	}
	return imported, nil
}
