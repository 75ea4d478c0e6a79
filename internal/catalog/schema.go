package catalog

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://quizdeck/catalog.json"

// catalogSchema is the JSON Schema every catalog file must satisfy.
const catalogSchema = `{
  "type": "object",
  "required": ["info", "questions"],
  "properties": {
    "info": {
      "type": "object",
      "required": ["id", "title"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "title": {"type": "string", "minLength": 1},
        "instructor": {"type": "string"},
        "examDate": {"type": "string"},
        "examTime": {"type": "string"}
      }
    },
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "question", "answer"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "question": {"type": "string", "minLength": 1},
          "options": {"type": "array", "minItems": 2, "maxItems": 4, "items": {"type": "string"}},
          "answer": {"type": "string", "minLength": 1},
          "hint": {"type": "string"}
        }
      }
    },
    "descriptiveQuestions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "question", "answer"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "question": {"type": "string", "minLength": 1},
          "answer": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(catalogSchema)))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateSchema checks raw catalog JSON against the catalog schema.
func validateSchema(raw []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
