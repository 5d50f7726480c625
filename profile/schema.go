package profile

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID is the $id of the generated profile file schema.
const SchemaID = "https://github.com/randalmurphal/strkit/profile/set.schema.json"

// Schema returns the JSON Schema describing a profile file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}

	schema := r.Reflect(&Set{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "strkit encoding profiles"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
