package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/pastor/internal/domain/build"
)

// Schema returns the JSON schema describing the configuration file.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = jsonschema.ID(build.RepoURL() + "/config.schema.json")
	schema.Title = "pastor configuration"
	schema.Description = "Configuration schema for pastor, an encrypted clipboard history"
	return schema
}

// SchemaJSON returns the configuration schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
