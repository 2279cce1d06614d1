package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}

// ProfilesSchema returns a JSON Schema for profiles.yaml.
// Shape: top-level object with profile names as keys, each a Profile object.
func ProfilesSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	profileSch := r.Reflect(&Profile{})
	profileSch.Version = ""
	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                "wrapctl profiles",
		Description:          "Top-level map of wrap profiles (keys: profile names).",
		Type:                 "object",
		AdditionalProperties: profileSch,
	}
}
