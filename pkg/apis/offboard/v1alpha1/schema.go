package v1alpha1

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// SchemaID is the $id published with the generated JSON schema.
const SchemaID = "https://offboard.devantler.tech/schemas/offboarding-v1alpha1.json"

// Schema renders the JSON schema of the Offboarding config, indented.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		Mapper:                     mapDuration,
	}

	schema := reflector.Reflect(&Offboarding{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "Offboarding"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return data, nil
}

// mapDuration renders metav1.Duration the way it is written in YAML: a Go duration string.
func mapDuration(t reflect.Type) *jsonschema.Schema {
	if t != reflect.TypeFor[metav1.Duration]() {
		return nil
	}

	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^(\d+(\.\d+)?(ns|us|µs|ms|s|m|h))+$`,
		Description: "Go duration, e.g. 90s or 2m",
	}
}
