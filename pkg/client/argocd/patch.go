package argocd

import (
	"encoding/json"
	"fmt"
	"strings"
)

// patchOperation is one RFC 6902 operation.
type patchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

//nolint:gochecknoglobals // immutable replacer
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// dataPath returns the JSON pointer to key inside an object's data map.
func dataPath(key string) string {
	return "/data/" + pointerEscaper.Replace(key)
}

func removeOp(key string) patchOperation {
	return patchOperation{Op: "remove", Path: dataPath(key)}
}

func replaceOp(key, value string) patchOperation {
	return patchOperation{Op: "replace", Path: dataPath(key), Value: value}
}

func encodePatch(ops []patchOperation) ([]byte, error) {
	patch, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("encode json patch: %w", err)
	}

	return patch, nil
}
