package subscription

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotSequence is returned when a subscriptions value is not a YAML list.
var ErrNotSequence = errors.New("subscriptions value is not a YAML sequence")

// Validate checks that text still decodes as a YAML sequence.
// Blank text is valid: it means there are no subscriptions left.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var node yaml.Node

	err := yaml.Unmarshal([]byte(text), &node)
	if err != nil {
		return fmt.Errorf("decode subscriptions: %w", err)
	}

	if len(node.Content) == 0 {
		return nil
	}

	if node.Content[0].Kind != yaml.SequenceNode {
		return ErrNotSequence
	}

	return nil
}
