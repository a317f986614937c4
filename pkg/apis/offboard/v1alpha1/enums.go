package v1alpha1

import (
	"fmt"
	"slices"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// EnumValuer is implemented by string-based enum types to provide their valid values.
type EnumValuer interface {
	ValidValues() []string
}

// Cascade selects how Argo CD Application deletion propagates to owned objects.
type Cascade string

const (
	// CascadeForeground deletes owned objects before the Application disappears.
	CascadeForeground Cascade = "Foreground"
	// CascadeBackground deletes the Application first and owned objects afterwards.
	CascadeBackground Cascade = "Background"
	// CascadeOrphan leaves owned objects in place.
	CascadeOrphan Cascade = "Orphan"
)

// ValidValues returns all valid Cascade values.
func (c *Cascade) ValidValues() []string {
	return []string{string(CascadeForeground), string(CascadeBackground), string(CascadeOrphan)}
}

// Set implements pflag.Value. Matching is case-insensitive.
func (c *Cascade) Set(value string) error {
	for _, valid := range c.ValidValues() {
		if strings.EqualFold(value, valid) {
			*c = Cascade(valid)

			return nil
		}
	}

	return fmt.Errorf("%w: %s (valid options: %s)",
		ErrInvalidCascade, value, strings.Join(c.ValidValues(), ", "))
}

// String implements pflag.Value.
func (c *Cascade) String() string {
	return string(*c)
}

// Type implements pflag.Value.
func (c *Cascade) Type() string {
	return "Cascade"
}

// IsValid reports whether the value is one of ValidValues.
func (c *Cascade) IsValid() bool {
	return slices.Contains(c.ValidValues(), string(*c))
}

// PropagationPolicy maps the cascade mode to a Kubernetes deletion propagation policy.
func (c *Cascade) PropagationPolicy() metav1.DeletionPropagation {
	switch *c {
	case CascadeBackground:
		return metav1.DeletePropagationBackground
	case CascadeOrphan:
		return metav1.DeletePropagationOrphan
	case CascadeForeground:
		return metav1.DeletePropagationForeground
	default:
		return metav1.DeletePropagationForeground
	}
}
