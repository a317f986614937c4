package v1alpha1

import (
	"errors"
	"fmt"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks a defaulted Offboarding and returns every problem found, joined.
func (o *Offboarding) Validate() error {
	var errs []error

	if o.APIVersion != APIVersion || o.Kind != Kind {
		errs = append(errs, fmt.Errorf("%w: %s/%s, expected %s/%s",
			ErrInvalidAPIVersion, o.APIVersion, o.Kind, APIVersion, Kind))
	}

	errs = append(errs, o.Spec.validateApplication()...)

	if !o.Spec.ArgoCD.Cascade.IsValid() {
		errs = append(errs, fmt.Errorf("%w: %q (valid options: %s)",
			ErrInvalidCascade, o.Spec.ArgoCD.Cascade,
			strings.Join(o.Spec.ArgoCD.Cascade.ValidValues(), ", ")))
	}

	errs = append(errs, validateSelector(o.Spec.LabelSelector)...)
	errs = append(errs, o.Spec.Timing.validate()...)

	return errors.Join(errs...)
}

func (s *Spec) validateApplication() []error {
	if s.Application == "" {
		return []error{ErrApplicationRequired}
	}

	problems := validation.IsDNS1123Subdomain(s.Application)
	if len(problems) > 0 {
		return []error{fmt.Errorf("%w: %q: %s",
			ErrInvalidApplicationName, s.Application, strings.Join(problems, "; "))}
	}

	return nil
}

func validateSelector(selector string) []error {
	if selector == "" {
		return nil
	}

	parsed, err := labels.Parse(selector)
	if err != nil {
		return []error{fmt.Errorf("%w: %w", ErrInvalidLabelSelector, err)}
	}

	if parsed.Empty() {
		return []error{fmt.Errorf("%w: %q", ErrEmptyLabelSelector, selector)}
	}

	return nil
}

func (t *Timing) validate() []error {
	var errs []error

	for _, field := range []struct {
		name  string
		value metav1.Duration
	}{
		{"deletionTimeout", t.DeletionTimeout},
		{"pollInterval", t.PollInterval},
		{"settleDelay", t.SettleDelay},
	} {
		if field.value.Duration < 0 {
			errs = append(errs, fmt.Errorf("%w: spec.timing.%s must not be negative", ErrInvalidTiming, field.name))
		}
	}

	return errs
}
