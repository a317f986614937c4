package configmanager

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// durationValue adapts a metav1.Duration field to pflag.Value.
type durationValue struct {
	target *metav1.Duration
}

func (d durationValue) String() string {
	if d.target == nil {
		return ""
	}

	return d.target.Duration.String()
}

func (d durationValue) Set(raw string) error {
	return setDurationFromFlag(d.target, raw)
}

func (durationValue) Type() string { return "duration" }

// AddFlagsFromFields registers one flag per field selector. Flags write straight into
// m.Config; Load re-applies them after merging the other sources.
func (m *ConfigManager) AddFlagsFromFields(cmd *cobra.Command) {
	flags := cmd.Flags()

	for _, selector := range m.fieldSelectors {
		if flags.Lookup(selector.Flag) != nil {
			continue
		}

		switch ptr := selector.Selector(m.Config).(type) {
		case *string:
			flags.StringVar(ptr, selector.Flag, *ptr, selector.Description)
		case *[]string:
			flags.StringSliceVar(ptr, selector.Flag, *ptr, selector.Description)
		case *metav1.Duration:
			flags.Var(durationValue{target: ptr}, selector.Flag, selector.Description)
		case pflag.Value:
			flags.Var(ptr, selector.Flag, selector.Description)
		}
	}
}

// flagOverride is the value of a changed flag, captured before other sources are merged
// because flags write into the same fields viper decodes into.
type flagOverride struct {
	raw   string
	slice []string
}

func (m *ConfigManager) captureChangedFlags() map[string]flagOverride {
	if m.command == nil {
		return nil
	}

	changed := make(map[string]flagOverride)

	m.command.Flags().Visit(func(f *pflag.Flag) {
		override := flagOverride{raw: f.Value.String()}

		if slice, ok := f.Value.(pflag.SliceValue); ok {
			override.slice = append([]string(nil), slice.GetSlice()...)
		}

		changed[f.Name] = override
	})

	return changed
}

func (m *ConfigManager) applyFlagOverrides(changed map[string]flagOverride) error {
	for _, selector := range m.fieldSelectors {
		override, ok := changed[selector.Flag]
		if !ok {
			continue
		}

		err := setFieldValueFromFlag(selector.Selector(m.Config), override)
		if err != nil {
			return fmt.Errorf("failed to apply flag override for %s: %w", selector.Flag, err)
		}
	}

	return nil
}

// flagValueSetter is implemented by enum types that satisfy pflag.Value.
type flagValueSetter interface {
	Set(value string) error
}

func setFieldValueFromFlag(fieldPtr any, override flagOverride) error {
	switch ptr := fieldPtr.(type) {
	case *string:
		*ptr = override.raw

		return nil
	case *[]string:
		*ptr = override.slice

		return nil
	case *metav1.Duration:
		return setDurationFromFlag(ptr, override.raw)
	case flagValueSetter:
		err := ptr.Set(override.raw)
		if err != nil {
			return fmt.Errorf("set flag value: %w", err)
		}

		return nil
	default:
		return nil
	}
}

func setDurationFromFlag(target *metav1.Duration, raw string) error {
	if raw == "" {
		target.Duration = 0

		return nil
	}

	duration, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}

	target.Duration = duration

	return nil
}
