package configmanager

import (
	"fmt"
	"reflect"
	"time"

	"github.com/devantler-tech/offboard/pkg/apis/offboard/v1alpha1"
	mapstructure "github.com/go-viper/mapstructure/v2"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func decoderConfig(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		metav1DurationDecodeHook(),
		cascadeDecodeHook(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// metav1DurationDecodeHook decodes "90s" style strings and raw durations into metav1.Duration.
func metav1DurationDecodeHook() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeFor[metav1.Duration]()

	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType {
			return data, nil
		}

		switch value := data.(type) {
		case string:
			if value == "" {
				return metav1.Duration{}, nil
			}

			parsed, err := time.ParseDuration(value)
			if err != nil {
				return nil, fmt.Errorf("parse duration %q: %w", value, err)
			}

			return metav1.Duration{Duration: parsed}, nil
		case time.Duration:
			return metav1.Duration{Duration: value}, nil
		case int:
			return metav1.Duration{Duration: time.Duration(value)}, nil
		case int64:
			return metav1.Duration{Duration: time.Duration(value)}, nil
		default:
			return data, nil
		}
	}
}

// cascadeDecodeHook normalises the case of cascade values. Unknown values pass
// through unchanged so validation can report them.
func cascadeDecodeHook() mapstructure.DecodeHookFuncType {
	cascadeType := reflect.TypeFor[v1alpha1.Cascade]()

	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		raw, ok := data.(string)
		if to != cascadeType || !ok {
			return data, nil
		}

		var cascade v1alpha1.Cascade

		err := cascade.Set(raw)
		if err != nil {
			return data, nil //nolint:nilerr // validation reports invalid values
		}

		return cascade, nil
	}
}
