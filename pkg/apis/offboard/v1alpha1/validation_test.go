package v1alpha1_test

import (
	"testing"
	"time"

	"github.com/devantler-tech/offboard/pkg/apis/offboard/v1alpha1"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func validConfig() *v1alpha1.Offboarding {
	cfg := v1alpha1.NewOffboarding()
	cfg.Spec.Application = "shop"
	cfg.SetDefaults()

	return cfg
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *v1alpha1.Offboarding)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*v1alpha1.Offboarding) {},
		},
		{
			name:    "missing application",
			mutate:  func(cfg *v1alpha1.Offboarding) { cfg.Spec.Application = "" },
			wantErr: v1alpha1.ErrApplicationRequired,
		},
		{
			name:    "application not DNS compliant",
			mutate:  func(cfg *v1alpha1.Offboarding) { cfg.Spec.Application = "Shop_App" },
			wantErr: v1alpha1.ErrInvalidApplicationName,
		},
		{
			name:    "unknown cascade",
			mutate:  func(cfg *v1alpha1.Offboarding) { cfg.Spec.ArgoCD.Cascade = "Sideways" },
			wantErr: v1alpha1.ErrInvalidCascade,
		},
		{
			name:    "broken selector",
			mutate:  func(cfg *v1alpha1.Offboarding) { cfg.Spec.LabelSelector = "app in (" },
			wantErr: v1alpha1.ErrInvalidLabelSelector,
		},
		{
			name:    "negative timing",
			mutate:  func(cfg *v1alpha1.Offboarding) { cfg.Spec.Timing.SettleDelay = metav1.Duration{Duration: -time.Second} },
			wantErr: v1alpha1.ErrInvalidTiming,
		},
		{
			name:    "wrong kind",
			mutate:  func(cfg *v1alpha1.Offboarding) { cfg.Kind = "Cluster" },
			wantErr: v1alpha1.ErrInvalidAPIVersion,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			testCase.mutate(cfg)

			err := cfg.Validate()
			if testCase.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Spec.Application = ""
	cfg.Spec.ArgoCD.Cascade = "nope"

	err := cfg.Validate()

	require.ErrorIs(t, err, v1alpha1.ErrApplicationRequired)
	require.ErrorIs(t, err, v1alpha1.ErrInvalidCascade)
}
