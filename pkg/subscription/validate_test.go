package subscription_test

import (
	"testing"

	"github.com/devantler-tech/offboard/pkg/subscription"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
		anyErr  bool
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: "  \n\n"},
		{name: "sequence", input: threeBlocks()},
		{name: "mapping", input: "recipients:\n  - slack:x\n", wantErr: subscription.ErrNotSequence},
		{name: "broken yaml", input: "- recipients:\n\t- bad indent: [\n", anyErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := subscription.Validate(testCase.input)

			switch {
			case testCase.wantErr != nil:
				require.ErrorIs(t, err, testCase.wantErr)
			case testCase.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}
		})
	}
}
