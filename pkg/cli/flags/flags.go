package flags

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/devantler-tech/offboard/pkg/k8s"
	"github.com/devantler-tech/offboard/pkg/timer"
	"github.com/devantler-tech/offboard/pkg/utils/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/cli-runtime/pkg/genericclioptions"
)

const (
	// ConfigFlagName selects an explicit config file.
	ConfigFlagName = "config"
	// LogLevelFlagName sets the debug log level.
	LogLevelFlagName = "log-level"
	// TimingFlagName enables timing output on success messages.
	TimingFlagName = "timing"
	// LogLevelEnv is read when --log-level is not set.
	LogLevelEnv = "OFFBOARD_LOG_LEVEL"
)

// ErrNilCommand is returned when a flag lookup is given no command.
var ErrNilCommand = errors.New("command is nil")

// ErrFlagNotFound is returned when a command does not define a flag.
var ErrFlagNotFound = errors.New("flag not found")

// Globals are the persistent flags of the root command.
type Globals struct {
	ConfigFile string
	LogLevel   string
	Timing     bool
	Kube       *genericclioptions.ConfigFlags
}

// NewGlobals creates Globals with the kubeconfig connection flags.
func NewGlobals() *Globals {
	return &Globals{Kube: k8s.NewConfigFlags()}
}

// AddFlags registers the globals on flagSet.
func (g *Globals) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(
		&g.ConfigFile,
		ConfigFlagName,
		"",
		"Path to the offboarding config (default: ./offboard.yaml or $HOME/.config/offboard/offboard.yaml)",
	)
	flagSet.StringVar(
		&g.LogLevel,
		LogLevelFlagName,
		"",
		fmt.Sprintf("Debug log level (default %q, env %s)", log.DefaultLevel, LogLevelEnv),
	)
	flagSet.BoolVar(&g.Timing, TimingFlagName, false, "Show timing output")

	if g.Kube != nil {
		g.Kube.AddFlags(flagSet)
	}
}

// ResolveLogLevel returns --log-level, then OFFBOARD_LOG_LEVEL, then "".
func (g *Globals) ResolveLogLevel() string {
	if level := strings.TrimSpace(g.LogLevel); level != "" {
		return level
	}

	return os.Getenv(LogLevelEnv)
}

// IsTimingEnabled reports the value of the --timing flag on cmd or its parents.
func IsTimingEnabled(cmd *cobra.Command) (bool, error) {
	if cmd == nil {
		return false, ErrNilCommand
	}

	flag := cmd.Flag(TimingFlagName)
	if flag == nil {
		return false, fmt.Errorf("%w: %s", ErrFlagNotFound, TimingFlagName)
	}

	return flag.Value.String() == "true", nil
}

// MaybeTimer returns tmr when timing is enabled on cmd, else nil.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	if tmr == nil {
		return nil
	}

	enabled, err := IsTimingEnabled(cmd)
	if err != nil || !enabled {
		return nil
	}

	return tmr
}
