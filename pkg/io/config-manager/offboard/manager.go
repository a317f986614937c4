package configmanager

import (
	"errors"
	"fmt"
	"io"

	"github.com/devantler-tech/offboard/pkg/apis/offboard/v1alpha1"
	configmanagerinterface "github.com/devantler-tech/offboard/pkg/io/config-manager"
	"github.com/devantler-tech/offboard/pkg/timer"
	"github.com/devantler-tech/offboard/pkg/utils/notify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when the merged configuration fails validation.
var ErrInvalidConfig = errors.New("invalid offboarding config")

// ConfigManager loads v1alpha1.Offboarding configurations.
type ConfigManager struct {
	Viper           *viper.Viper
	Config          *v1alpha1.Offboarding
	Writer          io.Writer
	fieldSelectors  []FieldSelector[v1alpha1.Offboarding]
	command         *cobra.Command
	configLoaded    bool
	configFileFound bool
}

// Compile-time interface compliance verification.
var _ configmanagerinterface.ConfigManager[v1alpha1.Offboarding] = (*ConfigManager)(nil)

// NewConfigManager creates a config manager reading configFile, or searching the
// default locations when configFile is empty.
func NewConfigManager(
	writer io.Writer,
	configFile string,
	fieldSelectors ...FieldSelector[v1alpha1.Offboarding],
) *ConfigManager {
	return &ConfigManager{
		Viper:          InitializeViper(configFile),
		Config:         v1alpha1.NewOffboarding(),
		Writer:         writer,
		fieldSelectors: fieldSelectors,
	}
}

// NewCommandConfigManager creates a config manager bound to cmd: it registers the
// field selector flags on cmd and writes notifications to cmd's output.
func NewCommandConfigManager(
	cmd *cobra.Command,
	configFile string,
	selectors []FieldSelector[v1alpha1.Offboarding],
) *ConfigManager {
	manager := NewConfigManager(cmd.OutOrStdout(), configFile, selectors...)
	manager.command = cmd
	manager.AddFlagsFromFields(cmd)

	return manager
}

// Load merges defaults, the config file, the environment and flags, in increasing
// precedence, then fills derived names and validates the result.
func (m *ConfigManager) Load(opts configmanagerinterface.LoadOptions) (*v1alpha1.Offboarding, error) {
	if m.configLoaded {
		return m.Config, nil
	}

	if !opts.Silent {
		m.notifyLoadingStart()
	}

	if !opts.IgnoreConfigFile {
		err := m.readConfig(opts.Silent)
		if err != nil {
			return nil, err
		}
	}

	changed := m.captureChangedFlags()

	err := m.unmarshal()
	if err != nil {
		return nil, err
	}

	m.expandPlaceholders(opts.Silent)

	err = m.applyFlagOverrides(changed)
	if err != nil {
		return nil, err
	}

	declared := m.Config.TypeMeta

	m.Config.SetDefaults()

	// Keep what the file declared so validation sees a missing apiVersion or kind.
	if m.configFileFound && !opts.SkipValidation {
		m.Config.TypeMeta = declared
	}

	if !opts.SkipValidation {
		err = m.validate(opts.Silent)
		if err != nil {
			return nil, err
		}
	}

	if !opts.Silent {
		m.notifyLoadingComplete(opts.Timer)
	}

	m.configLoaded = true

	return m.Config, nil
}

// SetConfigFile replaces the config file search with path. An empty path keeps the
// current behavior. It has no effect once the config is loaded.
func (m *ConfigManager) SetConfigFile(path string) {
	if path == "" {
		return
	}

	m.Viper.SetConfigFile(path)
}

// ConfigFileUsed returns the path of the config file read, or "" when none was found.
func (m *ConfigManager) ConfigFileUsed() string {
	if !m.configFileFound {
		return ""
	}

	return m.Viper.ConfigFileUsed()
}

func (m *ConfigManager) readConfig(silent bool) error {
	err := m.Viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		m.configFileFound = false

		if !silent {
			notify.Activityf(m.Writer, "no config file found, using environment and flags")
		}

		return nil
	}

	m.configFileFound = true

	if !silent {
		notify.Activityf(m.Writer, "'%s' found", m.Viper.ConfigFileUsed())
	}

	return nil
}

func (m *ConfigManager) unmarshal() error {
	// A config file must declare its own apiVersion and kind.
	if m.configFileFound {
		m.Config.APIVersion = ""
		m.Config.Kind = ""
	}

	err := m.Viper.Unmarshal(m.Config, decoderConfig)
	if err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return nil
}

func (m *ConfigManager) validate(silent bool) error {
	err := m.Config.Validate()
	if err == nil {
		return nil
	}

	if !silent {
		notify.Errorf(m.Writer, "%s", err.Error())
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}

func (m *ConfigManager) notifyLoadingStart() {
	notify.Titlef(m.Writer, "⏳", "Load config...")
}

func (m *ConfigManager) notifyLoadingComplete(tmr timer.Timer) {
	notify.WriteMessage(notify.Message{
		Type:    notify.SuccessType,
		Content: "config loaded",
		Timer:   tmr,
		Writer:  m.Writer,
	})
}
