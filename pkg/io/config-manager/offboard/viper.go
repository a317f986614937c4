package configmanager

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigName is the config file name without extension.
	ConfigName = "offboard"
	// ConfigType is the config file format.
	ConfigType = "yaml"
	// EnvPrefix prefixes every environment override, e.g. OFFBOARD_SPEC_APPLICATION.
	EnvPrefix = "OFFBOARD"
)

// envKeys lists every key that may be set from the environment. Viper only
// resolves environment variables for keys it knows about during Unmarshal.
//
//nolint:gochecknoglobals // static key table
var envKeys = []string{
	"spec.application",
	"spec.environment",
	"spec.repository",
	"spec.argocd.namespace",
	"spec.argocd.parentApplication",
	"spec.argocd.childApplication",
	"spec.argocd.cascade",
	"spec.secrets",
	"spec.notifications.configMap",
	"spec.notifications.secret",
	"spec.notifications.controller",
	"spec.notifications.serviceKeys",
	"spec.notifications.subscriptionsKey",
	"spec.notifications.subscriptionMarker",
	"spec.notifications.subscriptionTarget",
	"spec.notifications.secretKeys",
	"spec.notifications.sharedSecretKey",
	"spec.labelSelector",
	"spec.timing.deletionTimeout",
	"spec.timing.pollInterval",
	"spec.timing.settleDelay",
}

// InitializeViper creates a viper instance for offboarding configs.
// An explicit configFile replaces the search in "." and "$HOME/.config/offboard".
func InitializeViper(configFile string) *viper.Viper {
	viperInstance := viper.New()

	viperInstance.SetConfigType(ConfigType)

	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	} else {
		viperInstance.SetConfigName(ConfigName)
		viperInstance.AddConfigPath(".")
		viperInstance.AddConfigPath("$HOME/.config/offboard")
	}

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	for _, key := range envKeys {
		_ = viperInstance.BindEnv(key)
	}

	return viperInstance
}
