package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/samdwyer/mazewalk/internal/logging"
	"github.com/samdwyer/mazewalk/internal/theme"
)

const (
	configFileName = "mazewalk"
	configFileType = "yaml"
	envPrefix      = "MAZEWALK"

	// Config keys.
	cfgKeyLogLevel          = "log.level"
	cfgKeyLogFormat         = "log.format"
	cfgKeyTheme             = "theme"
	cfgKeyThemeFile         = "theme_file"
	cfgKeyTelemetryEnabled  = "telemetry.enabled"
	cfgKeyTelemetryEndpoint = "telemetry.endpoint"
	cfgKeyTelemetryHeaders  = "telemetry.headers"
)

// loadConfig reads the YAML config file and MAZEWALK_* environment variables.
// An explicit path must exist; the default mazewalk.yaml in the working
// directory is optional.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, logging.FormatText)
	v.SetDefault(cfgKeyTheme, theme.DefaultID)
	v.SetDefault(cfgKeyTelemetryEnabled, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
