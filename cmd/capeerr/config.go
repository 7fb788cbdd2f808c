package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/juju/errors"
	"github.com/spf13/viper"
	"github.com/untillpro/goutils/logger"
)

const envPrefix = "CAPEERR"

// autoColor is the terminal detection result of fatih/color at startup.
var autoColor = color.NoColor

// loadConfig reads $HOME/.capeerr.yaml, or cfgFile when given, and layers
// CAPEERR_* environment variables over it. A missing default file is not an error.
func loadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".capeerr")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("output.format", "table")
	viper.SetDefault("output.color", "auto")
	viper.SetDefault("log.level", "warning")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Annotate(err, "read config")
		}
	}

	if logger.IsVerbose() {
		logger.Verbose("config file:", viper.ConfigFileUsed())
	}
	return nil
}

// applyConfig validates the loaded settings and applies the global ones.
func applyConfig() error {
	switch mode := strings.ToLower(viper.GetString("output.color")); mode {
	case "auto":
		color.NoColor = autoColor
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return errors.NotValidf("color mode %q", mode)
	}

	if _, err := formatterFor(viper.GetString("output.format")); err != nil {
		return err
	}

	return setLogLevel(viper.GetString("log.level"))
}

func setLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "none":
		logger.SetLogLevel(logger.LogLevelNone)
	case "error":
		logger.SetLogLevel(logger.LogLevelError)
	case "warning":
		logger.SetLogLevel(logger.LogLevelWarning)
	case "info":
		logger.SetLogLevel(logger.LogLevelInfo)
	case "verbose":
		logger.SetLogLevel(logger.LogLevelVerbose)
	case "trace":
		logger.SetLogLevel(logger.LogLevelTrace)
	default:
		return errors.NotValidf("log level %q", level)
	}
	return nil
}
