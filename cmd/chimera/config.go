package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zoobzio/chimera"
)

// config holds resolved CLI settings.
type config struct {
	Alphabet string `mapstructure:"alphabet"`
	Verbose  bool   `mapstructure:"verbose"`
}

// newViper configures config file discovery and CHIMERA_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()

	// CHIMERA_CONFIG points at an explicit config file
	if configFile := os.Getenv("CHIMERA_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("chimera")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.chimera")
	}

	v.SetEnvPrefix("CHIMERA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("alphabet", chimera.DefaultSymbols)
	v.SetDefault("verbose", false)
	return v
}

// loadConfig reads the config file, if any, and resolves settings.
func loadConfig(v *viper.Viper) (config, error) {
	var cfg config

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a console logger on w when verbose, otherwise a no-op logger.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
