package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vango-dev/modal/pkg/modal"
	"github.com/vango-dev/modal/pkg/server"
)

const (
	configName = "vango-modal"
	envPrefix  = "VANGO_MODAL"
)

// fileConfig mirrors the keys accepted in the config file, the environment
// and flags.
type fileConfig struct {
	Addr            string        `mapstructure:"addr"`
	Title           string        `mapstructure:"title"`
	Size            string        `mapstructure:"size"`
	Position        string        `mapstructure:"position"`
	LogLevel        string        `mapstructure:"log-level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
	MaxMessageSize  int64         `mapstructure:"max-message-size"`
	AllowAllOrigins bool          `mapstructure:"allow-all-origins"`
}

// newViper returns a viper instance reading the named file, or searching
// the working directory, the home directory and /etc/vango-modal/ when
// cfgFile is empty. Environment variables use the VANGO_MODAL_ prefix.
func newViper(cfgFile string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath("/etc/vango-modal/")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := server.DefaultConfig()
	v.SetDefault("addr", defaults.Address)
	v.SetDefault("title", defaults.Title)
	v.SetDefault("size", string(defaults.DefaultSize))
	v.SetDefault("position", string(defaults.DefaultPosition))
	v.SetDefault("log-level", "info")
	v.SetDefault("shutdown-timeout", defaults.ShutdownTimeout)
	v.SetDefault("max-message-size", defaults.MaxMessageSize)
	v.SetDefault("allow-all-origins", false)
	return v
}

// loadConfig merges defaults, the config file, the environment and flags
// into a server configuration. A missing config file is not an error unless
// it was named explicitly.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, explicit bool) (*server.Config, *slog.Logger, error) {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("read config: %w", err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, nil, fmt.Errorf("decode config: %w", err)
	}

	size, ok := modal.ParseSize(fc.Size)
	if !ok {
		return nil, nil, fmt.Errorf("unknown size %q (want one of %v)", fc.Size, modal.Sizes())
	}
	position, ok := modal.ParsePosition(fc.Position)
	if !ok {
		return nil, nil, fmt.Errorf("unknown position %q (want one of %v)", fc.Position, modal.Positions())
	}
	level, err := parseLevel(fc.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := server.DefaultConfig()
	cfg.Address = fc.Addr
	cfg.Title = fc.Title
	cfg.DefaultSize = size
	cfg.DefaultPosition = position
	cfg.ShutdownTimeout = fc.ShutdownTimeout
	cfg.MaxMessageSize = fc.MaxMessageSize
	cfg.Logger = logger
	if fc.AllowAllOrigins {
		cfg.CheckOrigin = func(*http.Request) bool { return true }
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
