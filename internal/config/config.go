// Package config resolves mdcover settings from flags, environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultFallbackURL is used when the URL list yields no usable entry.
const DefaultFallbackURL = "https://cdn.nlark.com/yuque/0/2026/jpeg/62156892/1768309323937-bff34426-7f34-495e-88b5-2ce52b52ea37.jpeg"

// EnvPrefix is prepended to every environment variable, e.g. MDCOVER_NO_BACKUP.
const EnvPrefix = "MDCOVER"

// Setting keys. They match the command line flag names.
const (
	KeyDir              = "dir"
	KeyURLs             = "urls"
	KeyNoBackup         = "no-backup"
	KeySeed             = "seed"
	KeySpacer           = "spacer"
	KeyFallbackURL      = "fallback-url"
	KeyExclude          = "exclude"
	KeyRespectGitignore = "respect-gitignore"
	KeyParallel         = "parallel"
	KeyLogLevel         = "log-level"
)

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting a command can use.
type Config struct {
	Dir              string   `mapstructure:"dir" validate:"required"`
	URLs             string   `mapstructure:"urls" validate:"required"`
	NoBackup         bool     `mapstructure:"no-backup"`
	Seed             uint64   `mapstructure:"seed"`
	Spacer           bool     `mapstructure:"spacer"`
	FallbackURL      string   `mapstructure:"fallback-url" validate:"required,url"`
	Exclude          []string `mapstructure:"exclude" validate:"dive,required"`
	RespectGitignore bool     `mapstructure:"respect-gitignore"`
	Parallel         int      `mapstructure:"parallel" validate:"min=1,max=256"`
	LogLevel         string   `mapstructure:"log-level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

var defaultConfig = Config{
	Dir:         ".",
	URLs:        "urlspic.txt",
	FallbackURL: DefaultFallbackURL,
	Exclude:     []string{},
	Parallel:    1,
	LogLevel:    "warn",
}

// Default returns the built-in settings.
func Default() Config {
	cfg := defaultConfig
	cfg.Exclude = []string{}

	return cfg
}

// Load merges, in increasing priority, defaults, the config file, MDCOVER_*
// environment variables and flags that were set explicitly.
// An empty configFile searches for .mdcover.yaml in the working directory and $HOME.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()

	v.SetDefault(KeyDir, defaultConfig.Dir)
	v.SetDefault(KeyURLs, defaultConfig.URLs)
	v.SetDefault(KeyNoBackup, defaultConfig.NoBackup)
	v.SetDefault(KeySeed, defaultConfig.Seed)
	v.SetDefault(KeySpacer, defaultConfig.Spacer)
	v.SetDefault(KeyFallbackURL, defaultConfig.FallbackURL)
	v.SetDefault(KeyExclude, defaultConfig.Exclude)
	v.SetDefault(KeyRespectGitignore, defaultConfig.RespectGitignore)
	v.SetDefault(KeyParallel, defaultConfig.Parallel)
	v.SetDefault(KeyLogLevel, defaultConfig.LogLevel)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("error binding flags: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".mdcover")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
