package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "KL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// File is an explicit config file; when empty <env>.yaml is searched in ConfigPaths
	File string
	// Flags, when set, are bound to their config keys and take precedence
	Flags *pflag.FlagSet
}

// FlagKeys maps command line flag names to config keys
var FlagKeys = map[string]string{
	"override":   "keylog.override",
	"sink":       "keylog.sink",
	"log-level":  "logger.level",
	"log-format": "logger.format",
	"log-output": "logger.output",
}

// LoadConfig loads configuration for the environment selected by KL_ENV
func LoadConfig() (*Config, error) {
	return Load(LoadOptions{})
}

// LoadConfigFromFile loads configuration from an explicit file
func LoadConfigFromFile(path string) (*Config, error) {
	return Load(LoadOptions{File: path})
}

// Load reads defaults, the config file, .env, environment variables and
// flags, in increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, errNoDotEnv) {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	setDefaults(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(env)
		v.SetConfigType("yaml")
		for _, path := range ConfigPaths {
			v.AddConfigPath(path)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			// defaults and environment only
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.Environment == "" {
		config.Environment = env
	}

	extra, err := ParseKeySpecs(os.Getenv(EnvPrefix + "_KEYS"))
	if err != nil {
		return nil, err
	}
	config.Keylog.Keys = append(config.Keylog.Keys, extra...)

	return &config, nil
}

var errNoDotEnv = errors.New("no .env file found in search paths")

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errNoDotEnv
}

// setDefaults sets default values for every setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")

	v.SetDefault("keylog.sink", "console")
	v.SetDefault("keylog.override", "off")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range FlagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// getEnvironment determines the environment to use based on KL_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// ParseKeySpecs parses "name=level[:policy]" entries separated by commas
func ParseKeySpecs(raw string) ([]KeyConfig, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var keys []KeyConfig
	for _, spec := range strings.Split(raw, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		name, rest, ok := strings.Cut(spec, "=")
		if !ok || name == "" || rest == "" {
			return nil, fmt.Errorf("invalid key spec %q: want name=level[:policy]", spec)
		}
		level, policy, _ := strings.Cut(rest, ":")
		keys = append(keys, KeyConfig{
			Name:   strings.TrimSpace(name),
			Level:  strings.TrimSpace(level),
			Policy: strings.TrimSpace(policy),
		})
	}
	return keys, nil
}
