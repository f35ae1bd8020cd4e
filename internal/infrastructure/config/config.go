package config

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
	errs "github.com/amirhossein-jamali/keylog/internal/domain/error"
)

// Config holds all configuration for the application
type Config struct {
	Environment string       `mapstructure:"environment"`
	Logger      LoggerConfig `mapstructure:"logger"`
	Keylog      KeylogConfig `mapstructure:"keylog"`
}

// LoggerConfig contains settings of the application's own diagnostic logger
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // stdout, stderr, none or a file path
}

// KeylogConfig contains settings of the keyed logging facade
type KeylogConfig struct {
	Sink     string      `mapstructure:"sink"`
	Override string      `mapstructure:"override"`
	Keys     []KeyConfig `mapstructure:"keys"`
}

// KeyConfig declares the threshold of one key
type KeyConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Level       string `mapstructure:"level"`
	Policy      string `mapstructure:"policy"` // add, set or update
}

// Validate ensures all required configuration values are present and parseable
func (c *Config) Validate() error {
	var problems []string

	if c.Environment == "" {
		problems = append(problems, "environment is empty")
	} else if c.Environment != Development && c.Environment != Production && c.Environment != Test {
		problems = append(problems, fmt.Sprintf("environment %q must be one of: %s, %s, %s",
			c.Environment, Development, Production, Test))
	}

	if _, err := entity.ParseLevel(c.Logger.Level); err != nil {
		problems = append(problems, "logger.level: "+err.Error())
	}

	switch strings.ToLower(c.Logger.Format) {
	case "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("logger.format %q must be json or console", c.Logger.Format))
	}

	if _, err := entity.ParseLevel(c.Keylog.Override); err != nil {
		problems = append(problems, "keylog.override: "+err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errs.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// LoggerLevel returns the parsed logger level, LevelInfo if unparseable
func (c *Config) LoggerLevel() entity.Level {
	level, err := entity.ParseLevel(c.Logger.Level)
	if err != nil {
		return entity.LevelInfo
	}
	return level
}
