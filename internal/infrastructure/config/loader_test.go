package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
	errs "github.com/amirhossein-jamali/keylog/internal/domain/error"
)

const sampleConfig = `
environment: test
logger:
  level: warn
  format: json
  output: stdout
keylog:
  sink: zap
  override: error
  keys:
    - name: net
      level: warn
    - name: db
      description: database
      level: debug
      policy: set
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Run("should decode every section", func(t *testing.T) {
		path := writeConfig(t, "keylog.yaml", sampleConfig)

		cfg, err := LoadConfigFromFile(path)

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, LoggerConfig{Level: "warn", Format: "json", Output: "stdout"}, cfg.Logger)
		assert.Equal(t, "zap", cfg.Keylog.Sink)
		assert.Equal(t, "error", cfg.Keylog.Override)
		assert.Equal(t, []KeyConfig{
			{Name: "net", Level: "warn"},
			{Name: "db", Description: "database", Level: "debug", Policy: "set"},
		}, cfg.Keylog.Keys)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("environment variables override the file", func(t *testing.T) {
		path := writeConfig(t, "keylog.yaml", sampleConfig)
		t.Setenv("KL_KEYLOG_OVERRIDE", "info")
		t.Setenv("KL_LOGGER_LEVEL", "debug")
		t.Setenv("KL_KEYS", "cache=off:update, auth=info")

		cfg, err := LoadConfigFromFile(path)

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Keylog.Override)
		assert.Equal(t, entity.LevelDebug, cfg.LoggerLevel())
		require.Len(t, cfg.Keylog.Keys, 4)
		assert.Equal(t, KeyConfig{Name: "cache", Level: "off", Policy: "update"}, cfg.Keylog.Keys[2])
		assert.Equal(t, KeyConfig{Name: "auth", Level: "info"}, cfg.Keylog.Keys[3])
	})

	t.Run("flags take precedence", func(t *testing.T) {
		path := writeConfig(t, "keylog.yaml", sampleConfig)
		fs := pflag.NewFlagSet("keylog", pflag.ContinueOnError)
		fs.String("override", "off", "")
		fs.String("sink", "console", "")
		require.NoError(t, fs.Parse([]string{"--override=debug"}))

		cfg, err := Load(LoadOptions{File: path, Flags: fs})

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Keylog.Override)
		assert.Equal(t, "zap", cfg.Keylog.Sink, "unchanged flag must not mask the file")
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	saved := ConfigPaths
	ConfigPaths = []string{t.TempDir()}
	t.Cleanup(func() { ConfigPaths = saved })
	t.Setenv("KL_ENV", "Test")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "stderr", cfg.Logger.Output)
	assert.Equal(t, "console", cfg.Keylog.Sink)
	assert.Equal(t, "off", cfg.Keylog.Override)
	assert.Empty(t, cfg.Keylog.Keys)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvironmentFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "production.yaml"), []byte("keylog:\n  override: warn\n"), 0o600))
	saved := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = saved })
	t.Setenv("KL_ENV", "production")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, "warn", cfg.Keylog.Override)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: Development,
			Logger:      LoggerConfig{Level: "info", Format: "console"},
			Keylog:      KeylogConfig{Override: "off"},
		}
	}

	testCases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty environment", func(c *Config) { c.Environment = "" }, "environment is empty"},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }, `"staging"`},
		{"bad logger level", func(c *Config) { c.Logger.Level = "chatty" }, "logger.level"},
		{"bad format", func(c *Config) { c.Logger.Format = "xml" }, "logger.format"},
		{"bad override", func(c *Config) { c.Keylog.Override = "maybe" }, "keylog.override"},
	}

	require.NoError(t, valid().Validate())

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestParseKeySpecs(t *testing.T) {
	keys, err := ParseKeySpecs("net=warn, db=debug:set,,")
	require.NoError(t, err)
	assert.Equal(t, []KeyConfig{
		{Name: "net", Level: "warn"},
		{Name: "db", Level: "debug", Policy: "set"},
	}, keys)

	keys, err = ParseKeySpecs("  ")
	require.NoError(t, err)
	assert.Nil(t, keys)

	for _, bad := range []string{"net", "=warn", "net="} {
		_, err := ParseKeySpecs(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoggerLevel_Fallback(t *testing.T) {
	cfg := &Config{Logger: LoggerConfig{Level: "???"}}
	assert.Equal(t, entity.LevelInfo, cfg.LoggerLevel())
}
