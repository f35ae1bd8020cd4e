package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
	"github.com/amirhossein-jamali/keylog/internal/domain/port/core"
	"github.com/amirhossein-jamali/keylog/internal/domain/usecase/keyconfig"
	"github.com/amirhossein-jamali/keylog/internal/domain/usecase/keylog"
	"github.com/amirhossein-jamali/keylog/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/keylog/internal/infrastructure/adapter/sink"
	"github.com/amirhossein-jamali/keylog/internal/infrastructure/config"
)

const usage = `Usage: keylog [flags] [<key> <level> <message>...]

Registers the configured keys and writes one message for <key> at <level>.
Without arguments the registered keys and their levels are listed.

Flags:
`

var errUsage = errors.New("expected <key> <level> <message>")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		appLogger := logger.NewDefaultLogger()
		appLogger.Error("keylog failed", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("keylog", pflag.ContinueOnError)
	fs.String("config", "", "config file (default: configs/<KL_ENV>.yaml)")
	fs.String("override", "off", "override level: debug, info, warn, error or off")
	fs.String("sink", sink.Console, "sink: console, stdout, stderr, discard or zap")
	fs.String("log-level", "info", "diagnostic log level")
	fs.String("log-format", "console", "diagnostic log format: json or console")
	fs.String("log-output", "stderr", "diagnostic log output: stdout, stderr, none or a file")
	fs.StringArray("key", nil, "key spec name=level[:policy], repeatable")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	return fs
}

func run(args []string, out io.Writer) error {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}

	configFile, _ := fs.GetString("config")
	cfg, err := config.Load(config.LoadOptions{File: configFile, Flags: fs})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	specs, _ := fs.GetStringArray("key")
	extra, err := config.ParseKeySpecs(strings.Join(specs, ","))
	if err != nil {
		return err
	}
	cfg.Keylog.Keys = append(cfg.Keylog.Keys, extra...)

	if err := cfg.Validate(); err != nil {
		return err
	}

	zapLogger, appLogger, err := buildLoggers(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Flush() }()

	keySink, err := sink.New(cfg.Keylog.Sink, out, zapLogger.Named("keylog"))
	if err != nil {
		return err
	}

	svc := keylog.NewService(keySink)
	applier := keyconfig.NewApplier(svc, nil, appLogger)
	if _, err := applier.Apply(toEntries(cfg.Keylog.Keys)); err != nil {
		return err
	}
	if err := applier.ApplyOverride(cfg.Keylog.Override); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		listKeys(out, svc.GetRegistry())
		return nil
	}

	key, level, data, err := parseMessage(applier.Catalog(), fs.Args())
	if err != nil {
		fs.Usage()
		return err
	}

	appLogger.Debug("Emitting message", map[string]any{
		"key":      key.Display(),
		"level":    level.Display(),
		"decision": svc.Decide(key, level).String(),
	})
	svc.Log(key, level, data...)
	return nil
}

// buildLoggers returns the zap logger backing both the zap sink and the
// diagnostic logger. Output "none" silences both.
func buildLoggers(cfg *config.Config) (*zap.Logger, core.Logger, error) {
	if strings.EqualFold(cfg.Logger.Output, "none") {
		return zap.NewNop(), logger.NewNoopLogger(), nil
	}

	zapLogger, err := logger.BuildZap(logger.Options{
		Level:  cfg.LoggerLevel(),
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return zapLogger, logger.NewZapLoggerFrom(zapLogger, cfg.LoggerLevel()), nil
}

func toEntries(keys []config.KeyConfig) []keyconfig.Entry {
	entries := make([]keyconfig.Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, keyconfig.Entry{
			Name:        k.Name,
			Description: k.Description,
			Level:       k.Level,
			Policy:      k.Policy,
		})
	}
	return entries
}

// parseMessage resolves <key> <level> <message>... against the catalog.
// Unknown keys are interned unregistered so only the override applies.
func parseMessage(catalog *keyconfig.Catalog, args []string) (*entity.Key, entity.Level, []any, error) {
	if len(args) < 3 {
		return nil, 0, nil, errUsage
	}

	level, err := entity.ParseLevel(args[1])
	if err != nil {
		return nil, 0, nil, err
	}

	key := catalog.Key(args[0])

	data := make([]any, 0, len(args)-2)
	for _, word := range args[2:] {
		data = append(data, word)
	}
	return key, level, data, nil
}

func listKeys(out io.Writer, registry *entity.Registry) {
	for _, key := range registry.Keys() {
		level, _ := registry.Get(key)
		fmt.Fprintf(out, "%s\t%s\n", key.Display(), level.Display())
	}
}
