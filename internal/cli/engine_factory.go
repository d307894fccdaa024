package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/adapters/sqlite"
	"github.com/aretw0/arbor/pkg/ports"
)

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Dir        string
	Debug      bool
}

// LoadConfig reads the config file and applies flag overrides.
func LoadConfig(opts GlobalOptions) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if opts.Dir != "" {
		cfg.Dir = opts.Dir
	}
	if opts.Debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// CreateLogger configures the application logger on stderr.
// Stdout is reserved for results and prompts.
func CreateLogger(cfg config.Log) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return logging.New(level, format), nil
}

// OpenJournal builds the play journal selected by cfg. The returned closer is never nil.
func OpenJournal(ctx context.Context, cfg config.Journal) (ports.Journal, io.Closer, error) {
	switch cfg.Driver {
	case "", config.DriverNone:
		return nil, nopCloser{}, nil
	case config.DriverMemory:
		return memory.NewJournal(), nopCloser{}, nil
	case config.DriverSQLite:
		j, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("open sqlite journal: %w", err)
		}
		return j, j, nil
	case config.DriverRedis:
		opts := []redis.Option{redis.WithTTL(cfg.TTL)}
		if cfg.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Prefix))
		}
		j, err := redis.New(ctx, cfg.Addr, cfg.Password, cfg.DB, opts...)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("open redis journal: %w", err)
		}
		return j, j, nil
	default:
		return nil, nopCloser{}, fmt.Errorf("unknown journal driver %q", cfg.Driver)
	}
}

// CreateEngine initializes an arbor engine with standard CLI conventions.
// No topic is loaded yet. The returned close function releases the journal.
func CreateEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, extra ...arbor.Option) (*arbor.Engine, func() error, error) {
	journal, closer, err := OpenJournal(ctx, cfg.Journal)
	if err != nil {
		return nil, nil, err
	}

	engineOpts := []arbor.Option{
		arbor.WithLogger(logger),
		arbor.WithConfirmationPolicy(cfg.Policy()),
	}
	if journal != nil {
		engineOpts = append(engineOpts, arbor.WithJournal(journal))
	}
	if len(cfg.Topics) > 0 {
		engineOpts = append(engineOpts, arbor.WithSources(cfg.Sources()))
	}
	engineOpts = append(engineOpts, extra...)

	engine, err := arbor.New(cfg.Dir, engineOpts...)
	if err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, closer.Close, nil
}

// LoadTopics loads every configured topic. Topics that fail to load are
// logged and skipped; it only fails when none could be loaded.
func LoadTopics(ctx context.Context, engine *arbor.Engine, logger *slog.Logger) error {
	err := engine.LoadAll(ctx)
	if err == nil {
		return nil
	}
	for _, e := range LoadErrors(err) {
		logger.Warn("topic skipped", "error", e)
	}
	if len(engine.Topics()) == 0 {
		return fmt.Errorf("no topic could be loaded: %w", err)
	}
	return nil
}

// LoadErrors returns the individual errors of a joined LoadAll error.
func LoadErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
