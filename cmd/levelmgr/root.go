package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/level-manager/internal/config"
	"github.com/KirkDiggler/level-manager/internal/errors"
	"github.com/KirkDiggler/level-manager/internal/orchestrators/progression"
	"github.com/KirkDiggler/level-manager/internal/pkg/clock"
	"github.com/KirkDiggler/level-manager/internal/pkg/idgen"
	"github.com/KirkDiggler/level-manager/internal/redis"
	characterrepo "github.com/KirkDiggler/level-manager/internal/repositories/character"
)

// flags holds the persistent flags; a set flag overrides the environment
type flags struct {
	envFile    string
	store      string
	dir        string
	format     string
	redisAddr  string
	sqlitePath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "levelmgr",
		Short: "Character level manager",
		Long: `levelmgr tracks a character's attributes and skills, applies the leveling
rules, and keeps one snapshot per character level.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.envFile, "env-file", config.DefaultEnvFile, "env file to read before the environment")
	pf.StringVar(&f.store, "store", "", "snapshot store: file, redis or sqlite (env LEVELMGR_STORE)")
	pf.StringVar(&f.dir, "dir", "", "snapshot directory for the file store (env LEVELMGR_DIR)")
	pf.StringVar(&f.format, "format", "", "snapshot format for the file store: json or yaml (env LEVELMGR_FORMAT)")
	pf.StringVar(&f.redisAddr, "redis-addr", "", "redis endpoint (env LEVELMGR_REDIS_ADDR)")
	pf.StringVar(&f.sqlitePath, "sqlite-path", "", "sqlite database file (env LEVELMGR_SQLITE_PATH)")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (env LEVELMGR_LOG_LEVEL)")

	rootCmd.AddCommand(newNewCmd(f))
	rootCmd.AddCommand(newLoadCmd(f))
	rootCmd.AddCommand(newLevelsCmd(f))

	return rootCmd
}

// loadConfig reads the environment and applies the flags that were set
func (f *flags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return nil, err
	}

	overrides := []struct {
		flag   string
		value  string
		target *string
	}{
		{"store", f.store, &cfg.Store},
		{"dir", f.dir, &cfg.Dir},
		{"format", f.format, &cfg.Format},
		{"redis-addr", f.redisAddr, &cfg.RedisAddr},
		{"sqlite-path", f.sqlitePath, &cfg.SQLitePath},
		{"log-level", f.logLevel, &cfg.LogLevel},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.target = o.value
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// app is everything a subcommand needs
type app struct {
	service progression.Service
	close   func()
}

// setup loads configuration, installs the logger and opens the snapshot store
func (f *flags) setup(cmd *cobra.Command) (*app, error) {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))

	repo, closeRepo, err := openRepository(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}

	service, err := progression.NewOrchestrator(&progression.Config{
		CharacterRepo: repo,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		closeRepo()
		return nil, err
	}

	return &app{service: service, close: closeRepo}, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openRepository builds the snapshot store selected by cfg
func openRepository(ctx context.Context, cfg *config.Config) (characterrepo.Repository, func(), error) {
	noop := func() {}

	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, noop, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis endpoint")
		}
		if err := redis.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, noop, errors.Wrapf(err, "cannot reach redis at %s", cfg.RedisAddr)
		}
		repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
			Client: client,
			Clock:  clock.New(),
		})
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		slog.Debug("using redis store", "addr", cfg.RedisAddr)
		return repo, func() { _ = client.Close() }, nil

	case config.StoreSQLite:
		db, err := characterrepo.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		repo, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{
			DB:    db,
			Clock: clock.New(),
		})
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		slog.Debug("using sqlite store", "path", cfg.SQLitePath)
		return repo, func() { _ = db.Close() }, nil

	default:
		repo, err := characterrepo.NewFile(&characterrepo.FileConfig{
			Dir:    cfg.Dir,
			Format: cfg.Format,
			Clock:  clock.New(),
		})
		if err != nil {
			return nil, noop, err
		}
		slog.Debug("using file store", "dir", cfg.Dir, "format", cfg.Format)
		return repo, noop, nil
	}
}
