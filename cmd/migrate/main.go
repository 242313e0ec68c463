package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bizdesk/backend/internal/infrastructure/config"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/infrastructure/migration"
	"github.com/bizdesk/backend/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// schemaMigrator is the part of migration.Migrator the commands drive
type schemaMigrator interface {
	Up() error
	Down() error
	Steps(n int) error
	GoTo(version uint) error
	Version() (uint, bool, error)
	Force(version int) error
}

// dbCommand runs against an open database with the remaining arguments
type dbCommand func(m schemaMigrator, log *zap.Logger, args []string) error

var errUsage = errors.New("usage")

var dbCommands = map[string]dbCommand{
	"up":   func(m schemaMigrator, _ *zap.Logger, _ []string) error { return m.Up() },
	"down": func(m schemaMigrator, _ *zap.Logger, _ []string) error { return m.Down() },
	"step": func(m schemaMigrator, _ *zap.Logger, args []string) error {
		n, err := intArg(args, "step count")
		if err != nil {
			return err
		}
		return m.Steps(n)
	},
	"goto": func(m schemaMigrator, _ *zap.Logger, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: version required", errUsage)
		}
		v, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("%w: invalid version %q", errUsage, args[0])
		}
		return m.GoTo(uint(v))
	},
	"version": func(m schemaMigrator, log *zap.Logger, _ []string) error {
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		if version == 0 {
			log.Info("No migrations applied")
			return nil
		}
		log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	},
	"force": func(m schemaMigrator, log *zap.Logger, args []string) error {
		v, err := intArg(args, "version")
		if err != nil {
			return err
		}
		log.Warn("Forcing migration version - use with caution!")
		return m.Force(v)
	},
}

func main() {
	var (
		migrationsPath string
		logLevel       string
	)
	flag.StringVar(&migrationsPath, "path", "", "Migrations directory (default: migrations embedded in the binary)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if migrationsPath != "" {
		if migrationsPath, err = filepath.Abs(migrationsPath); err != nil {
			log.Fatal("Failed to get absolute path", zap.Error(err))
		}
	}

	if err := run(log, migrationsPath, args[0], args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			log.Error("Invalid invocation", zap.Error(err))
			printUsage()
			os.Exit(1)
		}
		log.Fatal("Migration command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

func run(log *zap.Logger, migrationsPath, command string, args []string) error {
	log.Info("Migration CLI started",
		zap.String("command", command),
		zap.String("source", sourceLabel(migrationsPath)),
	)

	switch command {
	case "create":
		return create(log, migrationsPath, args)
	case "list":
		return list(log, sourceFS(migrationsPath))
	}

	cmd, ok := dbCommands[command]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	m, err := migration.New(db, migrationsPath, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()
	return cmd(m, log, args)
}

// create writes files, so it always targets a directory on disk
func create(log *zap.Logger, migrationsPath string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: migration name required", errUsage)
	}
	dir := migrationsPath
	if dir == "" {
		dir = "migrations"
	}
	description := ""
	if len(args) > 1 {
		description = args[1]
	}

	mf, err := migration.CreateMigration(dir, args[0], description)
	if err != nil {
		return err
	}
	log.Info("Migration created successfully",
		zap.Uint("version", mf.Version),
		zap.String("up_file", mf.UpPath),
		zap.String("down_file", mf.DownPath),
	)
	return nil
}

func list(log *zap.Logger, fsys fs.FS) error {
	found, err := migration.ListMigrations(fsys)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		log.Info("No migrations found")
		return nil
	}
	log.Info("Available migrations", zap.Int("count", len(found)))
	for _, m := range found {
		fmt.Println("  -", m.Stem())
	}
	return nil
}

func sourceFS(migrationsPath string) fs.FS {
	if migrationsPath == "" {
		return migrations.FS
	}
	return os.DirFS(migrationsPath)
}

func sourceLabel(migrationsPath string) string {
	if migrationsPath == "" {
		return "embedded"
	}
	return migrationsPath
}

func intArg(args []string, what string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: %s required", errUsage, what)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", errUsage, what, args[0])
	}
	return n, nil
}

func printUsage() {
	fmt.Println(`bizdesk database migration tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (positive=up, negative=down)
  goto <version>        Migrate to a specific version
  version               Show current migration version
  force <version>       Force set migration version (use with caution)
  create <name> [desc]  Create a new migration file pair
  list                  List available migrations

Flags:
  -path string          Migrations directory (default: embedded migrations)
  -log-level string     Log level: debug, info, warn, error (default: info)

Environment Variables:
  BIZDESK_DATABASE_HOST, BIZDESK_DATABASE_PORT, BIZDESK_DATABASE_USER,
  BIZDESK_DATABASE_PASSWORD, BIZDESK_DATABASE_DBNAME, BIZDESK_DATABASE_SSLMODE`)
}
