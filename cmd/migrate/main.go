// Command migrate manages the placement database schema.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/config"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/logger"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/migration"
)

const usage = `Placement database migration tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (negative rolls back)
  goto <version>        Migrate to a specific version
  version               Show the current schema version
  force <version>       Overwrite the recorded version (dirty-state recovery)
  drop -confirm         Drop every database object
  create <name> [desc]  Create an empty up/down migration pair
  list                  List migrations in the migrations directory

Flags:
  -path string          Migrations directory (default ./migrations)
  -log-level string     debug, info, warn or error (default info)

The database connection comes from config.toml or the IARE_DATABASE_*
environment variables.
`

func main() {
	var (
		path     string
		logLevel string
	)
	flag.StringVar(&path, "path", "migrations", "migrations directory")
	flag.StringVar(&logLevel, "log-level", "info", "log level")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	if err := run(flag.Args(), path, log); err != nil {
		log.Fatal("Migration command failed", zap.Error(err))
	}
}

func run(args []string, path string, log *zap.Logger) error {
	command := args[0]

	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve migrations path: %w", err)
	}

	// create and list work on the filesystem alone.
	switch command {
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("usage: migrate create <name> [description]")
		}
		description := ""
		if len(args) > 2 {
			description = args[2]
		}
		mf, err := migration.CreateMigration(path, args[1], description)
		if err != nil {
			return err
		}
		log.Info("Migration created",
			zap.String("version", mf.Version),
			zap.String("up", mf.UpPath),
			zap.String("down", mf.DownPath),
		)
		return nil

	case "list":
		names, err := migration.ListMigrations(path)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			log.Info("No migrations found", zap.String("path", path))
			return nil
		}
		log.Info("Available migrations", zap.Int("count", len(names)))
		for _, n := range names {
			fmt.Println("  -", n)
		}
		return nil
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

	m, err := migration.New(db, path, log)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		return m.Up()

	case "down":
		return m.Down()

	case "step":
		n, err := intArg(args, "migrate step <n>")
		if err != nil {
			return err
		}
		return m.Steps(n)

	case "goto":
		v, err := intArg(args, "migrate goto <version>")
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("version must not be negative")
		}
		return m.GoTo(uint(v))

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		if version == 0 {
			log.Info("No migrations applied yet")
		} else {
			log.Info("Current schema version",
				zap.Uint("version", version),
				zap.Bool("dirty", dirty),
			)
		}
		return nil

	case "force":
		v, err := intArg(args, "migrate force <version>")
		if err != nil {
			return err
		}
		return m.Force(v)

	case "drop":
		if len(args) < 2 || (args[1] != "-confirm" && args[1] != "--confirm") {
			return fmt.Errorf("drop destroys all data; rerun as: migrate drop -confirm")
		}
		return m.Drop()

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func intArg(args []string, usage string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", args[1])
	}
	return n, nil
}
