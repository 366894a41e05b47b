// Command migrations applies schema migrations for the gateway stores:
// the Postgres mint record table and the ClickHouse mint event journal.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
)

type config struct {
	PostgresDSN   string `long:"postgres-dsn" env:"MIGRATIONS_POSTGRES_DSN" description:"PostgreSQL DSN; when set, migrations/postgres is applied"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"MIGRATIONS_CLICKHOUSE_DSN" description:"ClickHouse DSN; when set, migrations/clickhouse is applied"`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" default:"migrations" description:"Root directory with per-store migration files"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	if cfg.PostgresDSN == "" && cfg.ClickhouseDSN == "" {
		log.Fatal("nothing to do: set --postgres-dsn and/or --clickhouse-dsn")
	}

	if cfg.PostgresDSN != "" {
		if err := apply("postgres", filepath.Join(cfg.MigrationsDir, "postgres"), cfg.PostgresDSN); err != nil {
			log.Fatalf("postgres migrations failed: %v", err)
		}
	}
	if cfg.ClickhouseDSN != "" {
		if err := apply("clickhouse", filepath.Join(cfg.MigrationsDir, "clickhouse"), cfg.ClickhouseDSN); err != nil {
			log.Fatalf("clickhouse migrations failed: %v", err)
		}
	}
}

func apply(store, dir, dsn string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("stat migrations dir %s: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", abs)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", filepath.ToSlash(abs)), dsn)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("%s migration source close error: %v", store, srcErr)
		}
		if dbErr != nil {
			log.Printf("%s migration database close error: %v", store, dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Printf("%s: no migrations to apply", store)
			return nil
		}
		return err
	}

	log.Printf("%s: migrations applied", store)
	return nil
}
