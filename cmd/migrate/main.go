package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"pulsar/internal/config"
)

var (
	dir   = flag.String("dir", "db/migrations", "migrations directory")
	steps = flag.Int("steps", 0, "number of steps for the steps command")
)

func main() {
	flag.Parse()
	if err := run(flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

func run(cmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m, err := migrate.New("file://"+*dir, cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	switch cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up: %w", err)
		}
		log.Println("schema is up to date")
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down: %w", err)
		}
		log.Println("schema reverted")
		return nil
	case "steps":
		if *steps == 0 {
			return errors.New("steps requires -steps N")
		}
		if err := m.Steps(*steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("steps: %w", err)
		}
		log.Printf("applied %d steps", *steps)
		return nil
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}
		log.Printf("version %d (dirty: %v)", v, dirty)
		return nil
	default:
		return fmt.Errorf("usage: migrate [-dir path] [-steps N] up|down|steps|version (got %q)", cmd)
	}
}
