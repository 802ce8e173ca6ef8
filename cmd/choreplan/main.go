package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/cli"
	"github.com/alexanderramin/choreplan/internal/config"
	"github.com/alexanderramin/choreplan/internal/db"
	"github.com/alexanderramin/choreplan/internal/planner"
	"github.com/alexanderramin/choreplan/internal/repository"
	"github.com/alexanderramin/choreplan/internal/storage"
	"github.com/mattn/go-isatty"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// backend is the persister and inspector behind one storage choice.
type backend interface {
	storage.Persister
	storage.Inspector
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(config.Options{SearchPaths: []string{".", "$HOME/.choreplan"}})
	if err != nil {
		return err
	}

	store, closeStore, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []planner.Option{}
	if cfg.Catalog != "" {
		c, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		opts = append(opts, planner.WithCatalog(c))
	}
	if cfg.LogEvents {
		w, closeLog, err := openLog(cfg.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()
		opts = append(opts, planner.WithObserver(planner.NewLogObserver(w)))
	}

	app := &cli.App{
		Store:       planner.New(ctx, store, opts...),
		Storage:     store,
		ConfigFile:  cfg.File,
		CatalogFile: cfg.Catalog,
		Interactive: isTerminal(os.Stdin) && isTerminal(os.Stdout),
		Build:       cli.BuildInfo{Version: version, Commit: commit, Date: date},
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func openBackend(cfg *config.Config) (backend, func(), error) {
	switch cfg.Backend {
	case config.BackendDiskv:
		return storage.NewDiskv(cfg.Path, cfg.Slot), func() {}, nil
	case config.BackendMemory:
		return storage.NewMemory(), func() {}, nil
	}

	database, err := db.OpenDB(cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	slots := repository.NewSQLiteSlotRepo(database)
	return storage.NewSQLite(slots, cfg.Slot, cfg.Path), func() { database.Close() }, nil
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
