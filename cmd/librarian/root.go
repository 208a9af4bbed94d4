package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/engine"
	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
)

// ErrBookNotFound is returned when a book id or id suffix matches no book or more than one.
var ErrBookNotFound = errors.New("no unique book matches this id")

// app holds the global flags and what PersistentPreRunE builds from them.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	dataDir    string
	backend    string
	logLevel   string
	stats      bool

	logger     *slog.Logger
	engine     *engine.Engine
	telemetry  *telemetry
	closeStore func()
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, closeStore: func() {}}

	root := &cobra.Command{
		Use:   "librarian",
		Short: "Manage the books and members of a small library",
		Long: `librarian keeps a catalog of books and a list of members with their
borrowed and reserved books. Records live as JSON files in the data directory
or as JSONB rows in PostgreSQL.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setUp,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.tearDown(cmd)
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "Directory of the JSON collection files (overrides config)")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "Storage backend: jsonfile or postgres (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	root.PersistentFlags().BoolVar(&a.stats, "stats", false, "Print handler call statistics after the command")

	root.AddCommand(
		newBooksCommand(a),
		newUsersCommand(a),
		newIssueCommand(a),
		newReturnCommand(a),
		newReserveCommand(a),
		newUnreserveCommand(a),
		newDashboardCommand(a),
		newSeedCommand(a),
	)

	return root
}

// setUp resolves the configuration and builds the engine for every subcommand.
func (a *app) setUp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	a.applyFlags(&cfg)

	if validateErr := cfg.Validate(); validateErr != nil {
		return validateErr
	}

	a.logger = config.NewLogger(a.errOut, cfg.Log)

	a.telemetry = newTelemetry()

	store, closeStore, err := config.NewRecordStore(cmd.Context(), cfg, a.logger, a.telemetry.metrics)
	if err != nil {
		return err
	}

	a.closeStore = closeStore

	a.engine, err = engine.NewEngine(
		store,
		engine.WithLogger(a.logger),
		engine.WithContextualLogger(oteladapters.NewSlogBridgeLoggerWithHandler(a.logger.Handler())),
		engine.WithMetrics(a.telemetry.metrics),
		engine.WithTracing(a.telemetry.tracing),
	)

	return err
}

func (a *app) applyFlags(cfg *config.Config) {
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}

	if a.backend != "" {
		cfg.Backend = a.backend
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
}

func (a *app) tearDown(cmd *cobra.Command) error {
	defer a.closeStore()

	if a.telemetry == nil {
		return nil
	}

	if a.stats {
		if err := a.telemetry.printStats(cmd.Context(), a.out); err != nil {
			return err
		}
	}

	return a.telemetry.shutdown(cmd.Context())
}

// resolveBookID accepts a full book id or a suffix of exactly one id, like the short ids printed in tables.
func (a *app) resolveBookID(cmd *cobra.Command, arg string) (core.BookIDString, error) {
	books, err := a.engine.ListBooks(cmd.Context())
	if err != nil {
		return "", err
	}

	var matches []core.BookIDString

	for _, b := range books {
		if b.ItemID == arg {
			return arg, nil
		}

		if len(arg) > 0 && len(b.ItemID) > len(arg) && b.ItemID[len(b.ItemID)-len(arg):] == arg {
			matches = append(matches, b.ItemID)
		}
	}

	if len(matches) != 1 {
		return "", fmt.Errorf("%w: %q", ErrBookNotFound, arg)
	}

	return matches[0], nil
}
