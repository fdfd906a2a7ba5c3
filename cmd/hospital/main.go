package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/hospital/internal/config"
	"github.com/ehr/hospital/internal/console"
	"github.com/ehr/hospital/internal/platform/auth"
	"github.com/ehr/hospital/internal/registry"
	"github.com/ehr/hospital/pkg/pagination"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital management console",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd)
		},
	}
	rootCmd.PersistentFlags().Bool("no-seed", false, "Start with an empty registry")

	rootCmd.AddCommand(consoleCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Start the interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd)
		},
	}
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "list <persons|medicines|rooms|bills>",
		Short:     "Print a registry collection",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"persons", "medicines", "rooms", "bills"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			reg := buildRegistry(cmd, cfg, logger)

			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")
			asJSON, _ := cmd.Flags().GetBool("json")
			p := pagination.New(limit, offset, cfg.PageSize)

			out := cmd.OutOrStdout()
			r := console.NewRenderer(out, cfg.Tag(), cfg.CurrencySymbol)
			switch args[0] {
			case "persons":
				return writeList(out, r, asJSON, p, reg.Persons(), "No persons registered.", r.Member)
			case "medicines":
				return writeList(out, r, asJSON, p, reg.Medicines(), "No medicines in inventory.", r.Medicine)
			case "rooms":
				return writeList(out, r, asJSON, p, reg.Rooms(), "No rooms available.", r.Room)
			case "bills":
				return writeList(out, r, asJSON, p, reg.Bills(), "No billing records.", r.Bill)
			}
			return fmt.Errorf("unknown collection %q", args[0])
		},
	}
	cmd.Flags().Int("limit", 0, "Maximum items to print (default PAGE_SIZE)")
	cmd.Flags().Int("offset", 0, "Items to skip")
	cmd.Flags().Bool("json", false, "Print as JSON")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "hospital %s\n", version)
			return nil
		},
	}
}

func writeList[T any](w io.Writer, r *console.Renderer, asJSON bool, p pagination.Params, items []T, empty string, render func(T)) error {
	page := pagination.Apply(items, p)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pagination.NewResponse(page, len(items), p.Limit, p.Offset))
	}
	console.List(r, page, empty, render)
	var hints []string
	if p.HasPrevious() {
		hints = append(hints, fmt.Sprintf("prev: --offset %d", p.PreviousOffset()))
	}
	if p.HasNext(len(items)) {
		hints = append(hints, fmt.Sprintf("next: --offset %d", p.NextOffset()))
	}
	if len(hints) > 0 {
		fmt.Fprintf(w, "(%d of %d shown, %s)\n", len(page), len(items), strings.Join(hints, ", "))
	}
	return nil
}

func runConsole(cmd *cobra.Command) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	reg := buildRegistry(cmd, cfg, logger)

	users := auth.NewStore(logger)
	if err := users.SeedDemoUsers(cfg.DemoPassword); err != nil {
		return fmt.Errorf("seed demo users: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(reg, users, cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
		HospitalName:   cfg.HospitalName,
		Locale:         cfg.Tag(),
		CurrencySymbol: cfg.CurrencySymbol,
	}, logger)

	logger.Info().Str("hospital", cfg.HospitalName).Msg("console started")
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("console stopped")
	return nil
}

// setup loads and validates config and builds the logger. Logs go to the
// command's error stream so they stay out of the menu.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid config: %w", err)
	}
	return cfg, newLogger(cfg, cmd.ErrOrStderr()), nil
}

func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	}
	return logger.Level(cfg.Level())
}

func buildRegistry(cmd *cobra.Command, cfg *config.Config, logger zerolog.Logger) *registry.Registry {
	reg := registry.New(logger)
	noSeed, _ := cmd.Flags().GetBool("no-seed")
	if cfg.SeedData && !noSeed {
		registry.Seed(reg)
	}
	return reg
}
