package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albapepper/scoracle-splits/internal/config"
	"github.com/albapepper/scoracle-splits/internal/predict"
	"github.com/albapepper/scoracle-splits/internal/provider/espn"
	"github.com/albapepper/scoracle-splits/internal/splits"
)

// app carries what every subcommand needs once config is loaded.
type app struct {
	logger  *slog.Logger
	service *splits.Service
	in      *bufio.Reader
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "scoracle-splits",
		Short:         "ESPN player splits and weighted stat projections",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.AddCommand(splitsCmd(a))
	root.AddCommand(predictCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.OutOrStdout(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.in = bufio.NewReader(cmd.InOrStdin())

	client := espn.New(espn.Options{
		BaseURL:           cfg.ESPNBaseURL,
		UserAgent:         cfg.ESPNUserAgent,
		Timeout:           cfg.ESPNHTTPTimeout,
		RequestsPerMinute: cfg.ESPNRequestsPerMinute,
	}, nil, a.logger)
	a.service = splits.NewService(client, nil, a.logger)
	return nil
}

// --------------------------------------------------------------------------
// splits command
// --------------------------------------------------------------------------

func splitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "splits [player-id]",
		Short: "Print a player's normalized splits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context) error {
				out := cmd.OutOrStdout()
				playerID, err := a.argOrPrompt(out, args, "Enter player ID: ")
				if err != nil {
					return err
				}

				ns, err := a.service.FetchAndNormalize(ctx, playerID)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, "--- Transformed Splits ---")
				return printJSON(out, ns)
			})
		},
	}
}

// --------------------------------------------------------------------------
// predict command
// --------------------------------------------------------------------------

func predictCmd(a *app) *cobra.Command {
	var sel predict.Selection
	cmd := &cobra.Command{
		Use:   "predict [player-id]",
		Short: "Project per-game stats from home/road, month and opponent splits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context) error {
				out := cmd.OutOrStdout()
				playerID, err := a.argOrPrompt(out, args, "Enter player ID: ")
				if err != nil {
					return err
				}

				ns, err := a.service.FetchAndNormalize(ctx, playerID)
				if err != nil {
					return err
				}

				if sel.Venue == "" {
					if sel.Venue, err = a.prompt(out, "Enter Home or Road: "); err != nil {
						return err
					}
				}
				if !cmd.Flags().Changed("opponent") {
					if sel.Opponent, err = a.prompt(out, "Enter Opponent: "); err != nil {
						return err
					}
				}
				if sel.Month == "" {
					q := fmt.Sprintf("Enter Month (%s): ", strings.Join(ns.Month.Labels(), ", "))
					if sel.Month, err = a.prompt(out, q); err != nil {
						return err
					}
				}

				p, err := predict.New(a.logger).Predict(ns, sel)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, "--- Predicted Stats ---")
				return printJSON(out, p)
			})
		},
	}
	cmd.Flags().StringVar(&sel.Venue, "venue", "", "Home or Road")
	cmd.Flags().StringVar(&sel.Opponent, "opponent", "", "Opponent display name (unknown opponents are ignored)")
	cmd.Flags().StringVar(&sel.Month, "month", "", "Month display name, e.g. January")
	return cmd
}

// --------------------------------------------------------------------------
// Shared helpers
// --------------------------------------------------------------------------

// run handles context cancellation.
func run(fn func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return fn(ctx)
}

func (a *app) argOrPrompt(out io.Writer, args []string, question string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return a.prompt(out, question)
}

// prompt writes question and reads one trimmed line.
func (a *app) prompt(out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
