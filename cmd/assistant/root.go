package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/assistant"
	"github.com/aretw0/assistant/internal/config"
	"github.com/aretw0/assistant/internal/logging"
	"github.com/aretw0/assistant/internal/presentation/tui"
	"github.com/aretw0/assistant/pkg/adapters/memory"
	"github.com/aretw0/assistant/pkg/observability"
	"github.com/aretw0/assistant/pkg/runner"
	"github.com/aretw0/assistant/pkg/shell"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "assistant",
		Short:         "Assistant is an interactive contact book shell",
		Long:          `Assistant keeps a name → phone list in memory and answers one command per line. Type 'help' inside the shell for the command list.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShell,
	}

	cmd.Flags().StringP("config", "c", config.DefaultPath, "Path to a YAML or JSON config file")
	cmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON output)")
	cmd.Flags().Bool("debug", false, "Enable debug logging on stderr")
	cmd.Flags().Bool("no-banner", false, "Do not print the banner")
	cmd.Flags().Bool("render", false, "Render responses as markdown")
	cmd.Flags().String("prompt", "", "Override the input prompt")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

	out := cmd.OutOrStdout()
	if cfg.Banner && !cfg.JSON {
		tui.PrintBanner(out, assistant.Version, isTerminal(out))
	}

	handler, err := createHandler(cfg, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	r := runner.NewRunner(
		runner.WithInputHandler(handler),
		runner.WithShell(shell.New(memory.NewStore(), shell.WithLogger(logger))),
		runner.WithLogger(logger),
		runner.WithMetrics(metrics),
		runner.WithMaxInputSize(cfg.MaxInputSize),
	)

	runErr := r.Run(cmd.Context())
	logSummary(logger, metrics)
	return runErr
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("json") {
		cfg.JSON, _ = flags.GetBool("json")
	}
	if flags.Changed("render") {
		cfg.RenderMarkdown, _ = flags.GetBool("render")
	}
	if noBanner, _ := flags.GetBool("no-banner"); noBanner {
		cfg.Banner = false
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
	if flags.Changed("prompt") {
		cfg.Prompt, _ = flags.GetString("prompt")
	}
	return cfg, nil
}

func createHandler(cfg config.Config, in io.Reader, out io.Writer) (runner.IOHandler, error) {
	if cfg.JSON {
		return runner.NewJSONHandler(in, out), nil
	}

	opts := []runner.TextHandlerOption{runner.WithPrompt(cfg.Prompt)}
	if cfg.RenderMarkdown {
		render, err := tui.NewRenderer()
		if err != nil {
			return nil, err
		}
		opts = append(opts, runner.WithTextHandlerRenderer(render))
	}
	return runner.NewTextHandler(in, out, opts...), nil
}

func logSummary(logger *slog.Logger, metrics *observability.Metrics) {
	totals, err := metrics.Snapshot()
	if err != nil {
		logger.Warn("failed to summarise session", "err", err)
		return
	}
	for key, count := range totals {
		logger.Debug("session summary", "command", key, "count", count)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
