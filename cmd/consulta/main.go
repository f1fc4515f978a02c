// Package main provides the consulta command: it fetches the day's judicial
// communications for the configured attorney and saves them as a spreadsheet.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"consultapje/internal/comunica"
	"consultapje/internal/config"
	"consultapje/internal/logger"
	"consultapje/internal/models"
	"consultapje/internal/normalizer"
	"consultapje/internal/report"
	"consultapje/internal/worker"
)

type options struct {
	configPath string
	envFile    string
	date       string
	start      string
	end        string
	input      string
	label      string
	output     string
	saveRaw    bool
	debug      bool
}

// app holds everything initialized once per process.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	closer   io.Closer
	exporter *report.Exporter
	runID    string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "consulta",
		Short:        "Consulta comunicações processuais do PJe e gera um relatório Excel",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd.Context(), cmd.OutOrStdout(), opts, time.Now())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config (defaults built in)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Optional .env file with PJE_* overrides")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log at debug level regardless of config")
	cmd.Flags().StringVar(&opts.date, "date", "", "Disclosure date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.start, "start", "", "Window start YYYY-MM-DD (overrides --date)")
	cmd.Flags().StringVar(&opts.end, "end", "", "Window end YYYY-MM-DD (overrides --date)")
	cmd.Flags().BoolVar(&opts.saveRaw, "save-raw", false, "Save the raw API response next to the report")

	cmd.AddCommand(newReplayCmd(opts), newConfigCmd(opts))

	return cmd
}

func newReplayCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Gera o relatório a partir de uma resposta salva com --save-raw",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReplay(cmd.OutOrStdout(), opts, time.Now())
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Saved API response (JSON)")
	cmd.Flags().StringVar(&opts.label, "label", "", "Report label (default today)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Grava a configuração efetiva (padrões, arquivo e variáveis PJE_*) em YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnvFile(opts.envFile); err != nil {
				return err
			}

			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}

			if err := cfg.SaveConfig(opts.output); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuração salva em: %s\n", opts.output)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.output, "output", "consulta_pje.yaml", "Destination YAML file")

	return cmd
}

// setup is the one-time process initialization: config, output directory and log sink.
func setup(opts *options) (*app, error) {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	log, closer, err := logger.NewFileLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, err
	}

	if opts.debug {
		log.SetLevel("debug")
	}

	log, runID := log.WithRunID()

	exporter := report.NewExporter(nil, report.Options{
		Dir:            cfg.Output.Dir,
		Prefix:         cfg.Output.Prefix,
		Extension:      cfg.Output.Extension,
		SheetName:      cfg.Output.SheetName,
		HeaderColor:    cfg.Output.HeaderColor,
		RunID:          runID,
		MaxColumnWidth: cfg.Output.MaxColumnWidth,
		ColumnPadding:  cfg.Output.ColumnPadding,
	}, log)

	return &app{cfg: cfg, log: log, closer: closer, exporter: exporter, runID: runID}, nil
}

func (a *app) runner(q worker.Querier) *worker.Runner {
	return worker.NewRunner(a.cfg.Identity(), q, normalizer.NewProcessor(a.log), a.exporter, a.log)
}

func runQuery(ctx context.Context, out io.Writer, opts *options, now time.Time) error {
	window, label, err := resolveWindow(opts.date, opts.start, opts.end, now)
	if err != nil {
		return err
	}

	a, err := setup(opts)
	if err != nil {
		return err
	}
	defer a.closer.Close()

	a.log.Info("Iniciando consulta", "config", a.cfg.String())

	client := comunica.NewClient(comunica.Options{
		Endpoint:  a.cfg.Query.Endpoint,
		UserAgent: a.cfg.Query.UserAgent,
		Timeout:   a.cfg.Query.GetTimeout(),
	}, a.log)

	r := a.runner(client)
	if opts.saveRaw {
		r.WithRawSink(func(p *models.Payload, label string) error {
			path := strings.TrimSuffix(a.exporter.Path(label), "."+a.cfg.Output.Extension) + ".json"

			return comunica.SavePayloadFile(p, path)
		})
	}

	printResult(out, r.Run(ctx, window, label))

	return nil
}

func runReplay(out io.Writer, opts *options, now time.Time) error {
	label := opts.label
	if label == "" {
		label = now.Format(models.DateLayout)
	}

	a, err := setup(opts)
	if err != nil {
		return err
	}
	defer a.closer.Close()

	payload, err := comunica.LoadPayloadFile(opts.input)
	if err != nil {
		a.log.Error("Falha ao ler resposta salva", "error", err)

		return nil
	}

	printResult(out, a.runner(nil).Replay(payload, label))

	return nil
}

func printResult(out io.Writer, res *worker.Result) {
	if res.Outcome == worker.OutcomeExported {
		fmt.Fprintf(out, "Consulta concluída com sucesso. Arquivo salvo em: %s\n", res.Path)
	}
}
