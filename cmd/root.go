package cmd

import (
	"database/sql"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/trknhr/creditrisk/internal"
	"github.com/trknhr/creditrisk/internal/config"
	"github.com/trknhr/creditrisk/internal/inference"
	"github.com/trknhr/creditrisk/internal/logger"
	"github.com/trknhr/creditrisk/internal/store"
	"github.com/trknhr/creditrisk/internal/tui"
)

const scoreCacheSize = 128

// rootOptions carries the persistent flags and the configuration resolved
// from them before any subcommand runs.
type rootOptions struct {
	configPath string
	model      string
	scaler     string
	features   string
	importance string
	db         string
	logFile    string
	logLevel   string

	cfg config.Config
}

func (o *rootOptions) resolve(cmd *cobra.Command, interactive bool) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Artifacts.Model = o.model
	}
	if flags.Changed("scaler") {
		cfg.Artifacts.Scaler = o.scaler
	}
	if flags.Changed("features") {
		cfg.Artifacts.Features = o.features
	}
	if flags.Changed("importance") {
		cfg.Importance.Output = o.importance
	}
	if flags.Changed("db") {
		cfg.DB = o.db
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	o.cfg = cfg

	// the form owns the terminal, so it only logs to file
	return logger.Init(cfg.Log.File, cfg.Log.Level, interactive)
}

func (o *rootOptions) loadRuntime() (*inference.Runtime, error) {
	rt, err := inference.Load(inference.Artifacts{
		ModelPath:    o.cfg.Artifacts.Model,
		ScalerPath:   o.cfg.Artifacts.Scaler,
		FeaturesPath: o.cfg.Artifacts.Features,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifacts: %w", err)
	}
	return rt, nil
}

func (o *rootOptions) openDB() (*sql.DB, error) {
	db, err := internal.OpenDB(o.cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "creditrisk",
		Short:         "Predict whether a loan applicant is a good or bad credit risk",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd, cmd == cmd.Root())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.loadRuntime()
			if err != nil {
				return err
			}
			scorer, err := inference.NewCache(rt, scoreCacheSize)
			if err != nil {
				return err
			}
			model := tui.NewFormModel(scorer, opts.cfg.Importance.Output)
			p := tea.NewProgram(model, tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&opts.model, "model", "", "classifier artifact (default voting_model.json)")
	pf.StringVar(&opts.scaler, "scaler", "", "scaler artifact (default scaler.json)")
	pf.StringVar(&opts.features, "features", "", "feature-name artifact (default feature_names.json)")
	pf.StringVar(&opts.importance, "importance", "", "feature importance CSV (default feature_importance.csv)")
	pf.StringVar(&opts.db, "db", "", "libsql database path (default under the user cache dir)")
	pf.StringVar(&opts.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn, error or none")

	cmd.AddCommand(
		NewPredictCmd(opts),
		NewImportanceCmd(opts),
		NewEvaluateCmd(opts),
		NewColumnsCmd(opts),
	)
	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
