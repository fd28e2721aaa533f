package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/trknhr/creditrisk/internal/importance"
	"github.com/trknhr/creditrisk/internal/store"
	"github.com/trknhr/creditrisk/internal/worker"
)

func NewImportanceCmd(opts *rootOptions) *cobra.Command {
	var (
		force   bool
		noSplit bool
		top     int
	)

	cmd := &cobra.Command{
		Use:   "importance",
		Short: "Recompute the feature importance table from the trained model",
		Long: `Splits the labelled dataset (writing X_test.csv and y_test.csv), extracts
feature importances from the model, or averages them over its sub-models,
and writes them sorted to the importance CSV. Each run is recorded in the
database; unchanged inputs are skipped unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			job := worker.ImportanceJob{
				ModelPath:    opts.cfg.Artifacts.Model,
				FeaturesPath: opts.cfg.Artifacts.Features,
				DatasetPath:  opts.cfg.Importance.Dataset,
				Target:       opts.cfg.Importance.Target,
				TestSize:     opts.cfg.Importance.TestSize,
				Seed:         opts.cfg.Importance.Seed,
				OutputPath:   opts.cfg.Importance.Output,
				SplitDir:     opts.cfg.Importance.SplitDir,
			}
			if noSplit {
				job.DatasetPath = ""
			}
			w := worker.NewImportanceSyncWorker(job, store.NewSQLImportanceStore(db), store.NewMetaStore(db), force)
			if err := worker.RunSyncWorkers(w); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			run := w.Last()
			if run.ID == "" {
				fmt.Fprintf(out, "Feature importance is up to date (%s).\n", job.OutputPath)
				return nil
			}
			fmt.Fprintf(out, "Feature importance saved to %s (run %s).\n", job.OutputPath, run.ID)
			printTable(out, run.Table.Top(top))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "recompute even if the model and dataset are unchanged")
	cmd.Flags().BoolVar(&noSplit, "no-split", false, "skip loading and splitting the dataset")
	cmd.Flags().IntVar(&top, "top", 10, "number of rows to print (0 for all)")

	cmd.AddCommand(newImportanceShowCmd(opts))
	return cmd
}

func newImportanceShowCmd(opts *rootOptions) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the most recent recorded importance run",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			run, err := store.NewSQLImportanceStore(db).LatestRun()
			if errors.Is(err, store.ErrNoRun) {
				return fmt.Errorf("%w: run `creditrisk importance` first", err)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:     %s\n", run.ID)
			fmt.Fprintf(out, "Created: %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Model:   %s (sha256 %.12s)\n", run.ModelPath, run.ModelHash)
			if run.DatasetPath != "" {
				fmt.Fprintf(out, "Dataset: %s (%d test rows)\n", run.DatasetPath, run.TestRows)
			}
			fmt.Fprintln(out)
			printTable(out, run.Table.Top(top))
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of rows to print (0 for all)")
	return cmd
}

func printTable(w io.Writer, t importance.Table) {
	width := len("Feature")
	for _, e := range t {
		if len(e.Feature) > width {
			width = len(e.Feature)
		}
	}
	fmt.Fprintf(w, "%-*s  %s\n", width, "Feature", "Importance")
	for _, e := range t {
		fmt.Fprintf(w, "%-*s  %.6f\n", width, e.Feature, e.Importance)
	}
}
