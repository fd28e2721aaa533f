package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/trknhr/creditrisk/internal/dataset"
	"github.com/trknhr/creditrisk/internal/evaluate"
)

func NewEvaluateCmd(opts *rootOptions) *cobra.Command {
	var (
		file    string
		split   bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a labelled, preprocessed CSV and report accuracy metrics",
		Example: `
  # Score every row of a preprocessed dataset
  creditrisk evaluate -f german_credit_preprocessed.csv

  # Only the seeded hold-out part, 8 rows at a time
  creditrisk evaluate -f german_credit_preprocessed.csv --split -w 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = opts.cfg.Evaluate.Workers
			}
			if file == "" {
				file = opts.cfg.Importance.Dataset
			}

			rt, err := opts.loadRuntime()
			if err != nil {
				return err
			}
			frame, err := dataset.ReadCSV(file)
			if err != nil {
				return err
			}
			if split {
				s, err := dataset.TrainTestSplit(frame.Len(), opts.cfg.Importance.TestSize, opts.cfg.Importance.Seed)
				if err != nil {
					return err
				}
				frame = frame.Rows(s.Test)
			}
			cases, err := evaluate.Cases(frame, rt.Columns(), opts.cfg.Importance.Target)
			if err != nil {
				return err
			}

			start := time.Now()
			report, err := evaluate.Run(cmd.Context(), rt, cases, workers)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report, workers, time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "labelled CSV with the model columns and the target (default: the importance dataset)")
	cmd.Flags().BoolVar(&split, "split", false, "only score the seeded test split")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of rows scored concurrently")
	return cmd
}

func printReport(w io.Writer, r evaluate.Report, workers int, took time.Duration) {
	fmt.Fprintf(w, "Evaluated %d rows with %d workers in %v\n", r.Total, workers, took.Round(time.Millisecond))
	fmt.Fprintln(w, "═══════════════════════════════════════")
	fmt.Fprintf(w, "Accuracy:  %.4f\n", r.Accuracy)
	fmt.Fprintf(w, "Precision: %.4f\n", r.Precision)
	fmt.Fprintf(w, "Recall:    %.4f\n", r.Recall)
	fmt.Fprintf(w, "F1:        %.4f\n", r.F1)
	if r.HasAUC {
		fmt.Fprintf(w, "ROC AUC:   %.4f\n", r.AUC)
	} else {
		fmt.Fprintln(w, "ROC AUC:   n/a")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Confusion matrix (rows actual, columns predicted)")
	fmt.Fprintf(w, "%-6s %6s %6s\n", "", "good", "bad")
	fmt.Fprintf(w, "%-6s %6d %6d\n", "good", r.TN, r.FP)
	fmt.Fprintf(w, "%-6s %6d %6d\n", "bad", r.FN, r.TP)
}
