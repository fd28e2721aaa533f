package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/creditrisk/internal/features"
	"github.com/trknhr/creditrisk/internal/model"
)

func NewColumnsCmd(opts *rootOptions) *cobra.Command {
	var useDefault bool

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the feature columns the model expects, in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			columns := features.DefaultColumns
			if !useDefault {
				var err error
				if columns, err = model.LoadColumns(opts.cfg.Artifacts.Features); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			for i, c := range columns {
				fmt.Fprintf(w, "%2d  %s\n", i, c)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useDefault, "default", false, "print the reference German credit column list instead of reading the artifact")
	return cmd
}
