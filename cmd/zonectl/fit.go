package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newFitCommand creates the fit command.
func newFitCommand(opts *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Pull stray elements back inside the region",
		Long: `Re-clamp every stored element against the printable region and save the
ones that changed. Curved text is re-validated afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = ws.repo.Close() }()

			list, err := ws.repo.List(cmd.Context())
			if err != nil {
				return err
			}
			fitted := 0
			for _, el := range list {
				out, changed := ws.editor.Fit(el, ws.viewport, ws.region)
				settled := ws.editor.Settle(out, ws.viewport, ws.region)
				if settled.IsText() && settled.Text.Curve != out.Text.Curve {
					changed = true
				}
				if !changed {
					continue
				}
				fitted++
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fitted %s\n", el.ID)
				if dryRun {
					continue
				}
				if err := ws.repo.Save(cmd.Context(), settled); err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fitted %d of %d elements\n", fitted, len(list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report without saving")
	return cmd
}
