package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the check command.
func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report elements that are outside the region",
		Long: `Report every stored element whose corners leave the printable region,
and curved text whose bulge no longer fits. Exits non-zero when any is found.`,
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
			engine := ws.editor.Engine()
			bad := 0
			for _, el := range list {
				var problems []string
				if !engine.Contains(el.Placement(), ws.viewport, ws.region) {
					problems = append(problems, "outside")
				}
				if el.IsText() && el.Text.Curve != 0 && !engine.CurveLegal(el.Placement(), el.Text.FontSize, el.Text.Curve, ws.viewport, ws.region) {
					problems = append(problems, fmt.Sprintf("curve %d", el.Text.Curve))
				}
				if len(problems) == 0 {
					continue
				}
				bad++
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ %s (%s): %v\n", el.ID, el.Kind, problems)
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d elements violate the region", bad, len(list))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %d elements inside the region\n", len(list))
			return nil
		},
	}
}
