package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/config"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/constraint"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/storage"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every subcommand.
type options struct {
	dbPath           string
	delimitationPath string
	tuningPath       string
	width            float64
	height           float64
}

// workspace is the opened state a subcommand operates on.
type workspace struct {
	repo     *storage.SQLiteRepository
	viewport delimit.Viewport
	region   delimit.Delimitation
	editor   *element.Editor
}

// newRootCommand creates the zonectl root command.
func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "zonectl",
		Short: "Audit and repair stored element placements",
		Long: `zonectl checks committed elements against the printable region and can
pull stray elements back inside it.

Examples:
  zonectl check --db data/designs.db --delimitation data/delimitation.json
  zonectl fit --width 1024 --height 1024`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "data/designs.db", "Element database path")
	cmd.PersistentFlags().StringVar(&opts.delimitationPath, "delimitation", "data/delimitation.json", "Delimitation JSON path")
	cmd.PersistentFlags().StringVar(&opts.tuningPath, "tuning", "data/tuning.yaml", "Constraint tuning YAML path")
	cmd.PersistentFlags().Float64Var(&opts.width, "width", 800, "Viewport width in pixels")
	cmd.PersistentFlags().Float64Var(&opts.height, "height", 800, "Viewport height in pixels")

	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newFitCommand(opts))
	return cmd
}

// open loads the region, tuning and repository named by the flags.
func (o *options) open(ctx context.Context) (*workspace, error) {
	vp := delimit.Viewport{Width: o.width, Height: o.height}
	if !vp.Valid() {
		return nil, fmt.Errorf("viewport must be positive, got %vx%v", o.width, o.height)
	}
	region, err := delimit.Load(o.delimitationPath)
	if err != nil {
		return nil, err
	}
	if !region.Valid() {
		return nil, errors.New("delimitation is not set: " + o.delimitationPath)
	}
	tuning, err := config.LoadTuning(o.tuningPath)
	if err != nil {
		return nil, err
	}
	repo, err := storage.Open(ctx, o.dbPath)
	if err != nil {
		return nil, err
	}
	return &workspace{
		repo:     repo,
		viewport: vp,
		region:   region,
		editor:   element.NewEditor(constraint.New(tuning)),
	}, nil
}
