package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/skymatch"
	"github.com/agentstation/skymatch/pkg/catalogs"
	"github.com/agentstation/skymatch/pkg/match"
)

// NewMatchCommand creates the match command.
func (a *App) NewMatchCommand() *cobra.Command {
	var (
		radius   float64
		modeName string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "match <catalog1> <catalog2>",
		Short: "Cross-match two source catalogs by sky position",
		Long: `Cross-match two source catalogs by sky position.

Catalogs are YAML (a list of {ra, dec} records) or CSV (two columns,
optional header) files with coordinates in degrees. The matching radius is
given in arcseconds.

Modes:
  many-to-one  keep every nearest-neighbor pair within the radius
  one-to-one   collapse pairs sharing a catalog 2 source to the closest
  offset       one-to-one run twice, removing the median coordinate
               offset between the catalogs in between (default)`,
		Example: `  skymatch match optical.yaml xray.yaml --radius 3
  skymatch match a.csv b.csv --mode one-to-one --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := match.ParseMode(modeName)
			if err != nil {
				return err
			}

			cat1, err := catalogs.LoadFile(args[0])
			if err != nil {
				return err
			}
			cat2, err := catalogs.LoadFile(args[1])
			if err != nil {
				return err
			}

			a.logger.Debug().
				Str("catalog1", args[0]).Int("sources1", cat1.Len()).
				Str("catalog2", args[1]).Int("sources2", cat2.Len()).
				Float64("radius_arcsec", radius).
				Stringer("mode", mode).
				Msg("cross-matching catalogs")

			sm, err := a.Skymatch(
				skymatch.WithRadiusArcsec(radius),
				skymatch.WithMode(mode),
			)
			if err != nil {
				return err
			}

			result, err := sm.Match(cat1, cat2)
			if err != nil {
				return err
			}

			return a.renderResult(cmd.OutOrStdout(), result, mode, radius, limit)
		},
	}

	cmd.Flags().Float64VarP(&radius, "radius", "r", a.config.RadiusArcsec, "matching radius in arcseconds")
	cmd.Flags().StringVarP(&modeName, "mode", "m", a.config.Mode, "matching mode: many-to-one, one-to-one, offset")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of pairs to display (0 = all)")

	return cmd
}
