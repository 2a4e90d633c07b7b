package cli

import (
	"github.com/spf13/cobra"

	"github.com/denismitr/camcal"
)

func newCheckCoeffsCmd(a *app) *cobra.Command {
	var table, dir string

	cmd := &cobra.Command{
		Use:   "check-coeffs",
		Short: "Check the colour matrix table against DCP profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if table == "" {
				table = a.cfg.CoeffsSource
			}

			if dir == "" {
				dir = a.cfg.ProfilesDir
			}

			report, err := camcal.CheckCoefficients(table, dir, a.cfg.Check)
			if err != nil {
				return err
			}

			a.logger.Info("coefficients checked",
				"table", table,
				"profiles_dir", dir,
				"table_cameras", report.TableCameras,
				"profiles", report.ProfilesScanned,
				"profile_cameras", report.ProfileCameras,
				"mismatches", len(report.Mismatches),
			)

			_, err = report.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "colour matrix table in C source form")
	cmd.Flags().StringVar(&dir, "dcp-dir", "", "directory of *.dcp.xml profiles")

	return cmd
}
