package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denismitr/camcal"
	"github.com/denismitr/camcal/internal/storage/jsonstorage"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <wb_presets.json>",
		Short: "Validate a white balance preset JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := jsonstorage.ReadFile(args[0])
			if err != nil {
				return err
			}

			if err := camcal.ValidateDocument(b); err != nil {
				return err
			}

			a.logger.Info("document valid", "path", args[0])
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", args[0])
			return err
		},
	}
}
