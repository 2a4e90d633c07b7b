package cli

import (
	"github.com/spf13/cobra"

	"github.com/denismitr/camcal"
	"github.com/denismitr/camcal/internal/storage/jsonstorage"
)

func newPresetsCmd(a *app) *cobra.Command {
	var source, output string
	var upcase bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Convert the C white balance preset table to JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if source == "" {
				source = a.cfg.PresetsSource
			}

			if output == "" {
				output = a.cfg.PresetsOutput
			}

			opts := a.cfg.Convert
			if cmd.Flags().Changed("upcase") {
				opts.SetUpcase(upcase)
			}

			doc, err := camcal.ConvertPresets(source, opts)
			if err != nil {
				return err
			}

			b, err := doc.Pretty()
			if err != nil {
				return err
			}

			a.logger.Info("presets converted", "source", source, "makers", len(doc.WBPresets))

			if output != "" {
				size, err := jsonstorage.WriteFile(output, b)
				if err != nil {
					return err
				}
				a.logger.Info("presets written", "path", output, "bytes", size)
				return nil
			}

			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "preset table in C source form")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to this file instead of stdout")
	cmd.Flags().BoolVar(&upcase, "upcase", false, "upper-case maker and model names")

	return cmd
}
