package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/denismitr/camcal"
	"github.com/denismitr/camcal/internal/storage/jsonstorage"
	"github.com/denismitr/camcal/options"
)

func newLookupCmd(a *app) *cobra.Command {
	var maker, model string
	var tuning int

	cmd := &cobra.Command{
		Use:   "lookup <wb_presets.json>",
		Short: "List the white balance presets of a camera",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := jsonstorage.ReadFile(args[0])
			if err != nil {
				return err
			}

			idx, err := camcal.NewPresetIndex(b)
			if err != nil {
				return err
			}

			presets, err := idx.Matching(maker, model, options.Lookup())
			if err != nil {
				return err
			}

			a.logger.Debug("presets found", "maker", maker, "model", model, "count", len(presets))

			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("tuning") {
				for _, p := range presets {
					fmt.Fprintf(out, "%s\t%d\t%s\n", p.Name, p.Tuning, formatChannels(p.Channels))
				}
				return nil
			}

			for _, name := range presetNames(presets) {
				p, err := camcal.InterpolateNamed(presets, name, tuning)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%d\t%s\n", p.Name, p.Tuning, formatChannels(p.Channels))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&maker, "maker", "", "camera maker as reported by the camera")
	cmd.Flags().StringVar(&model, "model", "", "camera model")
	cmd.Flags().IntVar(&tuning, "tuning", 0, "interpolate every preset at this tuning")
	_ = cmd.MarkFlagRequired("maker")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func presetNames(presets []camcal.Preset) []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range presets {
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	return names
}

func formatChannels(ch [4]float64) string {
	s := ""
	for i, v := range ch {
		if i > 0 {
			s += " "
		}
		s += strconv.FormatFloat(v, 'g', -1, 64)
	}
	return s
}
