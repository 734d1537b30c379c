package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/ragakey/config"
	"github.com/jsphweid/ragakey/midi"
	"github.com/jsphweid/ragakey/pitch"
	"github.com/jsphweid/ragakey/report"
	"github.com/jsphweid/ragakey/scale"
	"github.com/jsphweid/ragakey/util"
)

func init() {
	exportCmd.Flags().String("scale", "", "scale symbols separated by spaces")
	exportCmd.Flags().StringP("base", "b", "", "base pitch in Western notation")
	exportCmd.Flags().IntP("rank", "r", 1, "which ranked base pitch to play from (1 = best)")
	exportCmd.Flags().StringP("out", "o", "", "output .mid path (default: uuid-named file in the output dir)")
	_ = exportCmd.MarkFlagRequired("base")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [symbols...]",
	Short: "Writes the scale as a MIDI file played from a ranked base pitch",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		scaleFlag, _ := cmd.Flags().GetString("scale")
		baseName, _ := cmd.Flags().GetString("base")
		rank, _ := cmd.Flags().GetInt("rank")
		out, _ := cmd.Flags().GetString("out")

		tokens := append(scale.Parse(scaleFlag), args...)
		if len(tokens) == 0 {
			return fmt.Errorf("no scale given")
		}

		r, err := evaluateInput(cfg, tokens, baseName)
		if err != nil {
			return err
		}
		if rank < 1 || rank > len(r.Results) {
			return fmt.Errorf("rank %d out of range 1..%d", rank, len(r.Results))
		}

		if out == "" {
			if err := util.EnsureOutputDir(cfg.OutDir); err != nil {
				return err
			}
			out = util.UniqueOutputPath(cfg.OutDir, "mid")
		}
		chosen := r.Results[rank-1]
		if err := midi.WriteScaleFile(out, chosen); err != nil {
			return err
		}

		report.New(cmd.OutOrStdout()).Info(fmt.Sprintf("wrote %s (base %s, score %d, Raga's S = %s)",
			out, pitch.Name(chosen.Base), chosen.Score, chosen.Reference))
		return nil
	},
}
