package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/ragakey/config"
	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/midi"
	"github.com/jsphweid/ragakey/pitch"
	"github.com/jsphweid/ragakey/report"
	"github.com/jsphweid/ragakey/scale"
)

func init() {
	inspectCmd.Flags().StringP("base", "b", "C", "base pitch the symbols are measured from")
	inspectCmd.Flags().Bool("eval", false, "also rank base pitches for the extracted scale")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE.mid",
	Short: "Reads a MIDI file and names its notes as interval symbols",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseName, _ := cmd.Flags().GetString("base")
		doEval, _ := cmd.Flags().GetBool("eval")

		base, err := pitch.Parse(baseName)
		if err != nil {
			return err
		}
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		set, err := midi.PitchClasses(s)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		symbols := scale.SymbolStrings(scale.FromPitchClasses(interval.Default(), set, base))
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pitches: %s\n", strings.Join(pitch.NamesOf(set.Members()), " "))
		fmt.Fprintf(out, "scale from %s: %s\n", pitch.Name(base), strings.Join(symbols, " "))
		if !doEval {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		r, err := evaluateInput(cfg, symbols, baseName)
		if err != nil {
			return err
		}
		report.New(out).Results(r.Results)
		return nil
	},
}
