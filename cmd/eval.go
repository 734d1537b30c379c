package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/ragakey/chart"
	"github.com/jsphweid/ragakey/config"
	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/report"
	"github.com/jsphweid/ragakey/scale"
	"github.com/jsphweid/ragakey/util"
)

var evalCmd = &cobra.Command{
	Use:   "eval [symbols...]",
	Short: "Rank the 12 base pitches for a scale",
	Long: `Rank the 12 base pitches for a scale.

The scale may be passed as arguments or with --scale. Anything missing
(scale or base pitch) is asked for interactively.`,
	Example: `  ragakey eval --base C S R G P
  ragakey eval --scale "S r G m P d N" --base D# --chart auto`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().String("scale", "", "scale symbols separated by spaces")
	evalCmd.Flags().StringP("base", "b", "", "base pitch in Western notation (C, C#, ... B)")
	evalCmd.Flags().String("format", "text", "output format: text or json")
	evalCmd.Flags().String("chart", "", `write a PNG chart to this path ("auto" picks a name in the output dir)`)
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	scaleFlag, _ := cmd.Flags().GetString("scale")
	baseName, _ := cmd.Flags().GetString("base")
	format, _ := cmd.Flags().GetString("format")
	chartPath, _ := cmd.Flags().GetString("chart")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	tokens := append(scale.Parse(scaleFlag), args...)
	p := report.New(cmd.OutOrStdout())
	if len(tokens) == 0 || baseName == "" {
		tokens, baseName, err = promptInput(cmd.InOrStdin(), p, tokens, baseName)
		if err != nil {
			return err
		}
	}

	r, err := evaluateInput(cfg, tokens, baseName)
	if err != nil {
		return err
	}

	if format == "json" {
		if err := report.WriteJSON(cmd.OutOrStdout(), report.Build(r.Scale, r.Mask, r.Results)); err != nil {
			return err
		}
	} else {
		p.Western(r.Scale)
		p.Results(r.Results)
	}

	if chartPath == "" {
		return nil
	}
	if chartPath == "auto" {
		if err := util.EnsureOutputDir(cfg.OutDir); err != nil {
			return err
		}
		chartPath = util.UniqueOutputPath(cfg.OutDir, "png")
	}
	err = chart.RenderFile(chartPath, chart.Request{
		Scale:    r.Scale,
		Results:  r.Results,
		Catalog:  interval.Default(),
		CellSize: cfg.Chart.CellSize,
	})
	if err != nil {
		return err
	}
	if format == "text" {
		p.Info("chart written to " + chartPath)
	} else {
		report.New(cmd.ErrOrStderr()).Info("chart written to " + chartPath)
	}
	return nil
}
