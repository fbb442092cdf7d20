package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/runseq/analysis"
	"github.com/arloliu/runseq/numeric"
)

var analyzeCmd = &cli.Command{
	Name:      "analyze",
	Usage:     "compare direct and delta encoding and recommend one",
	ArgsUsage: "[values...]",
	Flags: []cli.Flag{
		floatFlag(),
		&cli.BoolFlag{
			Name:  "wrap",
			Usage: "compute differences with wrapping arithmetic",
		},
		&cli.IntFlag{
			Name:  "delta-bias",
			Value: analysis.DefaultDeltaBias,
			Usage: "runs delta encoding must save to be recommended",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.Bool("float") {
			return runAnalyze(cctx, parseFloat)
		}

		return runAnalyze(cctx, parseInt)
	},
}

func runAnalyze[T numeric.Number](cctx *cli.Context, parse func(string) (T, error)) error {
	values, err := readValues(cctx, parse)
	if err != nil {
		return err
	}

	opts := []analysis.Option{analysis.WithDeltaBias(cctx.Int("delta-bias"))}
	if cctx.Bool("wrap") {
		opts = append(opts, analysis.WithOverflowPolicy(numeric.Wrapping))
	}

	report, err := analysis.Analyze(values, opts...)
	if err != nil {
		return fmt.Errorf("analyzing values: %w", err)
	}

	w := cctx.App.Writer
	fmt.Fprintf(w, "elements:    %s (%s)\n", humanize.Comma(int64(report.Len)), humanize.IBytes(uint64(report.RawFootprint())))
	fmt.Fprintf(w, "direct runs: %s (%s)\n", humanize.Comma(int64(report.DirectRuns)), humanize.IBytes(uint64(report.DirectFootprint())))
	if report.DeltaUsable() {
		fmt.Fprintf(w, "delta runs:  %s (%s)\n", humanize.Comma(int64(report.DeltaRuns)), humanize.IBytes(uint64(report.DeltaFootprint())))
	} else {
		fmt.Fprintln(w, "delta runs:  n/a (differences overflow)")
	}
	fmt.Fprintf(w, "recommended: %s\n", report.Recommended)

	return nil
}
