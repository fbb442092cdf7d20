package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/runseq/numeric"
	"github.com/arloliu/runseq/sequence"
)

var deltaCmd = &cli.Command{
	Name:      "delta",
	Usage:     "run-length encode the differences between consecutive values",
	ArgsUsage: "[values...]",
	Flags: []cli.Flag{
		floatFlag(),
		&cli.BoolFlag{
			Name:  "wrap",
			Usage: "use wrapping arithmetic instead of failing on overflow",
		},
		&cli.BoolFlag{
			Name:  "check",
			Usage: "verify that decoding reproduces the input",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.Bool("float") {
			return runDelta(cctx, parseFloat)
		}

		return runDelta(cctx, parseInt)
	},
}

func runDelta[T numeric.Number](cctx *cli.Context, parse func(string) (T, error)) error {
	values, err := readValues(cctx, parse)
	if err != nil {
		return err
	}

	var opts []sequence.DeltaOption
	if cctx.Bool("wrap") {
		opts = append(opts, sequence.WithWrapping())
	}
	if cctx.Bool("check") {
		opts = append(opts, sequence.WithRoundTripCheck())
	}

	d, err := sequence.NewDelta(values, opts...)
	if err != nil {
		return fmt.Errorf("encoding delta sequence: %w", err)
	}
	log.Debugf("encoded %d values into %d difference runs (%s arithmetic)", d.Len(), d.RunsLen(), d.Policy())

	w := cctx.App.Writer
	fmt.Fprintf(w, "root:        %v\n", d.Root())
	fmt.Fprintf(w, "runs:        %s\n", d.Runs())
	fmt.Fprintf(w, "run count:   %s\n", humanize.Comma(int64(d.RunsLen())))
	fmt.Fprintf(w, "elements:    %s\n", humanize.Comma(int64(d.Len())))
	fmt.Fprintf(w, "decoded:     %v\n", d.Decode())
	fmt.Fprintf(w, "fingerprint: %016x\n", d.Fingerprint())

	return nil
}
