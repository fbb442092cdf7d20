package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/runseq/errs"
	"github.com/arloliu/runseq/numeric"
	"github.com/arloliu/runseq/sequence"
)

var directCmd = &cli.Command{
	Name:      "direct",
	Usage:     "run-length encode the values themselves",
	ArgsUsage: "[values...]",
	Flags: []cli.Flag{
		floatFlag(),
		&cli.StringFlag{
			Name:  "denominator",
			Value: "1",
			Usage: "scale factor; normalized values are value / denominator",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.Bool("float") {
			return runDirect(cctx, parseFloat)
		}

		return runDirect(cctx, parseInt)
	},
}

func runDirect[T numeric.Number](cctx *cli.Context, parse func(string) (T, error)) error {
	values, err := readValues(cctx, parse)
	if err != nil {
		return err
	}

	den, err := parse(cctx.String("denominator"))
	if err != nil {
		return fmt.Errorf("parsing denominator: %w", err)
	}

	s := sequence.NewDirectScaled(values, den)

	w := cctx.App.Writer
	fmt.Fprintf(w, "runs:        %s\n", s.Runs())
	fmt.Fprintf(w, "run count:   %s\n", humanize.Comma(int64(s.RunsLen())))
	fmt.Fprintf(w, "elements:    %s\n", humanize.Comma(int64(s.Len())))

	norm, err := s.Normalized()
	switch {
	case errors.Is(err, errs.ErrZeroDenominator):
		log.Warnf("skipping normalization: %s", err)
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "normalized:  %v\n", norm)
	}

	fmt.Fprintf(w, "fingerprint: %016x\n", s.Fingerprint())

	return nil
}
