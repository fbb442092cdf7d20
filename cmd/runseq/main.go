package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("runseq")

func newApp() *cli.App {
	return &cli.App{
		Name:  "runseq",
		Usage: "run-length encode piecewise constant and piecewise linear number sequences",
		Description: "Values are taken from the arguments, or read from stdin one per line when no\n" +
			"arguments are given. Use -- before arguments that start with a minus sign.",
		Commands: []*cli.Command{
			directCmd,
			deltaCmd,
			analyzeCmd,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
			},
		},
		Before: func(cctx *cli.Context) error {
			return logging.SetLogLevel("runseq", cctx.String("log-level"))
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
		return
	}
}
