package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/arloliu/runseq/numeric"
)

func floatFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "float",
		Usage: "parse values as float64 instead of int64",
	}
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// readValues returns the command's positional arguments parsed as numbers, or the
// lines of the app's reader when there are no arguments. Blank lines are skipped.
func readValues[T numeric.Number](cctx *cli.Context, parse func(string) (T, error)) ([]T, error) {
	if cctx.Args().Present() {
		return parseAll(cctx.Args().Slice(), parse)
	}

	lines, err := readLines(cctx.App.Reader)
	if err != nil {
		return nil, err
	}

	return parseAll(lines, parse)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}

	return lines, nil
}

func parseAll[T numeric.Number](fields []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(fields))
	for i, f := range fields {
		v, err := parse(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %d (%q): %w", i, f, err)
		}
		values = append(values, v)
	}

	log.Debugf("read %d values", len(values))

	return values, nil
}
