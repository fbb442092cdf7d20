package analysis

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/runseq/errs"
	"github.com/arloliu/runseq/format"
	"github.com/arloliu/runseq/internal/options"
	"github.com/arloliu/runseq/numeric"
)

// Analyze counts the runs of the direct and delta encodings of values and recommends one.
//
// Both counts are computed in a single pass without materializing runs or differences.
//
// Parameters:
//   - values: The sequence to analyze; must not be empty
//   - opts: WithOverflowPolicy, WithDeltaBias
//
// Returns:
//   - *Report: Run counts and the recommended encoding
//   - error: errs.ErrInvalidInput for an empty input, errs.ErrInvalidOption for invalid options
//
// Example:
//
//	report, _ := analysis.Analyze([]int16{1000, 1000, 0, 0, 0, 881, 882, 1000})
//	report.DirectRuns  // 5
//	report.Recommended // Direct
func Analyze[T numeric.Number](values []T, opts ...Option) (*Report, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values to analyze", errs.ErrInvalidInput)
	}

	var zero T
	report := &Report{
		Len:        len(values),
		ElemSize:   int(unsafe.Sizeof(zero)),
		DirectRuns: 1,
		Policy:     cfg.policy,
	}

	var prevDiff T
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1] {
			report.DirectRuns++
		}

		if report.DeltaRuns < 0 {
			continue
		}

		diff, ok := numeric.Sub(values[i], values[i-1], cfg.policy)
		switch {
		case !ok:
			report.DeltaRuns = -1
		case i == 1 || diff != prevDiff:
			report.DeltaRuns++
		}
		prevDiff = diff
	}

	report.Recommended = format.TypeDirect
	if report.DeltaUsable() && report.DeltaRuns+cfg.deltaBias < report.DirectRuns {
		report.Recommended = format.TypeDelta
	}

	return report, nil
}

// AnalyzeEach analyzes every sequence separately with the same options.
//
// Returns:
//   - []*Report: One report per sequence, in order
//   - error: The first failure, annotated with the sequence index
func AnalyzeEach[T numeric.Number](seqs [][]T, opts ...Option) ([]*Report, error) {
	reports := make([]*Report, len(seqs))

	for i, values := range seqs {
		report, err := Analyze(values, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze sequence %d: %w", i, err)
		}
		reports[i] = report
	}

	return reports, nil
}
