// Package analysis chooses between direct and delta run-length encoding for a
// numeric sequence.
//
// Analyze counts the runs each encoding would produce without building either one,
// and recommends the encoding that stores fewer runs:
//
//	report, err := analysis.Analyze([]int64{1, 2, 3, 4, 5, 6})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Recommended) // Delta
//
// A delta encoding also stores its root value, so by default it must save more than
// one run to be recommended; WithDeltaBias changes that margin. Ties go to direct
// encoding, whose decode needs no prefix sum.
package analysis
