// Package rle provides Vec, an immutable run-length encoded sequence.
//
// A Vec stores a sequence as ordered runs, where each run is a value and the number
// of consecutive times it occurs. Runs are always maximal: two adjacent runs never
// hold equal values, so the run representation of a logical sequence is unique.
//
// # Building
//
// Use FromSlice for a complete slice, Collect for an iterator, or a Builder when
// values are produced one at a time:
//
//	b := rle.NewBuilder[int16](0)
//	b.Push(1)
//	b.PushN(3, 4)
//	v := b.Build() // [{1×1} {3×4}]
//
// # Reading
//
// All returns a lazy iterator over the logical elements. The iterator is restartable:
// every range statement starts again from the first run, and the expansion is never
// materialized. Values materializes it when a slice is needed.
//
//	for x := range v.All() {
//	    fmt.Println(x)
//	}
//
// # Thread Safety
//
// A Vec is never modified after it is built and is safe for concurrent readers.
// A Builder is not safe for concurrent use.
package rle
