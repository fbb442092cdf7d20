// Package hash computes xxHash64 fingerprints of run-length encoded sequences.
package hash

import (
	"iter"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/runseq/endian"
	"github.com/arloliu/runseq/format"
	"github.com/arloliu/runseq/internal/pool"
	"github.com/arloliu/runseq/numeric"
	"github.com/arloliu/runseq/rle"
)

// runSize is the number of bytes one run occupies in the hashed byte form.
const runSize = 16

// Runs computes the xxHash64 of an encoding's runs.
//
// The hashed byte form is the encoding tag, then one (value bits, count) pair of
// canonical-order uint64 words per run, then the trailer values. Trailer carries the
// fields an encoding keeps beside its runs, like a denominator or a root value.
//
// Values are hashed through numeric.BitsFunc, so int8(1) and int64(1) hash alike;
// fingerprints are meant to be compared between sequences of the same element type.
func Runs[T numeric.Number](tag format.EncodingType, runs iter.Seq[rle.Run[T]], trailer ...T) uint64 {
	engine := endian.Canonical()
	bits := numeric.BitsFunc[T]()

	buf := pool.GetHashBuffer()
	defer pool.PutHashBuffer(buf)

	d := xxhash.New()
	buf.B = append(buf.B, byte(tag))

	for r := range runs {
		if buf.Full(runSize) {
			_, _ = d.Write(buf.Bytes())
			buf.Reset()
		}
		buf.B = endian.AppendWords(engine, buf.B, bits(r.Value), uint64(r.Count)) //nolint:gosec
	}

	for _, v := range trailer {
		if buf.Full(runSize) {
			_, _ = d.Write(buf.Bytes())
			buf.Reset()
		}
		buf.B = endian.AppendWords(engine, buf.B, bits(v))
	}

	_, _ = d.Write(buf.Bytes())

	return d.Sum64()
}
