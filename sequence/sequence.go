package sequence

import (
	"iter"

	"github.com/arloliu/runseq/format"
	"github.com/arloliu/runseq/numeric"
)

// Encoded is the read interface shared by DirectScaled and Delta.
type Encoded[T numeric.Number] interface {
	// Encoding reports which encoding produced the sequence.
	Encoding() format.EncodingType

	// Len returns the number of decoded elements.
	Len() int

	// RunsLen returns the number of runs stored by the encoding.
	RunsLen() int

	// All returns a lazy, restartable iterator over the decoded elements.
	All() iter.Seq[T]

	// Values returns the decoded elements as a new slice.
	Values() []T

	// Fingerprint returns a 64-bit content hash of the encoded sequence.
	Fingerprint() uint64
}

var (
	_ Encoded[int64]   = (*DirectScaled[int64])(nil)
	_ Encoded[float64] = (*Delta[float64])(nil)
)
