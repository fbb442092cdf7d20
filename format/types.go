// Package format enumerates the encodings runseq can produce.
package format

// EncodingType identifies the encoding of a sequence.
type EncodingType uint8

const (
	TypeDirect EncodingType = 0x1 // TypeDirect represents direct run-length encoding of the values.
	TypeDelta  EncodingType = 0x2 // TypeDelta represents run-length encoding of first differences.
)

// String returns the encoding name.
func (e EncodingType) String() string {
	switch e {
	case TypeDirect:
		return "Direct"
	case TypeDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}
