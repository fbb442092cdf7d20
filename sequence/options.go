package sequence

import (
	"fmt"

	"github.com/arloliu/runseq/errs"
	"github.com/arloliu/runseq/internal/options"
	"github.com/arloliu/runseq/numeric"
)

// DeltaConfig holds the construction settings of a Delta sequence.
type DeltaConfig struct {
	policy         numeric.OverflowPolicy
	roundTripCheck bool
}

func defaultDeltaConfig() *DeltaConfig {
	return &DeltaConfig{
		policy: numeric.Checked,
	}
}

// DeltaOption is a functional option for NewDelta.
type DeltaOption = options.Option[*DeltaConfig]

// WithOverflowPolicy sets how out-of-range differences are handled.
// The default is numeric.Checked.
func WithOverflowPolicy(p numeric.OverflowPolicy) DeltaOption {
	return options.New(func(c *DeltaConfig) error {
		if !p.Valid() {
			return fmt.Errorf("%w: overflow policy %d", errs.ErrInvalidOption, p)
		}
		c.policy = p

		return nil
	})
}

// WithWrapping is shorthand for WithOverflowPolicy(numeric.Wrapping).
func WithWrapping() DeltaOption {
	return WithOverflowPolicy(numeric.Wrapping)
}

// WithRoundTripCheck makes NewDelta decode the encoded sequence and compare it with
// the input, failing with errs.ErrLossyRoundTrip on the first mismatch.
//
// Integer sequences always round-trip; the check matters for float element types.
func WithRoundTripCheck() DeltaOption {
	return options.NoError(func(c *DeltaConfig) {
		c.roundTripCheck = true
	})
}
