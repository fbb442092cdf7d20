package analysis

import (
	"fmt"

	"github.com/arloliu/runseq/errs"
	"github.com/arloliu/runseq/internal/options"
	"github.com/arloliu/runseq/numeric"
)

// DefaultDeltaBias is the number of runs a delta encoding must save over direct
// encoding before it is recommended. It accounts for the stored root value.
const DefaultDeltaBias = 1

// Config holds analysis settings.
type Config struct {
	policy    numeric.OverflowPolicy
	deltaBias int
}

func defaultConfig() *Config {
	return &Config{
		policy:    numeric.Checked,
		deltaBias: DefaultDeltaBias,
	}
}

// Option is a functional option for Analyze.
type Option = options.Option[*Config]

// WithOverflowPolicy sets the arithmetic used to compute differences.
//
// Under numeric.Checked a sequence whose differences overflow is reported as not
// delta-encodable.
func WithOverflowPolicy(p numeric.OverflowPolicy) Option {
	return options.New(func(c *Config) error {
		if !p.Valid() {
			return fmt.Errorf("%w: overflow policy %d", errs.ErrInvalidOption, p)
		}
		c.policy = p

		return nil
	})
}

// WithDeltaBias sets how many runs delta encoding must save to be recommended.
func WithDeltaBias(runs int) Option {
	return options.New(func(c *Config) error {
		if runs < 0 {
			return fmt.Errorf("%w: negative delta bias %d", errs.ErrInvalidOption, runs)
		}
		c.deltaBias = runs

		return nil
	})
}
