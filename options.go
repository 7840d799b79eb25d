package adcwave

import (
	"fmt"

	"github.com/daqio/adcwave/encoding"
	"github.com/daqio/adcwave/errs"
)

// config collects the per-call codec parameters. Only the zero-suppression
// variants consume them; the other modes accept and ignore any option so a
// caller can hold one option set per channel regardless of mode.
type config struct {
	threshold        float64
	neighborDistance int
	pedestal         float64
	pedestalSet      bool
	stickyCodes      bool
	neighbors        [][]int16
}

// Option configures a single Compress or Uncompress call.
type Option func(*config) error

func newConfig(opts []Option) (*config, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *config) zsParams() encoding.ZeroSuppressParams {
	return encoding.ZeroSuppressParams{
		Threshold:        c.threshold,
		NeighborDistance: c.neighborDistance,
		Pedestal:         c.pedestal,
		StickyCodes:      c.stickyCodes,
		Neighbors:        c.neighbors,
	}
}

// WithThreshold sets the zero-suppression activity threshold. The cut is
// strict: a tick whose activity exactly equals the threshold is inactive.
func WithThreshold(threshold float64) Option {
	return func(c *config) error {
		if threshold < 0 {
			return fmt.Errorf("%w: negative threshold %v", errs.ErrInvalidOption, threshold)
		}
		c.threshold = threshold

		return nil
	}
}

// WithNeighborDistance sets the zero-suppression merge tolerance and edge
// padding, in ticks.
func WithNeighborDistance(distance int) Option {
	return func(c *config) error {
		if distance < 0 {
			return fmt.Errorf("%w: negative neighbor distance %d", errs.ErrInvalidOption, distance)
		}
		c.neighborDistance = distance

		return nil
	}
}

// WithPedestal sets the channel baseline used by the activity test at encode
// time and as the fill value of suppressed regions at decode time. It is
// never stored in the buffer, so the same pedestal must be supplied on both
// sides.
func WithPedestal(pedestal float64) Option {
	return func(c *config) error {
		c.pedestal = pedestal
		c.pedestalSet = true

		return nil
	}
}

// WithStickyCodes enables the sticky-code artifact filter in the activity
// test; see encoding.IsStickyCode.
func WithStickyCodes() Option {
	return func(c *config) error {
		c.stickyCodes = true

		return nil
	}
}

// WithNeighborWaveforms supplies the waveforms of neighboring channels for
// the multi-channel activity variant: a tick is active when any waveform in
// the window shows activity above threshold at that tick.
func WithNeighborWaveforms(neighbors [][]int16) Option {
	return func(c *config) error {
		c.neighbors = neighbors

		return nil
	}
}
