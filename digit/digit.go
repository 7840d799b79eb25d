// Package digit bundles a compressed waveform with the channel metadata a
// decoder needs: channel id, declared sample count, compression mode, and
// the pedestal and noise sigma measured for the channel.
//
// A Digit is the in-memory record; Marshal and Unmarshal move it through a
// checksummed binary envelope with optional byte-level compression on top of
// the waveform codec. How envelopes are stored or shipped is up to the
// caller.
package digit

import (
	"fmt"

	"github.com/daqio/adcwave"
	"github.com/daqio/adcwave/errs"
	"github.com/daqio/adcwave/format"
)

// Digit is one channel's compressed waveform together with the metadata
// required to restore it.
type Digit struct {
	// Channel identifies the detector channel the waveform was read from.
	Channel uint32

	// Samples is the declared tick count of the original waveform.
	Samples int

	// Mode is the waveform compression mode of Words.
	Mode format.Mode

	// Pedestal and Sigma describe the channel baseline. Pedestal doubles as
	// the codec pedestal for the pedestal-aware modes.
	Pedestal float64
	Sigma    float64

	// Words is the compressed word buffer.
	Words []int16
}

// Compress builds a Digit from a raw waveform.
//
// The supplied options are forwarded to the codec; when they include a
// pedestal it is recorded on the Digit so Waveform can replay it at decode
// time.
func Compress(channel uint32, samples []int16, mode format.Mode, opts ...adcwave.Option) (*Digit, error) {
	words, err := adcwave.Compress(samples, mode, opts...)
	if err != nil {
		return nil, fmt.Errorf("compress channel %d: %w", channel, err)
	}

	return &Digit{
		Channel: channel,
		Samples: len(samples),
		Mode:    mode,
		Words:   words,
	}, nil
}

// SetPedestal records the channel baseline statistics.
func (d *Digit) SetPedestal(pedestal, sigma float64) {
	d.Pedestal = pedestal
	d.Sigma = sigma
}

// Waveform restores the original waveform into a newly allocated slice of
// the declared sample count.
//
// A recorded non-zero pedestal is passed to the codec automatically; extra
// options are forwarded as-is.
func (d *Digit) Waveform(opts ...adcwave.Option) ([]int16, error) {
	if d.Samples < 0 {
		return nil, fmt.Errorf("%w: negative sample count %d", errs.ErrInvalidEnvelope, d.Samples)
	}

	if d.Pedestal != 0 {
		opts = append([]adcwave.Option{adcwave.WithPedestal(d.Pedestal)}, opts...)
	}

	dst := make([]int16, d.Samples)
	if err := adcwave.Uncompress(d.Words, dst, d.Mode, opts...); err != nil {
		return nil, fmt.Errorf("uncompress channel %d: %w", d.Channel, err)
	}

	return dst, nil
}
