package encoding

import "math"

// stickyCodeMask selects the low-order ADC bits affected by the digitizer
// sticky-code artifact: output codes whose low 6 bits are all zeros or all
// ones are systematically over-represented by the hardware.
const stickyCodeMask = 0x3F

// IsStickyCode reports whether a sample carries the sticky-code artifact
// pattern in its low-order bits.
func IsStickyCode(sample int16) bool {
	low := sample & stickyCodeMask

	return low == 0x00 || low == stickyCodeMask
}

// activity returns the signal activity of a sample relative to a pedestal.
//
// With the sticky filter enabled, a sample that matches the sticky-code
// pattern and lies within one digitization cell of the pedestal is treated
// as pure artifact and contributes zero activity, so it cannot open or
// extend a zero-suppression block.
func activity(sample int16, pedestal float64, sticky bool) float64 {
	act := math.Abs(float64(sample) - pedestal)
	if sticky && act < 1.0 && IsStickyCode(sample) {
		return 0
	}

	return act
}
