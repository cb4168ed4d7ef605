package lark

import (
	"fmt"
	"math"
)

// PLLSource selects the PLL reference input.
type PLLSource uint8

const (
	PLLSourceXtal PLLSource = iota
	PLLSourceMCLKIn
	PLLSourceBCLK0
	PLLSourceFSYNC0
)

func (s PLLSource) String() string {
	switch s {
	case PLLSourceXtal:
		return "xtal"
	case PLLSourceMCLKIn:
		return "mclkin"
	case PLLSourceBCLK0:
		return "bclk0"
	case PLLSourceFSYNC0:
		return "fsync0"
	default:
		return "(invalid PLL source)"
	}
}

// PLLType selects integer or fractional feedback division.
type PLLType uint8

const (
	PLLTypeInteger PLLType = iota
	PLLTypeFractional
)

func (t PLLType) String() string {
	if t == PLLTypeFractional {
		return "fractional"
	}
	return "integer"
}

// SyncSource selects the frame sync the PLL aligns to.
type SyncSource uint8

const (
	SyncSourceNone SyncSource = iota
	SyncSourceSAP0
	SyncSourceSAP1
	SyncSourceASRC
)

const (
	fractRoundDown = 0.1
	fractRoundUp   = 0.9
	maxFractionReg = 0xFFFF
)

// PLLConfig is one solution of the PLL search.
type PLLConfig struct {
	Type        PLLType
	Prescaler   uint32
	Multiplier  uint32
	Numerator   uint32 // zero for integer type
	Denominator uint32 // zero for integer type

	// Diff is |achieved - requested| in Hz as computed by the search.
	Diff float64
}

// Achieved returns the output frequency the configuration yields from inputHz.
func (c PLLConfig) Achieved(inputHz uint32) float64 {
	if c.Prescaler == 0 {
		return 0
	}
	ref := float64(inputHz) / float64(c.Prescaler)
	out := float64(c.Multiplier) * ref
	if c.Type == PLLTypeFractional && c.Denominator != 0 {
		out += math.Floor(float64(c.Numerator) / float64(c.Denominator) * ref)
	}
	return out
}

func (c PLLConfig) String() string {
	if c.Type == PLLTypeFractional {
		return fmt.Sprintf("PLLConfig{fractional, pre:%d, mul:%d+%d/%d, diff:%g}",
			c.Prescaler, c.Multiplier, c.Numerator, c.Denominator, c.Diff)
	}
	return fmt.Sprintf("PLLConfig{integer, pre:%d, mul:%d}", c.Prescaler, c.Multiplier)
}

// SolvePLL searches for a prescaler and multiplier bringing inputHz to outputHz.
//
// An exact integer solution is taken from the lowest prescaler that admits
// one. Otherwise every prescaler is tried with a fractional multiplier and the
// smallest frequency error wins.
func SolvePLL(p HardwareProfile, inputHz, outputHz uint32) (PLLConfig, error) {
	if !p.SupportsOutput(outputHz) {
		return PLLConfig{}, invalidf("unsupported PLL output frequency %d Hz", outputHz)
	}
	if inputHz == 0 {
		return PLLConfig{}, invalidf("PLL input frequency is zero")
	}

	for pre := uint32(1); pre <= p.MaxPrescaler; pre++ {
		mul := uint64(outputHz) * uint64(pre) / uint64(inputHz)
		if uint64(pre)*uint64(outputHz) != uint64(inputHz)*mul {
			continue
		}
		if !p.pllBoundsOK(pre, mul, inputHz) {
			continue
		}
		return PLLConfig{Type: PLLTypeInteger, Prescaler: pre, Multiplier: uint32(mul)}, nil
	}

	var (
		best      PLLConfig
		leastDiff = float64(outputHz)
		found     bool
	)
	ratio := float64(outputHz) / float64(inputHz)
	for pre := uint32(1); pre <= p.MaxPrescaler; pre++ {
		c, ok := p.fractionalCandidate(ratio, pre, inputHz)
		if !ok {
			continue
		}
		c.Diff = math.Abs(c.Achieved(inputHz) - float64(outputHz))
		if c.Diff < leastDiff {
			leastDiff = c.Diff
			best = c
			found = true
		}
	}
	if !found {
		return PLLConfig{}, fmt.Errorf("%w: %d Hz -> %d Hz", ErrUnableToFindConfiguration, inputHz, outputHz)
	}
	return best, nil
}

// fractionalCandidate builds the second phase candidate for one prescaler.
func (p HardwareProfile) fractionalCandidate(ratio float64, pre, inputHz uint32) (PLLConfig, bool) {
	rate := ratio * float64(pre)
	mul := math.Floor(rate)
	fract := rate - mul
	if !p.pllBoundsOK(pre, uint64(mul), inputHz) {
		return PLLConfig{}, false
	}

	c := PLLConfig{Type: PLLTypeInteger, Prescaler: pre, Multiplier: uint32(mul)}
	switch {
	case fract < fractRoundDown:
	case fract > fractRoundUp:
		c.Multiplier++
		if c.Multiplier > p.MaxPLLDiv {
			return PLLConfig{}, false
		}
	default:
		den := uint64(pre) * uint64(inputHz)
		num := uint64(float64(den) * fract)
		num, den = reduceFraction(num, den)
		c.Type = PLLTypeFractional
		c.Numerator = uint32(num)
		c.Denominator = uint32(den)
	}
	return c, true
}

// pllBoundsOK applies the prescaled input range and divider limits.
func (p HardwareProfile) pllBoundsOK(pre uint32, mul uint64, inputHz uint32) bool {
	switch {
	case uint64(pre)*uint64(p.MaxPLLInput) < uint64(inputHz):
		return false
	case uint64(pre)*uint64(p.MinPLLInput) > uint64(inputHz):
		return false
	case mul <= 1 || mul > uint64(p.MaxPLLDiv):
		return false
	}
	return true
}

// reduceFraction divides out the GCD, then squeezes the denominator into 16
// bits if it still does not fit. The squeeze loses precision.
func reduceFraction(num, den uint64) (uint64, uint64) {
	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}
	if den > maxFractionReg {
		num = uint64(math.Round(float64(maxFractionReg) / float64(den) * float64(num)))
		den = maxFractionReg
	}
	return num, den
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
