package lark

import (
	"fmt"
	"slices"
	"strings"
)

// Window is a half-open register address range [Start, End).
type Window struct {
	Start uint32
	End   uint32
}

// Contains reports whether addr falls inside the window.
func (w Window) Contains(addr uint32) bool {
	return addr >= w.Start && addr < w.End
}

// HardwareProfile holds the constants that differ between Lark SKUs.
// Profiles are values; bind one to a Device at construction.
type HardwareProfile struct {
	Name string

	// ByteWindow is the 8-bit register space. Every other address is a 32-bit word.
	ByteWindow Window

	MinPLLInput  uint32 // minimum PLL input after the prescaler (Hz)
	MaxPLLInput  uint32 // maximum PLL input after the prescaler (Hz)
	MaxPLLDiv    uint32
	MaxPrescaler uint32

	// OutputFreqs lists the PLL output frequencies the clock tree accepts.
	OutputFreqs []uint32

	ADCChannels int
	DACChannels int
	FDSPBanks   int
	EQBands     int

	// OscCalPolls bounds the oscillator calibration spin loop.
	OscCalPolls int
}

var (
	// ProfileFull is the full Lark part.
	ProfileFull = HardwareProfile{
		Name:         "lark",
		ByteWindow:   Window{Start: 0x40000000, End: 0x40010000},
		MinPLLInput:  30000,
		MaxPLLInput:  27000000,
		MaxPLLDiv:    3072,
		MaxPrescaler: 7,
		OutputFreqs:  []uint32{24576000, 49152000, 73728000, 98304000},
		ADCChannels:  3,
		DACChannels:  1,
		FDSPBanks:    3,
		EQBands:      16,
		OscCalPolls:  1000,
	}

	// ProfileLite is the reduced Lark part.
	ProfileLite = HardwareProfile{
		Name:         "lark-lite",
		ByteWindow:   Window{Start: 0x40000000, End: 0x40010000},
		MinPLLInput:  30000,
		MaxPLLInput:  12288000,
		MaxPLLDiv:    3072,
		MaxPrescaler: 7,
		OutputFreqs:  []uint32{24576000},
		ADCChannels:  2,
		DACChannels:  1,
		FDSPBanks:    2,
		EQBands:      8,
		OscCalPolls:  1000,
	}
)

// ProfileByName returns the predefined profile with the given name.
func ProfileByName(name string) (HardwareProfile, error) {
	for _, p := range []HardwareProfile{ProfileFull, ProfileLite} {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return HardwareProfile{}, invalidf("unknown hardware profile %q", name)
}

// Validate checks the profile for internally consistent limits.
func (p HardwareProfile) Validate() error {
	switch {
	case p.ByteWindow.End < p.ByteWindow.Start:
		return invalidf("profile %s: byte window end 0x%08X before start 0x%08X", p.Name, p.ByteWindow.End, p.ByteWindow.Start)
	case p.MinPLLInput == 0 || p.MaxPLLInput < p.MinPLLInput:
		return invalidf("profile %s: PLL input range [%d, %d]", p.Name, p.MinPLLInput, p.MaxPLLInput)
	case p.MaxPLLDiv < 2:
		return invalidf("profile %s: max PLL divider %d", p.Name, p.MaxPLLDiv)
	case p.MaxPrescaler == 0 || p.MaxPrescaler > 7:
		return invalidf("profile %s: max prescaler %d", p.Name, p.MaxPrescaler)
	case len(p.OutputFreqs) == 0:
		return invalidf("profile %s: no output frequencies", p.Name)
	}
	return nil
}

// SupportsOutput reports whether hz is one of the profile's PLL output frequencies.
func (p HardwareProfile) SupportsOutput(hz uint32) bool {
	return slices.Contains(p.OutputFreqs, hz)
}

// Regime classifies addr into the byte or word register space.
func (p HardwareProfile) Regime(addr uint32) AddressRegime {
	if p.ByteWindow.Contains(addr) {
		return RegimeByte
	}
	return RegimeWord
}

func (p HardwareProfile) String() string {
	return fmt.Sprintf("HardwareProfile{Name:%s, PLLInput:[%d,%d], MaxPLLDiv:%d, Outputs:%v}",
		p.Name, p.MinPLLInput, p.MaxPLLInput, p.MaxPLLDiv, p.OutputFreqs)
}
