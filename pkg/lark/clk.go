package lark

import (
	"context"
	"time"
)

// XtalMode selects how the crystal oscillator pins are driven.
type XtalMode uint8

const (
	XtalModeCrystal XtalMode = iota
	XtalModeExternalClock
)

// MCLKFreq is the master clock frequency code.
type MCLKFreq uint8

const (
	MCLK24P576 MCLKFreq = iota
	MCLK49P152
	MCLK73P728
	MCLK98P304
)

// MCLKFreqFor maps a PLL output frequency onto its master clock code.
func MCLKFreqFor(hz uint32) (MCLKFreq, error) {
	switch hz {
	case 24576000:
		return MCLK24P576, nil
	case 49152000:
		return MCLK49P152, nil
	case 73728000:
		return MCLK73P728, nil
	case 98304000:
		return MCLK98P304, nil
	default:
		return 0, invalidf("no master clock code for %d Hz", hz)
	}
}

// ClockConfig is the input to StartupPLL.
type ClockConfig struct {
	XtalMode   XtalMode
	Source     PLLSource
	SyncSource SyncSource
	InputHz    uint32
	OutputHz   uint32
}

// DefaultClockConfig runs a 24.576 MHz output from a 12.288 MHz crystal.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		XtalMode:   XtalModeCrystal,
		Source:     PLLSourceXtal,
		SyncSource: SyncSourceNone,
		InputHz:    12288000,
		OutputHz:   24576000,
	}
}

// StartupPLL solves for a PLL configuration and programs it.
//
// Nothing is written when the search fails. Once programming begins, a
// failing step aborts the sequence and the steps already applied stay in
// hardware. The PLL is left bypassed; wait for lock with WaitPLLLock and then
// call BypassPLL(false).
func (d *Device) StartupPLL(cfg ClockConfig) (PLLConfig, error) {
	if err := d.check(); err != nil {
		return PLLConfig{}, err
	}

	pll, err := SolvePLL(d.profile, cfg.InputHz, cfg.OutputHz)
	if err != nil {
		d.log.Error().Err(err).
			Uint32("input_hz", cfg.InputHz).
			Uint32("output_hz", cfg.OutputHz).
			Str("profile", d.profile.Name).
			Msg("PLL configuration search failed")
		return PLLConfig{}, err
	}
	mclk, err := MCLKFreqFor(cfg.OutputHz)
	if err != nil {
		return PLLConfig{}, err
	}

	d.log.Debug().Stringer("pll", pll).Float64("achieved_hz", pll.Achieved(cfg.InputHz)).
		Msg("PLL configuration found")

	d.mu.Lock()
	defer d.mu.Unlock()

	steps := []struct {
		name  string
		field Field
		value uint32
	}{
		{"bypass PLL", fieldPLLBypass, 1},
		{"set MCLK frequency", fieldMCLKFreq, uint32(mclk)},
		{"power off PLL", fieldPLLEn, 0},
		{"power on crystal", fieldXtalEn, 1},
		{"select crystal mode", fieldXtalMode, uint32(cfg.XtalMode)},
		{"PLL source", fieldPLLSource, uint32(cfg.Source)},
		{"PLL type", fieldPLLType, uint32(pll.Type)},
		{"PLL sync source", fieldSyncSource, uint32(cfg.SyncSource)},
		{"PLL prescaler", fieldPLLPrescaler, pll.Prescaler},
		{"PLL multiplier", fieldPLLMultiplier, pll.Multiplier},
		{"PLL numerator", fieldPLLNumerator, pll.Numerator},
		{"PLL denominator", fieldPLLDenominator, pll.Denominator},
		{"power on PLL", fieldPLLEn, 1},
	}
	for _, s := range steps {
		if err = d.bfWrite(s.field, s.value); err != nil {
			d.log.Error().Err(err).Str("step", s.name).Msg("PLL startup aborted")
			return pll, err
		}
		d.log.Debug().Str("step", s.name).Uint32("value", s.value).Msg("PLL startup")
	}

	if err = d.pulse(fieldPLLUpdate); err != nil {
		d.log.Error().Err(err).Str("step", "update").Msg("PLL startup aborted")
		return pll, err
	}
	return pll, nil
}

// pulse writes 1 then 0 to an edge triggered bit.
func (d *Device) pulse(f Field) error {
	if err := d.bfWrite(f, 1); err != nil {
		return err
	}
	return d.bfWrite(f, 0)
}

// PLLLocked reports the PLL lock status bit.
func (d *Device) PLLLocked() (bool, error) {
	v, err := d.ReadField(fieldPLLLocked)
	return v == 1, err
}

// WaitPLLLock polls the lock bit every interval until it sets or ctx ends.
func (d *Device) WaitPLLLock(ctx context.Context, interval time.Duration) error {
	if err := d.check(); err != nil {
		return err
	}
	for {
		locked, err := d.PLLLocked()
		if err != nil {
			return err
		}
		if locked {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// BypassPLL routes the reference clock straight to MCLK when on.
func (d *Device) BypassPLL(on bool) error {
	return d.WriteField(fieldPLLBypass, boolBit(on))
}

// PowerPLL enables or disables the PLL.
func (d *Device) PowerPLL(on bool) error {
	return d.WriteField(fieldPLLEn, boolBit(on))
}

// PowerXtal enables or disables the crystal oscillator.
func (d *Device) PowerXtal(on bool) error {
	return d.WriteField(fieldXtalEn, boolBit(on))
}

// SetXtalMode selects crystal or external clock drive on the XTAL pins.
func (d *Device) SetXtalMode(mode XtalMode) error {
	if mode > XtalModeExternalClock {
		return invalidf("crystal mode %d", mode)
	}
	return d.WriteField(fieldXtalMode, uint32(mode))
}

// SetMCLKFrequency sets the master clock frequency code.
func (d *Device) SetMCLKFrequency(f MCLKFreq) error {
	if f > MCLK98P304 {
		return invalidf("master clock code %d", f)
	}
	return d.WriteField(fieldMCLKFreq, uint32(f))
}

// CalibrateOscillator starts the internal oscillator calibration and spins on
// the done bit for at most the profile's OscCalPolls reads.
func (d *Device) CalibrateOscillator() error {
	if err := d.check(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.bfWrite(fieldOscCalGo, 1); err != nil {
		return err
	}
	for i := 0; i < d.profile.OscCalPolls; i++ {
		done, err := d.bfRead(fieldOscCalDone)
		if err != nil {
			return err
		}
		if done == 1 {
			return d.bfWrite(fieldOscCalGo, 0)
		}
	}
	return ErrTimeout
}

func boolBit(on bool) uint32 {
	if on {
		return 1
	}
	return 0
}
