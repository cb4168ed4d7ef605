package lark

// SampleRate is the converter sample rate code shared by the ADC and DAC.
type SampleRate uint8

const (
	Rate8K SampleRate = iota
	Rate12K
	Rate16K
	Rate24K
	Rate32K
	Rate48K
	Rate96K
	Rate192K
	Rate384K
	Rate768K
)

func (r SampleRate) Hz() uint32 {
	switch r {
	case Rate8K:
		return 8000
	case Rate12K:
		return 12000
	case Rate16K:
		return 16000
	case Rate24K:
		return 24000
	case Rate32K:
		return 32000
	case Rate48K:
		return 48000
	case Rate96K:
		return 96000
	case Rate192K:
		return 192000
	case Rate384K:
		return 384000
	case Rate768K:
		return 768000
	default:
		return 0
	}
}

func (d *Device) adcChannel(ch int) error {
	if ch < 0 || ch >= d.profile.ADCChannels {
		return invalidf("ADC channel %d, %s has %d", ch, d.profile.Name, d.profile.ADCChannels)
	}
	return nil
}

// EnableADC powers an ADC channel up or down.
func (d *Device) EnableADC(ch int, on bool) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.adcChannel(ch); err != nil {
		return err
	}
	return d.WriteField(fieldADCEn(ch), boolBit(on))
}

// SetADCSampleRate sets the sample rate shared by all ADC channels.
func (d *Device) SetADCSampleRate(r SampleRate) error {
	if r > Rate768K {
		return invalidf("ADC sample rate code %d", r)
	}
	return d.WriteField(fieldADCFs, uint32(r))
}

// SetADCVolume sets the digital volume register, 0 is mute-level and 0xFF is +24 dB.
func (d *Device) SetADCVolume(ch int, vol uint8) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.adcChannel(ch); err != nil {
		return err
	}
	return d.WriteField(fieldADCVol(ch), uint32(vol))
}

// MuteADC mutes or unmutes ADC channel ch.
func (d *Device) MuteADC(ch int, on bool) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.adcChannel(ch); err != nil {
		return err
	}
	return d.WriteField(fieldADCMute(ch), boolBit(on))
}
