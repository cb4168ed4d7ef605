package lark

func (d *Device) dacChannel(ch int) error {
	if ch < 0 || ch >= d.profile.DACChannels {
		return invalidf("DAC channel %d, %s has %d", ch, d.profile.Name, d.profile.DACChannels)
	}
	return nil
}

// EnableDAC powers DAC channel ch on or off.
func (d *Device) EnableDAC(ch int, on bool) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.dacChannel(ch); err != nil {
		return err
	}
	return d.WriteField(fieldDACEn(ch), boolBit(on))
}

// SetDACSampleRate sets the sample rate shared by all DAC channels.
func (d *Device) SetDACSampleRate(r SampleRate) error {
	if r > Rate768K {
		return invalidf("DAC sample rate code %d", r)
	}
	return d.WriteField(fieldDACFs, uint32(r))
}

// SetDACVolume sets the digital volume of DAC channel ch.
func (d *Device) SetDACVolume(ch int, vol uint8) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.dacChannel(ch); err != nil {
		return err
	}
	return d.WriteField(fieldDACVol(ch), uint32(vol))
}

// MuteDAC mutes or unmutes DAC channel ch.
func (d *Device) MuteDAC(ch int, on bool) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.dacChannel(ch); err != nil {
		return err
	}
	return d.WriteField(fieldDACMute(ch), boolBit(on))
}
