package lark

// RunFDSP starts or halts the FastDSP core.
func (d *Device) RunFDSP(on bool) error {
	return d.WriteField(fieldFDSPRun, boolBit(on))
}

// SelectFDSPBank switches the parameter bank the running program reads.
func (d *Device) SelectFDSPBank(bank int) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.fdspBank(bank); err != nil {
		return err
	}
	return d.WriteField(fieldFDSPBank, uint32(bank))
}

func (d *Device) fdspBank(bank int) error {
	if bank < 0 || bank >= d.profile.FDSPBanks {
		return invalidf("FDSP bank %d, %s has %d", bank, d.profile.Name, d.profile.FDSPBanks)
	}
	return nil
}

func (d *Device) fdspParamAddr(bank, index int) (uint32, error) {
	if err := d.fdspBank(bank); err != nil {
		return 0, err
	}
	if index < 0 || index >= FDSPParamsPerBk {
		return 0, invalidf("FDSP parameter index %d", index)
	}
	return FDSPParamBase + uint32(bank)*FDSPBankStride + uint32(index)*4, nil
}

// WriteFDSPParam writes one 32-bit parameter word.
func (d *Device) WriteFDSPParam(bank, index int, value uint32) error {
	if err := d.check(); err != nil {
		return err
	}
	addr, err := d.fdspParamAddr(bank, index)
	if err != nil {
		return err
	}
	return d.BitFieldWrite(addr, 0, 32, value)
}

// ReadFDSPParam reads one parameter word of an FDSP bank.
func (d *Device) ReadFDSPParam(bank, index int) (uint32, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	addr, err := d.fdspParamAddr(bank, index)
	if err != nil {
		return 0, err
	}
	return d.BitFieldRead(addr, 0, 32)
}

// EnableEQ turns the EQ engine on or off.
func (d *Device) EnableEQ(on bool) error {
	return d.WriteField(fieldEQEn, boolBit(on))
}

func (d *Device) eqBandAddr(band int) (uint32, error) {
	if band < 0 || band >= d.profile.EQBands {
		return 0, invalidf("EQ band %d, %s has %d", band, d.profile.Name, d.profile.EQBands)
	}
	return EQCoeffBase + uint32(band)*EQCoeffsPerBand*4, nil
}

// WriteEQCoefficients loads the five biquad coefficients (b0, b1, b2, a1, a2) of a band.
func (d *Device) WriteEQCoefficients(band int, coeffs [EQCoeffsPerBand]uint32) error {
	if err := d.check(); err != nil {
		return err
	}
	addr, err := d.eqBandAddr(band)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, c := range coeffs {
		if err = d.bfWrite(Field{Addr: addr + uint32(i)*4, Count: 32}, c); err != nil {
			return err
		}
	}
	return nil
}

// ReadEQCoefficients reads the coefficient set of one EQ band.
func (d *Device) ReadEQCoefficients(band int) ([EQCoeffsPerBand]uint32, error) {
	var coeffs [EQCoeffsPerBand]uint32
	if err := d.check(); err != nil {
		return coeffs, err
	}
	addr, err := d.eqBandAddr(band)
	if err != nil {
		return coeffs, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range coeffs {
		if coeffs[i], err = d.bfRead(Field{Addr: addr + uint32(i)*4, Count: 32}); err != nil {
			return coeffs, err
		}
	}
	return coeffs, nil
}
