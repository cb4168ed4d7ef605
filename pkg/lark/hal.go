package lark

// BitFieldRead reads count bits starting at bit start of the register at addr.
func (d *Device) BitFieldRead(addr uint32, start, count uint8) (uint32, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	d.mu.Lock()
	v, err := d.bfRead(Field{Addr: addr, Start: start, Count: count})
	d.mu.Unlock()
	return v, err
}

// BitFieldWrite replaces count bits starting at bit start of the register at
// addr with value. Bits outside the field are preserved. A transport failure
// part way through a multi-register field leaves the earlier registers written.
func (d *Device) BitFieldWrite(addr uint32, start, count uint8, value uint32) error {
	if err := d.check(); err != nil {
		return err
	}
	d.mu.Lock()
	err := d.bfWrite(Field{Addr: addr, Start: start, Count: count}, value)
	d.mu.Unlock()
	return err
}

// ReadField reads f.
func (d *Device) ReadField(f Field) (uint32, error) {
	return d.BitFieldRead(f.Addr, f.Start, f.Count)
}

// WriteField writes value into f.
func (d *Device) WriteField(f Field, value uint32) error {
	return d.BitFieldWrite(f.Addr, f.Start, f.Count, value)
}

func (d *Device) bfRead(f Field) (uint32, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	mask := fieldMask(f.Count)

	if d.profile.Regime(f.Addr) == RegimeByte {
		regs := byteRegCount(f)
		var acc uint64
		for i := uint32(0); i < regs; i++ {
			v, err := d.readRegister(f.Addr + i)
			if err != nil {
				return 0, err
			}
			acc |= uint64(v&0xFF) << (8 * i)
		}
		return uint32(acc>>f.Start) & mask, nil
	}

	lo, err := d.readRegister(f.Addr)
	if err != nil {
		return 0, err
	}
	if !wordSpans(f) {
		return (lo >> f.Start) & mask, nil
	}

	// the top 32-start bits of the first word are the high part of the
	// value, the low k bits of the next word are the low part
	k := spanLowBits(f)
	hi, err := d.readRegister(f.Addr + 4)
	if err != nil {
		return 0, err
	}
	return (hi & fieldMask(k)) | ((lo >> f.Start) << k), nil
}

func (d *Device) bfWrite(f Field, value uint32) error {
	if err := f.Validate(); err != nil {
		return err
	}
	mask := fieldMask(f.Count)
	value &= mask

	if d.profile.Regime(f.Addr) == RegimeByte {
		if f.Start == 0 && f.Count == 8 {
			return d.writeRegister(f.Addr, value)
		}
		regs := byteRegCount(f)
		var acc uint64
		for i := uint32(0); i < regs; i++ {
			v, err := d.readRegister(f.Addr + i)
			if err != nil {
				return err
			}
			acc |= uint64(v&0xFF) << (8 * i)
		}
		acc &^= uint64(mask) << f.Start
		acc |= uint64(value) << f.Start
		for i := uint32(0); i < regs; i++ {
			if err := d.writeRegister(f.Addr+i, uint32(acc>>(8*i))&0xFF); err != nil {
				return err
			}
		}
		return nil
	}

	if f.Start == 0 && f.Count == 32 {
		return d.writeRegister(f.Addr, value)
	}

	lo, err := d.readRegister(f.Addr)
	if err != nil {
		return err
	}
	if !wordSpans(f) {
		lo &^= mask << f.Start
		lo |= value << f.Start
		return d.writeRegister(f.Addr, lo)
	}

	k := spanLowBits(f)
	hiMask := fieldMask(k)
	lo &^= 0xFFFFFFFF << f.Start
	lo |= (value >> k) << f.Start
	if err = d.writeRegister(f.Addr, lo); err != nil {
		return err
	}

	hi, err := d.readRegister(f.Addr + 4)
	if err != nil {
		return err
	}
	hi &^= hiMask
	hi |= value & hiMask
	return d.writeRegister(f.Addr+4, hi)
}

// byteRegCount is ceil((start+count)/8).
func byteRegCount(f Field) uint32 {
	return (uint32(f.Start) + uint32(f.Count) + 7) / 8
}

func wordSpans(f Field) bool {
	return uint32(f.Start)+uint32(f.Count) > 32
}

// spanLowBits is the number of value bits held by the second word of a
// spanning field.
func spanLowBits(f Field) uint8 {
	return f.Count - (32 - f.Start)
}
