package lark

// LastRegister returns the last value seen on the bus for addr.
func (d *Device) LastRegister(addr uint32) (uint32, bool) {
	d.shadowMu.RLock()
	v, ok := d.shadow[addr]
	d.shadowMu.RUnlock()
	return v, ok
}

// Registers returns a snapshot of every register value seen on the bus.
func (d *Device) Registers() map[uint32]uint32 {
	d.shadowMu.RLock()
	r := make(map[uint32]uint32, len(d.shadow))
	for addr, val := range d.shadow {
		r[addr] = val
	}
	d.shadowMu.RUnlock()
	return r
}

// readRegister reads a single register and records it in the shadow.
func (d *Device) readRegister(addr uint32) (uint32, error) {
	v, err := d.port.ReadRegister(addr)
	if err != nil {
		return 0, err
	}
	d.remember(addr, v)
	return v, nil
}

// writeRegister writes a single register and records it in the shadow.
func (d *Device) writeRegister(addr, value uint32) error {
	if err := d.port.WriteRegister(addr, value); err != nil {
		return err
	}
	d.remember(addr, value)
	return nil
}

func (d *Device) remember(addr, value uint32) {
	d.shadowMu.Lock()
	d.shadow[addr] = value
	d.shadowMu.Unlock()
}
