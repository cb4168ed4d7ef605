package lark

import "fmt"

// ChipID is the identification block at the bottom of the register map.
type ChipID struct {
	Vendor   uint8
	Device   uint16
	Revision uint8
}

func (id ChipID) String() string {
	return fmt.Sprintf("ChipID{Vendor:0x%02X, Device:0x%04X, Revision:%d}", id.Vendor, id.Device, id.Revision)
}

// ChipID reads the vendor, device and revision registers.
func (d *Device) ChipID() (ChipID, error) {
	if err := d.check(); err != nil {
		return ChipID{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	vendor, err := d.bfRead(Field{Addr: RegVendorID, Count: 8})
	if err != nil {
		return ChipID{}, err
	}
	// DEVICE_ID1 is the high byte
	hi, err := d.bfRead(Field{Addr: RegDeviceID1, Count: 8})
	if err != nil {
		return ChipID{}, err
	}
	lo, err := d.bfRead(Field{Addr: RegDeviceID2, Count: 8})
	if err != nil {
		return ChipID{}, err
	}
	rev, err := d.bfRead(Field{Addr: RegRevision, Count: 8})
	if err != nil {
		return ChipID{}, err
	}
	return ChipID{
		Vendor:   uint8(vendor),
		Device:   uint16(hi)<<8 | uint16(lo),
		Revision: uint8(rev),
	}, nil
}

// SoftReset pulses the full-chip reset when full is set, otherwise the core
// reset which keeps the control port configuration.
func (d *Device) SoftReset(full bool) error {
	if err := d.check(); err != nil {
		return err
	}
	f := fieldSoftResetCore
	if full {
		f = fieldSoftResetFull
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pulse(f)
}
