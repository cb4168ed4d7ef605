package lark

// SAPMode is the serial audio port framing.
type SAPMode uint8

const (
	SAPStereo SAPMode = iota
	SAPTDM2
	SAPTDM4
	SAPTDM8
	SAPTDM16
)

// SAPFormat is the data alignment within a slot.
type SAPFormat uint8

const (
	SAPFormatI2S SAPFormat = iota
	SAPFormatLeftJustified
	SAPFormatRightJustified24
	SAPFormatRightJustified16
)

// SlotWidth is the number of BCLK cycles per slot.
type SlotWidth uint8

const (
	Slot32 SlotWidth = iota
	Slot16
	Slot24
)

// SetSAPMode selects stereo or a TDM slot count.
func (d *Device) SetSAPMode(m SAPMode) error {
	if m > SAPTDM16 {
		return invalidf("SAP mode %d", m)
	}
	return d.WriteField(fieldSAPMode, uint32(m))
}

// SetSAPDataFormat selects the serial data justification.
func (d *Device) SetSAPDataFormat(f SAPFormat) error {
	if f > SAPFormatRightJustified16 {
		return invalidf("SAP data format %d", f)
	}
	return d.WriteField(fieldSAPFormat, uint32(f))
}

// SetSAPSlotWidth sets the bit clock slot width.
func (d *Device) SetSAPSlotWidth(w SlotWidth) error {
	if w > Slot24 {
		return invalidf("SAP slot width %d", w)
	}
	return d.WriteField(fieldSAPSlotWidth, uint32(w))
}
