package lark

import "fmt"

// AddressRegime selects how a register address is accessed.
type AddressRegime int

const (
	// RegimeByte registers are 8 bits wide at consecutive byte addresses.
	RegimeByte AddressRegime = iota
	// RegimeWord registers are 32 bits wide at 4-byte strides.
	RegimeWord
)

func (r AddressRegime) String() string {
	switch r {
	case RegimeByte:
		return "byte"
	case RegimeWord:
		return "word"
	default:
		return "(invalid regime)"
	}
}

// Field identifies a bit range within one or more registers.
type Field struct {
	Addr  uint32
	Start uint8 // first bit, 0..31
	Count uint8 // width in bits, 1..32
}

// Validate checks the start and width bounds.
func (f Field) Validate() error {
	if f.Count == 0 || f.Count > 32 {
		return invalidf("bit count %d out of range [1,32]", f.Count)
	}
	if f.Start > 31 {
		return invalidf("bit start %d out of range [0,31]", f.Start)
	}
	return nil
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint32 {
	return fieldMask(f.Count)
}

func (f Field) String() string {
	return fmt.Sprintf("0x%08X[%d:%d]", f.Addr, int(f.Start)+int(f.Count)-1, f.Start)
}

// fieldMask returns count low bits set. count 32 is the full mask.
func fieldMask(count uint8) uint32 {
	if count >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << count) - 1
}
