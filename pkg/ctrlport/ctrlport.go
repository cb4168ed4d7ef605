// Package ctrlport implements the Lark control port transports.
//
// Every port moves one register per transaction. Addresses go out as 32-bit
// big-endian values; data is one byte inside the byte window and a 32-bit
// word everywhere else.
package ctrlport

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/yunginnanet/lark-hal/pkg/lark"
)

var (
	_ lark.RegisterIO = (*SPI)(nil)
	_ lark.RegisterIO = (*I2C)(nil)
	_ lark.RegisterIO = (*UART)(nil)
	_ lark.RegisterIO = (*Native)(nil)
	_ lark.RegisterIO = (*Memory)(nil)
)

// ErrNAK is returned when the chip rejects a UART request.
var ErrNAK = errors.New("ctrlport: request not acknowledged")

// Config describes the register space a port talks to.
type Config struct {
	// [ByteWindowStart, ByteWindowEnd) holds the 8-bit registers.
	ByteWindowStart uint32
	ByteWindowEnd   uint32
}

// ConfigFor takes the register windows from a hardware profile.
func ConfigFor(p lark.HardwareProfile) Config {
	return Config{
		ByteWindowStart: p.ByteWindow.Start,
		ByteWindowEnd:   p.ByteWindow.End,
	}
}

// DefaultConfig matches the full Lark register map.
func DefaultConfig() Config {
	return ConfigFor(lark.ProfileFull)
}

// Width returns the data width in bytes of the register at addr.
func (c Config) Width(addr uint32) int {
	if addr >= c.ByteWindowStart && addr < c.ByteWindowEnd {
		return 1
	}
	return 4
}

func putAddr(b []byte, addr uint32) {
	binary.BigEndian.PutUint32(b, addr)
}

// putData encodes value into the first width bytes of b.
func putData(b []byte, width int, value uint32) {
	if width == 1 {
		b[0] = byte(value)
		return
	}
	binary.BigEndian.PutUint32(b, value)
}

// data decodes a register value of the given width.
func data(b []byte, width int) (uint32, error) {
	if len(b) < width {
		return 0, fmt.Errorf("ctrlport: short register data: %d of %d bytes", len(b), width)
	}
	if width == 1 {
		return uint32(b[0]), nil
	}
	return binary.BigEndian.Uint32(b), nil
}
