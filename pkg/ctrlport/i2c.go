package ctrlport

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecheney/i2c"
)

// I2C is a control port over an i2c-dev style bus already bound to the chip address.
type I2C struct {
	bus io.ReadWriter
	cfg Config
}

// NewI2C wraps a bus already bound to the chip address.
func NewI2C(bus io.ReadWriter, cfg Config) *I2C {
	return &I2C{bus: bus, cfg: cfg}
}

// OpenI2C opens /dev/i2c-<bus> for the chip at addr.
func OpenI2C(addr uint8, bus int, cfg Config) (*I2C, error) {
	dev, err := i2c.New(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to open i2c bus %d address 0x%02X: %w", bus, addr, err)
	}
	return NewI2C(dev, cfg), nil
}

// ReadRegister writes the address then reads back the register data.
func (c *I2C) ReadRegister(addr uint32) (uint32, error) {
	width := c.cfg.Width(addr)
	buf := getFrame()
	defer putFrame(buf)

	putAddr(buf, addr)
	if err := c.write(buf[:4]); err != nil {
		return 0, err
	}
	if _, err := io.ReadFull(c.bus, buf[:width]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return data(buf, width)
}

func (c *I2C) WriteRegister(addr uint32, value uint32) error {
	width := c.cfg.Width(addr)
	buf := getFrame()
	defer putFrame(buf)

	putAddr(buf, addr)
	putData(buf[4:], width, value)
	return c.write(buf[:4+width])
}

func (c *I2C) write(p []byte) error {
	n, err := c.bus.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}

func (c *I2C) Close() error {
	if cl, ok := c.bus.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
