package ctrlport

import "io"

const (
	spiOpWrite = 0x00
	spiOpRead  = 0x01
)

// SPIBus is a chip-select framed SPI master. start asserts CS before the
// transfer, stop releases it after.
type SPIBus interface {
	Read(count uint, start bool, stop bool) ([]byte, error)
	Write(data []byte, start bool, stop bool) (uint, error)
}

// SPI is a control port over an SPI bus.
type SPI struct {
	bus SPIBus
	cfg Config
}

// NewSPI returns a control port over bus.
func NewSPI(bus SPIBus, cfg Config) *SPI {
	return &SPI{bus: bus, cfg: cfg}
}

// ReadRegister sends the read header and clocks the data out under one chip select.
func (s *SPI) ReadRegister(addr uint32) (uint32, error) {
	width := s.cfg.Width(addr)
	hdr := getFrame()
	defer putFrame(hdr)

	hdr[0] = spiOpRead
	putAddr(hdr[1:], addr)
	n, err := s.bus.Write(hdr[:5], true, false)
	if err != nil {
		return 0, err
	}
	if n != 5 {
		return 0, io.ErrShortWrite
	}

	b, err := s.bus.Read(uint(width), false, true)
	if err != nil {
		return 0, err
	}
	if len(b) < width {
		return 0, io.ErrUnexpectedEOF
	}
	return data(b, width)
}

// WriteRegister sends header and data as one framed transfer.
func (s *SPI) WriteRegister(addr uint32, value uint32) error {
	width := s.cfg.Width(addr)
	frame := getFrame()
	defer putFrame(frame)

	frame[0] = spiOpWrite
	putAddr(frame[1:], addr)
	putData(frame[5:], width, value)
	n, err := s.bus.Write(frame[:5+width], true, true)
	if err != nil {
		return err
	}
	if int(n) != 5+width {
		return io.ErrShortWrite
	}
	return nil
}

// Close closes the bus if it can be closed.
func (s *SPI) Close() error {
	if c, ok := s.bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
