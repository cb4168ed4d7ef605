package ctrlport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

const (
	uartSync    = 0xA5
	uartOpRead  = 0x01
	uartOpWrite = 0x02
	uartACK     = 0x06
	uartNAK     = 0x15
)

// UART is a control port over the chip's UART command interface.
//
// Request: sync, op, address, width, data (writes only).
// Response: ACK followed by data (reads only), or NAK.
type UART struct {
	rw  io.ReadWriter
	cfg Config
}

// NewUART returns a control port over an open serial stream.
func NewUART(rw io.ReadWriter, cfg Config) *UART {
	return &UART{rw: rw, cfg: cfg}
}

// OpenUART opens a serial device at the given baud rate.
func OpenUART(device string, baud int, readTimeout time.Duration, cfg Config) (*UART, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: readTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", device, err)
	}
	return NewUART(port, cfg), nil
}

// ReadRegister sends a read request and returns the data following the ACK.
func (u *UART) ReadRegister(addr uint32) (uint32, error) {
	width := u.cfg.Width(addr)
	buf := getFrame()
	defer putFrame(buf)

	buf[0], buf[1] = uartSync, uartOpRead
	putAddr(buf[2:], addr)
	buf[6] = byte(width)
	if err := u.request(buf[:7]); err != nil {
		return 0, err
	}
	if err := u.readFull(buf[:width]); err != nil {
		return 0, err
	}
	return data(buf, width)
}

func (u *UART) WriteRegister(addr uint32, value uint32) error {
	width := u.cfg.Width(addr)
	buf := getFrame()
	defer putFrame(buf)

	buf[0], buf[1] = uartSync, uartOpWrite
	putAddr(buf[2:], addr)
	buf[6] = byte(width)
	putData(buf[7:], width, value)
	return u.request(buf[:7+width])
}

// request sends a frame and consumes the status byte.
func (u *UART) request(frame []byte) error {
	n, err := u.rw.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}
	var status [1]byte
	if err = u.readFull(status[:]); err != nil {
		return err
	}
	switch status[0] {
	case uartACK:
		return nil
	case uartNAK:
		return ErrNAK
	default:
		return fmt.Errorf("ctrlport: unexpected UART status 0x%02X", status[0])
	}
}

func (u *UART) readFull(p []byte) error {
	if _, err := io.ReadFull(u.rw, p); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

func (u *UART) Close() error {
	if c, ok := u.rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
