// Package lark drives the Lark family audio codec/DSP through a register
// level control port.
package lark

import (
	"sync"

	"github.com/rs/zerolog"
)

// RegisterIO is the control port contract. Byte window registers carry their
// value in the low 8 bits.
type RegisterIO interface {
	ReadRegister(addr uint32) (uint32, error)
	WriteRegister(addr uint32, value uint32) error
}

// Device provides bit-field level control over a Lark chip.
//
// Public methods hold the device mutex for their whole duration. The chip
// bus has no locking of its own, so a second Device (or another process)
// talking to the same chip is not serialized against this one.
type Device struct {
	mu      sync.Mutex
	port    RegisterIO
	profile HardwareProfile
	log     zerolog.Logger

	// last value read from or written to each register, diagnostic only
	shadow   map[uint32]uint32
	shadowMu sync.RWMutex
}

// Option configures a Device.
type Option func(*Device)

// WithLogger sets the logger used for PLL and startup diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Device) {
		d.log = l
	}
}

// NewDevice binds a control port and hardware profile.
func NewDevice(port RegisterIO, profile HardwareProfile, opts ...Option) (*Device, error) {
	if port == nil {
		return nil, ErrNullParameter
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	d := &Device{
		port:    port,
		profile: profile,
		log:     zerolog.Nop(),
		shadow:  make(map[uint32]uint32),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Profile returns the bound hardware profile.
func (d *Device) Profile() HardwareProfile {
	return d.profile
}

func (d *Device) check() error {
	if d == nil || d.port == nil {
		return ErrNullParameter
	}
	return nil
}
