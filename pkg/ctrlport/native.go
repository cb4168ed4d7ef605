package ctrlport

import (
	"encoding/binary"
	"fmt"
)

// Native is a control port over a memory mapped register window. Word
// registers are little-endian in memory, matching the chip's native bus.
type Native struct {
	mem   []byte
	base  uint32
	cfg   Config
	unmap func() error
}

// NewNative wraps mem, whose first byte lives at bus address base.
func NewNative(mem []byte, base uint32, cfg Config) *Native {
	return &Native{mem: mem, base: base, cfg: cfg}
}

func (n *Native) offset(addr uint32) (uint32, int, error) {
	width := n.cfg.Width(addr)
	if addr < n.base || uint64(addr-n.base)+uint64(width) > uint64(len(n.mem)) {
		return 0, 0, fmt.Errorf("ctrlport: address 0x%08X outside mapped window 0x%08X+0x%X", addr, n.base, len(n.mem))
	}
	return addr - n.base, width, nil
}

// ReadRegister reads the register straight from the mapped window.
func (n *Native) ReadRegister(addr uint32) (uint32, error) {
	off, width, err := n.offset(addr)
	if err != nil {
		return 0, err
	}
	if width == 1 {
		return uint32(n.mem[off]), nil
	}
	return binary.LittleEndian.Uint32(n.mem[off:]), nil
}

func (n *Native) WriteRegister(addr uint32, value uint32) error {
	off, width, err := n.offset(addr)
	if err != nil {
		return err
	}
	if width == 1 {
		n.mem[off] = byte(value)
		return nil
	}
	binary.LittleEndian.PutUint32(n.mem[off:], value)
	return nil
}

// Close unmaps the window if OpenNative mapped it.
func (n *Native) Close() error {
	if n.unmap == nil {
		return nil
	}
	err := n.unmap()
	n.unmap, n.mem = nil, nil
	return err
}
