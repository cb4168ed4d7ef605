package ctrlport

import "sync"

// Memory is an in-memory register file. Unwritten registers read as zero.
type Memory struct {
	mu   sync.Mutex
	regs map[uint32]uint32
	cfg  Config
}

// NewMemory returns an empty register file.
func NewMemory(cfg Config) *Memory {
	return &Memory{regs: make(map[uint32]uint32), cfg: cfg}
}

func (m *Memory) ReadRegister(addr uint32) (uint32, error) {
	m.mu.Lock()
	v := m.regs[addr]
	m.mu.Unlock()
	return v, nil
}

// WriteRegister truncates byte window values to 8 bits like the hardware.
func (m *Memory) WriteRegister(addr uint32, value uint32) error {
	if m.cfg.Width(addr) == 1 {
		value &= 0xFF
	}
	m.mu.Lock()
	m.regs[addr] = value
	m.mu.Unlock()
	return nil
}

// Set seeds a register, e.g. a read-only status bit.
func (m *Memory) Set(addr, value uint32) {
	_ = m.WriteRegister(addr, value)
}
