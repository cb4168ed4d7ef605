package lark

import (
	"errors"

	"github.com/l0nax/go-spew/spew"
)

var pprint = spew.ConfigState{
	Indent:                  "\t",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

var errBus = errors.New("bus fault")

type access struct {
	write bool
	addr  uint32
	value uint32
}

// mockPort is a register file that records every access.
type mockPort struct {
	regs     map[uint32]uint32
	log      []access
	failAddr map[uint32]bool // fail any access to these addresses
	failAt   int             // fail the n-th access (1-based), 0 disables
}

func newMockPort() *mockPort {
	return &mockPort{regs: make(map[uint32]uint32), failAddr: make(map[uint32]bool)}
}

func (m *mockPort) fail(addr uint32) bool {
	return m.failAddr[addr] || (m.failAt > 0 && len(m.log) == m.failAt)
}

func (m *mockPort) ReadRegister(addr uint32) (uint32, error) {
	m.log = append(m.log, access{addr: addr})
	if m.fail(addr) {
		return 0, errBus
	}
	return m.regs[addr], nil
}

func (m *mockPort) WriteRegister(addr uint32, value uint32) error {
	m.log = append(m.log, access{write: true, addr: addr, value: value})
	if m.fail(addr) {
		return errBus
	}
	if ProfileFull.Regime(addr) == RegimeByte {
		value &= 0xFF
	}
	m.regs[addr] = value
	return nil
}

func (m *mockPort) writes() []access {
	var w []access
	for _, a := range m.log {
		if a.write {
			w = append(w, a)
		}
	}
	return w
}

func (m *mockPort) reads() int {
	n := 0
	for _, a := range m.log {
		if !a.write {
			n++
		}
	}
	return n
}

func (m *mockPort) reset() {
	m.log = nil
}

func newTestDevice(p HardwareProfile) (*Device, *mockPort) {
	port := newMockPort()
	d, err := NewDevice(port, p)
	if err != nil {
		panic(err)
	}
	return d, port
}
