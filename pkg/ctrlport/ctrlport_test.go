package ctrlport

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/yunginnanet/lark-hal/pkg/lark"
)

const (
	byteReg = 0x40000011
	wordReg = 0x40080010
)

func TestWidth(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width(byteReg) != 1 {
		t.Errorf("expected byte width, got %d", cfg.Width(byteReg))
	}
	if cfg.Width(wordReg) != 4 {
		t.Errorf("expected word width, got %d", cfg.Width(wordReg))
	}
	if cfg.Width(0x40010000) != 4 {
		t.Errorf("expected window end to be exclusive")
	}
}

func TestConfigForProfile(t *testing.T) {
	for _, p := range []lark.HardwareProfile{lark.ProfileFull, lark.ProfileLite} {
		t.Run(p.Name, func(t *testing.T) {
			cfg := ConfigFor(p)
			if cfg.ByteWindowStart != p.ByteWindow.Start || cfg.ByteWindowEnd != p.ByteWindow.End {
				t.Errorf("expected window [0x%08X,0x%08X), got [0x%08X,0x%08X)",
					p.ByteWindow.Start, p.ByteWindow.End, cfg.ByteWindowStart, cfg.ByteWindowEnd)
			}
			for _, addr := range []uint32{
				p.ByteWindow.Start - 4, p.ByteWindow.Start, p.ByteWindow.End - 1,
				p.ByteWindow.End, lark.FDSPParamBase, lark.EQCoeffBase,
			} {
				want := 4
				if p.Regime(addr) == lark.RegimeByte {
					want = 1
				}
				if got := cfg.Width(addr); got != want {
					t.Errorf("0x%08X: expected width %d for %s regime, got %d", addr, want, p.Regime(addr), got)
				}
			}
		})
	}
	if DefaultConfig() != ConfigFor(lark.ProfileFull) {
		t.Error("expected DefaultConfig to match the full profile")
	}
}

// spiBus records SPI transfers and answers reads from a queue.
type spiBus struct {
	out     [][]byte
	cs      []string
	replies [][]byte
	err     error
}

func (b *spiBus) Write(data []byte, start bool, stop bool) (uint, error) {
	if b.err != nil {
		return 0, b.err
	}
	b.out = append(b.out, append([]byte(nil), data...))
	b.cs = append(b.cs, csState(start, stop))
	return uint(len(data)), nil
}

func (b *spiBus) Read(count uint, start bool, stop bool) ([]byte, error) {
	b.cs = append(b.cs, csState(start, stop))
	if len(b.replies) == 0 {
		return nil, io.EOF
	}
	r := b.replies[0]
	b.replies = b.replies[1:]
	if uint(len(r)) > count {
		r = r[:count]
	}
	return r, nil
}

func csState(start, stop bool) string {
	switch {
	case start && stop:
		return "framed"
	case start:
		return "open"
	case stop:
		return "close"
	default:
		return "mid"
	}
}

func TestSPI(t *testing.T) {
	t.Run("WriteByte", func(t *testing.T) {
		bus := &spiBus{}
		p := NewSPI(bus, DefaultConfig())
		if err := p.WriteRegister(byteReg, 0x1A5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []byte{0x00, 0x40, 0x00, 0x00, 0x11, 0xA5}
		if !bytes.Equal(bus.out[0], want) {
			t.Errorf("expected % X, got % X", want, bus.out[0])
		}
		if bus.cs[0] != "framed" {
			t.Errorf("expected single framed transfer, got %s", bus.cs[0])
		}
	})

	t.Run("WriteWord", func(t *testing.T) {
		bus := &spiBus{}
		p := NewSPI(bus, DefaultConfig())
		if err := p.WriteRegister(wordReg, 0xDEADBEEF); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []byte{0x00, 0x40, 0x08, 0x00, 0x10, 0xDE, 0xAD, 0xBE, 0xEF}
		if !bytes.Equal(bus.out[0], want) {
			t.Errorf("expected % X, got % X", want, bus.out[0])
		}
	})

	t.Run("ReadWord", func(t *testing.T) {
		bus := &spiBus{replies: [][]byte{{0x12, 0x34, 0x56, 0x78}}}
		p := NewSPI(bus, DefaultConfig())
		v, err := p.ReadRegister(wordReg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 0x12345678 {
			t.Errorf("expected 0x12345678, got 0x%08X", v)
		}
		if bus.out[0][0] != spiOpRead {
			t.Errorf("expected read opcode, got 0x%02X", bus.out[0][0])
		}
		if bus.cs[0] != "open" || bus.cs[1] != "close" {
			t.Errorf("expected CS held across header and data, got %v", bus.cs)
		}
	})

	t.Run("ShortRead", func(t *testing.T) {
		bus := &spiBus{replies: [][]byte{{0x12}}}
		p := NewSPI(bus, DefaultConfig())
		if _, err := p.ReadRegister(wordReg); !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
		}
	})

	t.Run("BusError", func(t *testing.T) {
		errBus := errors.New("usb gone")
		p := NewSPI(&spiBus{err: errBus}, DefaultConfig())
		if err := p.WriteRegister(byteReg, 1); err != errBus {
			t.Errorf("expected bus error verbatim, got %v", err)
		}
	})
}

// stream is a byte-oriented fake for I2C and UART.
type stream struct {
	out bytes.Buffer
	in  bytes.Buffer
}

func (s *stream) Write(p []byte) (int, error) { return s.out.Write(p) }
func (s *stream) Read(p []byte) (int, error)  { return s.in.Read(p) }

func TestI2C(t *testing.T) {
	t.Run("Write", func(t *testing.T) {
		s := &stream{}
		p := NewI2C(s, DefaultConfig())
		if err := p.WriteRegister(wordReg, 0x01020304); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []byte{0x40, 0x08, 0x00, 0x10, 0x01, 0x02, 0x03, 0x04}
		if !bytes.Equal(s.out.Bytes(), want) {
			t.Errorf("expected % X, got % X", want, s.out.Bytes())
		}
	})

	t.Run("Read", func(t *testing.T) {
		s := &stream{}
		s.in.WriteByte(0x7E)
		p := NewI2C(s, DefaultConfig())
		v, err := p.ReadRegister(byteReg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 0x7E {
			t.Errorf("expected 0x7E, got 0x%02X", v)
		}
		if !bytes.Equal(s.out.Bytes(), []byte{0x40, 0x00, 0x00, 0x11}) {
			t.Errorf("unexpected address phase % X", s.out.Bytes())
		}
	})

	t.Run("NoData", func(t *testing.T) {
		p := NewI2C(&stream{}, DefaultConfig())
		if _, err := p.ReadRegister(byteReg); !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
		}
	})
}

func TestUART(t *testing.T) {
	t.Run("Write", func(t *testing.T) {
		s := &stream{}
		s.in.WriteByte(uartACK)
		p := NewUART(s, DefaultConfig())
		if err := p.WriteRegister(byteReg, 0x3C); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []byte{uartSync, uartOpWrite, 0x40, 0x00, 0x00, 0x11, 0x01, 0x3C}
		if !bytes.Equal(s.out.Bytes(), want) {
			t.Errorf("expected % X, got % X", want, s.out.Bytes())
		}
	})

	t.Run("Read", func(t *testing.T) {
		s := &stream{}
		s.in.Write([]byte{uartACK, 0xCA, 0xFE, 0xBA, 0xBE})
		p := NewUART(s, DefaultConfig())
		v, err := p.ReadRegister(wordReg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 0xCAFEBABE {
			t.Errorf("expected 0xCAFEBABE, got 0x%08X", v)
		}
		want := []byte{uartSync, uartOpRead, 0x40, 0x08, 0x00, 0x10, 0x04}
		if !bytes.Equal(s.out.Bytes(), want) {
			t.Errorf("expected % X, got % X", want, s.out.Bytes())
		}
	})

	t.Run("NAK", func(t *testing.T) {
		s := &stream{}
		s.in.WriteByte(uartNAK)
		p := NewUART(s, DefaultConfig())
		if err := p.WriteRegister(byteReg, 1); !errors.Is(err, ErrNAK) {
			t.Errorf("expected ErrNAK, got %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		s := &stream{}
		s.in.WriteByte(0x42)
		p := NewUART(s, DefaultConfig())
		if _, err := p.ReadRegister(byteReg); err == nil || errors.Is(err, ErrNAK) {
			t.Errorf("expected unexpected status error, got %v", err)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		s := &stream{}
		s.in.Write([]byte{uartACK, 0xCA})
		p := NewUART(s, DefaultConfig())
		if _, err := p.ReadRegister(wordReg); !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
		}
	})
}

func TestNative(t *testing.T) {
	mem := make([]byte, 0x100)
	p := NewNative(mem, 0x40000000, Config{ByteWindowStart: 0x40000000, ByteWindowEnd: 0x40000080})

	if err := p.WriteRegister(0x40000010, 0x1FF); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mem[0x10] != 0xFF || mem[0x11] != 0 {
		t.Errorf("expected single byte store, got % X", mem[0x10:0x12])
	}
	if err := p.WriteRegister(0x40000080, 0x11223344); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(mem[0x80:0x84], []byte{0x44, 0x33, 0x22, 0x11}) {
		t.Errorf("expected little-endian word, got % X", mem[0x80:0x84])
	}
	v, err := p.ReadRegister(0x40000080)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x11223344 {
		t.Errorf("expected 0x11223344, got 0x%08X", v)
	}

	if _, err = p.ReadRegister(0x400000FE); err == nil {
		t.Error("expected error for word straddling the window end")
	}
	if err = p.WriteRegister(0x3FFFFFFF, 0); err == nil {
		t.Error("expected error below the window")
	}
	if err = p.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory(DefaultConfig())
	m.Set(byteReg, 0x1234)
	if v, _ := m.ReadRegister(byteReg); v != 0x34 {
		t.Errorf("expected byte register truncated to 0x34, got 0x%X", v)
	}
	_ = m.WriteRegister(wordReg, 0x89ABCDEF)
	if v, _ := m.ReadRegister(wordReg); v != 0x89ABCDEF {
		t.Errorf("expected 0x89ABCDEF, got 0x%X", v)
	}
	if v, _ := m.ReadRegister(0x40000000); v != 0 {
		t.Errorf("expected unwritten register to read zero, got 0x%X", v)
	}
}
