//go:build linux

package ctrlport

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OpenNative maps size bytes of physical memory at base through /dev/mem.
func OpenNative(base uint32, size int, cfg Config) (*Native, error) {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open /dev/mem: %w", err)
	}
	defer f.Close()

	mem, err := unix.Mmap(int(f.Fd()), int64(base), size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map 0x%08X+0x%X: %w", base, size, err)
	}
	n := NewNative(mem, base, cfg)
	n.unmap = func() error { return unix.Munmap(mem) }
	return n, nil
}
