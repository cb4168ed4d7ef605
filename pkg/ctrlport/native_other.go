//go:build !linux

package ctrlport

import "errors"

// OpenNative is only available on Linux.
func OpenNative(base uint32, size int, cfg Config) (*Native, error) {
	return nil, errors.ErrUnsupported
}
