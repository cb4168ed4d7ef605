package ft232h

import (
	"fmt"

	"github.com/yunginnanet/ft232h"
)

// SetPWDN configures the GPIO wired to the codec's active-low power-down pin.
func (ft *FT232H) SetPWDN(pin uint) error {
	ft.pwdnPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.pwdnPin, ft232h.Output, false)
}

func (ft *FT232H) PWDNPin() ft232h.CPin {
	return ft.pwdnPin
}

// PowerDown holds the codec in power-down.
func (ft *FT232H) PowerDown() error {
	if ft.pwdnPin == 0 {
		return fmt.Errorf("PWDN pin not set")
	}
	if err := ft.FT232H.GPIO.Set(ft.pwdnPin, false); err != nil {
		return fmt.Errorf("failed to set PWDN pin: %w", err)
	}
	return nil
}

// PowerUp releases the codec from power-down.
func (ft *FT232H) PowerUp() error {
	if ft.pwdnPin == 0 {
		return fmt.Errorf("PWDN pin not set")
	}
	if err := ft.FT232H.GPIO.Set(ft.pwdnPin, true); err != nil {
		return fmt.Errorf("failed to set PWDN pin: %w", err)
	}
	return nil
}

// SetCSPin records the chip-select pin used by the SPI engine.
func (ft *FT232H) SetCSPin(pin uint) error {
	ft.csPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.csPin, ft232h.Output, true)
}

func (ft *FT232H) CSPin() ft232h.CPin {
	return ft.csPin
}

// Read clocks count bytes in. start and stop assert and release chip-select.
func (ft *FT232H) Read(count uint, start bool, stop bool) ([]byte, error) {
	return ft.SPI.Read(count, start, stop)
}

// Write clocks data out. start and stop assert and release chip-select.
func (ft *FT232H) Write(data []byte, start bool, stop bool) (uint, error) {
	return ft.SPI.Write(data, start, stop)
}

func (ft *FT232H) Init() error {
	return ft.SPI.Init()
}

func (ft *FT232H) Close() error {
	return ft.SPI.Close()
}
