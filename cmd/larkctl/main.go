package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	ft232h2 "github.com/yunginnanet/ft232h"

	"github.com/yunginnanet/lark-hal/pkg/ctrlport"
	"github.com/yunginnanet/lark-hal/pkg/ft232h"
	"github.com/yunginnanet/lark-hal/pkg/lark"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

type options struct {
	port    string
	profile string
	op      string
	verbose bool

	ftIndex int
	cs      uint
	pwdn    uint

	i2cBus  int
	i2cAddr uint

	uartDev  string
	uartBaud int

	memBase uint
	memSize int

	inputHz  uint
	outputHz uint
	xtalExt  bool
	lockWait time.Duration

	addr  uint
	start uint
	count uint
	value uint
}

func flags() options {
	var o options
	flag.StringVar(&o.port, "port", "sim", "Control port: spi, i2c, uart, native, sim")
	flag.StringVar(&o.profile, "profile", lark.ProfileFull.Name, "Hardware profile: lark, lark-lite")
	flag.StringVar(&o.op, "op", "id", "Operation: id, pll, read, write, dump")
	flag.BoolVar(&o.verbose, "v", false, "Debug logging")

	flag.IntVar(&o.ftIndex, "FT232H", 0, "FT232H Index")
	flag.UintVar(&o.cs, "CS", 0x10, "Chip Select (SPI, Digital)")
	flag.UintVar(&o.pwdn, "PWDN", 0x40, "Power Down (GPIO)")

	flag.IntVar(&o.i2cBus, "i2c-bus", 1, "I2C bus number (/dev/i2c-N)")
	flag.UintVar(&o.i2cAddr, "i2c-addr", 0x38, "I2C chip address")

	flag.StringVar(&o.uartDev, "uart", "/dev/ttyUSB0", "UART device")
	flag.IntVar(&o.uartBaud, "baud", 115200, "UART baud rate")

	flag.UintVar(&o.memBase, "mem-base", 0x40000000, "Native bus physical base address")
	flag.IntVar(&o.memSize, "mem-size", 0x100000, "Native bus window size")

	flag.UintVar(&o.inputHz, "in", 12288000, "PLL input frequency (Hz)")
	flag.UintVar(&o.outputHz, "out", 24576000, "PLL output frequency (Hz)")
	flag.BoolVar(&o.xtalExt, "xtal-ext", false, "Drive XTAL pins from an external clock")
	flag.DurationVar(&o.lockWait, "lock-wait", 100*time.Millisecond, "Time to wait for PLL lock")

	flag.UintVar(&o.addr, "addr", lark.RegVendorID, "Register address for read/write")
	flag.UintVar(&o.start, "start", 0, "Bit-field start bit")
	flag.UintVar(&o.count, "count", 8, "Bit-field width")
	flag.UintVar(&o.value, "value", 0, "Value for write")
	flag.Parse()
	return o
}

// openPort returns the control port and a closer for whatever backs it.
func openPort(o options, cfg ctrlport.Config) (lark.RegisterIO, io.Closer, error) {
	switch o.port {
	case "spi":
		spi, err := ft232h.ConnectFT232h(ft232h.ByIndex(o.ftIndex))
		if err != nil {
			return nil, nil, err
		}
		log.Info().Any("info", spi.Info()).Msgf("connected to FT232H: %s", spi)

		spiCfg := spi.FT232H.SPI.GetConfig()
		spiCfg.Clock = 10000000
		spiCfg.CS = ft232h2.C(o.cs)
		spiCfg.Mode = 0x00000000
		spiCfg.ActiveLow = true

		if err = spi.SetCSPin(o.cs); err != nil {
			return nil, nil, errors.Join(err, spi.Close())
		}
		if err = spi.SetPWDN(o.pwdn); err != nil {
			return nil, nil, errors.Join(err, spi.Close())
		}
		log.Debug().Any("config", spiCfg).Msg("initializing SPI")
		if err = spi.SPI.Config(spiCfg); err != nil {
			return nil, nil, errors.Join(err, spi.Close())
		}
		if err = spi.PowerUp(); err != nil {
			return nil, nil, errors.Join(err, spi.Close())
		}
		return ctrlport.NewSPI(spi, cfg), spi, nil
	case "i2c":
		p, err := ctrlport.OpenI2C(uint8(o.i2cAddr), o.i2cBus, cfg)
		return p, p, err
	case "uart":
		p, err := ctrlport.OpenUART(o.uartDev, o.uartBaud, 100*time.Millisecond, cfg)
		return p, p, err
	case "native":
		p, err := ctrlport.OpenNative(uint32(o.memBase), o.memSize, cfg)
		return p, p, err
	case "sim":
		return ctrlport.NewMemory(cfg), io.NopCloser(nil), nil
	default:
		return nil, nil, errors.New("unknown control port " + strconv.Quote(o.port))
	}
}

func main() {
	o := flags()
	if o.verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	profile, err := lark.ProfileByName(o.profile)
	if err != nil {
		log.Fatal().Err(err).Msg("bad profile")
	}

	port, closer, err := openPort(o, ctrlport.ConfigFor(profile))
	if err != nil {
		log.Fatal().Err(err).Str("port", o.port).Msg("failed to open control port")
	}

	dev, err := lark.NewDevice(port, profile, lark.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bind device")
	}

	if err = run(o, dev); err != nil {
		log.Error().Err(err).Str("op", o.op).Msg("operation failed")
	}

	if cerr := closer.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close control port")
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(o options, dev *lark.Device) error {
	switch o.op {
	case "id":
		id, err := dev.ChipID()
		if err != nil {
			return err
		}
		log.Info().Stringer("chip", id).Msg("chip identified")
	case "pll":
		clk := lark.DefaultClockConfig()
		clk.InputHz, clk.OutputHz = uint32(o.inputHz), uint32(o.outputHz)
		if o.xtalExt {
			clk.XtalMode = lark.XtalModeExternalClock
		}
		pll, err := dev.StartupPLL(clk)
		if err != nil {
			return err
		}
		log.Info().Stringer("pll", pll).Float64("achieved_hz", pll.Achieved(clk.InputHz)).Msg("PLL programmed")

		ctx, cancel := context.WithTimeout(context.Background(), o.lockWait)
		defer cancel()
		if err = dev.WaitPLLLock(ctx, time.Millisecond); err != nil {
			log.Warn().Err(err).Msg("PLL did not lock, leaving it bypassed")
			return nil
		}
		if err = dev.BypassPLL(false); err != nil {
			return err
		}
		log.Info().Msg("PLL locked")
	case "read":
		v, err := dev.BitFieldRead(uint32(o.addr), uint8(o.start), uint8(o.count))
		if err != nil {
			return err
		}
		log.Info().Str("addr", "0x"+strconv.FormatUint(uint64(o.addr), 16)).Uint32("value", v).Msg("read")
	case "write":
		if err := dev.BitFieldWrite(uint32(o.addr), uint8(o.start), uint8(o.count), uint32(o.value)); err != nil {
			return err
		}
		log.Info().Str("addr", "0x"+strconv.FormatUint(uint64(o.addr), 16)).Uint32("value", uint32(o.value)).Msg("wrote")
	case "dump":
		for a := uint32(lark.RegVendorID); a <= lark.RegSoftReset; a++ {
			if _, err := dev.BitFieldRead(a, 0, 8); err != nil {
				return err
			}
		}
	default:
		return errors.New("unknown operation " + strconv.Quote(o.op))
	}

	regs := dev.Registers()
	addrs := make([]uint32, 0, len(regs))
	for a := range regs {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	level := zerolog.DebugLevel
	if o.op == "dump" {
		level = zerolog.InfoLevel
	}
	for _, a := range addrs {
		log.WithLevel(level).Str("addr", "0x"+strconv.FormatUint(uint64(a), 16)).Uint32("value", regs[a]).Msg("register")
	}
	return nil
}
