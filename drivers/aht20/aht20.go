// Package aht20 provides a driver for the AHT20 temperature/humidity sensor.
// It exposes a two-phase measurement API:
//
//	d.Trigger()              // start a measurement (fast)
//	s, err := d.Collect()    // fetch when ready; ErrNotReady while busy
//
// For convenience, d.Read() performs trigger + bounded polling until ready.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when both
// w and r are provided, without releasing the bus.
//
// No floating point: Sample helpers return tenths of units (deci-°C,
// deci-%RH) or the 1/256 °C encoding.
package aht20

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// I2C address.
const Address = 0x38

// Commands and status bits.
const (
	cmdTrigger    = 0xAC
	cmdInitialize = 0xBE
	cmdSoftReset  = 0xBA
	cmdStatus     = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08
)

// Errors returned by the driver.
var (
	ErrTimeout  = errors.New("aht20: timeout")
	ErrNotReady = errors.New("aht20: not ready")
)

// Config controls non-hardware behaviour. Zero fields take defaults.
type Config struct {
	Address        uint16        // 0x38
	PollInterval   time.Duration // 15 ms between Collect attempts in Read
	CollectTimeout time.Duration // 250 ms total wait in Read
}

// Device wraps an I2C connection to an AHT20 device.
type Device struct {
	bus drivers.I2C
	cfg Config
	buf [7]byte
	// sleep is swapped out by tests.
	sleep func(time.Duration)
}

// New creates a new AHT20 connection. The I2C bus must already be configured.
// It does not touch the device.
func New(bus drivers.I2C) *Device {
	return &Device{bus: bus, cfg: Config{Address: Address}, sleep: time.Sleep}
}

// Configure applies cfg and calibrates the sensor if it reports itself
// uncalibrated.
func (d *Device) Configure(cfg Config) error {
	if cfg.Address == 0 {
		cfg.Address = Address
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Millisecond
	}
	if cfg.CollectTimeout <= 0 {
		cfg.CollectTimeout = 250 * time.Millisecond
	}
	d.cfg = cfg

	st, err := d.Status()
	if err == nil && st&statusCalibrated != 0 {
		return nil
	}
	if err := d.bus.Tx(d.cfg.Address, []byte{cmdInitialize, 0x08, 0x00}, nil); err != nil {
		return err
	}
	d.sleep(10 * time.Millisecond)
	return nil
}

// Reset issues a soft reset. Give the device ~20ms afterwards before using.
func (d *Device) Reset() error {
	return d.bus.Tx(d.cfg.Address, []byte{cmdSoftReset}, nil)
}

// Status reads the status byte.
func (d *Device) Status() (byte, error) {
	var st [1]byte
	if err := d.bus.Tx(d.cfg.Address, []byte{cmdStatus}, st[:]); err != nil {
		return 0, err
	}
	return st[0], nil
}

// Trigger starts a measurement. Conversion takes ~80 ms.
func (d *Device) Trigger() error {
	return d.bus.Tx(d.cfg.Address, []byte{cmdTrigger, 0x33, 0x00}, nil)
}

// Collect reads one measurement. ErrNotReady is returned while the device is
// still converting.
func (d *Device) Collect() (Sample, error) {
	data := d.buf[:]
	if err := d.bus.Tx(d.cfg.Address, nil, data); err != nil {
		return Sample{}, err
	}
	if data[0]&statusCalibrated == 0 || data[0]&statusBusy != 0 {
		return Sample{}, ErrNotReady
	}
	return Sample{
		RawHumidity: uint32(data[1])<<12 | uint32(data[2])<<4 | uint32(data[3])>>4,
		RawTemp:     uint32(data[3]&0x0F)<<16 | uint32(data[4])<<8 | uint32(data[5]),
	}, nil
}

// Read performs Trigger followed by bounded polling until Collect succeeds
// or the timeout elapses.
func (d *Device) Read() (Sample, error) {
	if d.cfg.PollInterval == 0 {
		if err := d.Configure(d.cfg); err != nil {
			return Sample{}, err
		}
	}
	if err := d.Trigger(); err != nil {
		return Sample{}, err
	}
	var waited time.Duration
	for {
		s, err := d.Collect()
		if err != ErrNotReady {
			return s, err
		}
		if waited >= d.cfg.CollectTimeout {
			return Sample{}, ErrTimeout
		}
		d.sleep(d.cfg.PollInterval)
		waited += d.cfg.PollInterval
	}
}

// Sample holds raw 20-bit readings.
type Sample struct {
	RawHumidity uint32
	RawTemp     uint32
}

// DeciRelHumidity returns tenths of %RH.
func (s Sample) DeciRelHumidity() int32 {
	return int32(int64(s.RawHumidity) * 1000 >> 20)
}

// DeciCelsius returns tenths of °C.
func (s Sample) DeciCelsius() int32 {
	return int32(int64(s.RawTemp)*2000>>20) - 500
}

// Q8Celsius returns °C * 256.
func (s Sample) Q8Celsius() int32 {
	return int32(int64(s.RawTemp)*200*256>>20) - 50*256
}
