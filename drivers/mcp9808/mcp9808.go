// Package mcp9808 provides a driver for the Microchip MCP9808 digital
// temperature sensor.
//
// The sensor converts continuously; ReadRaw returns the latest ambient
// temperature in the 1/256 °C encoding used across this module:
//
//	d := mcp9808.New(bus)
//	d.Configure(mcp9808.Config{})
//	raw, err := d.ReadRaw() // raw/256 = °C
//
// No floating point is used.
package mcp9808

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Default I2C address (A0..A2 tied low).
const Address = 0x18

// Registers.
const (
	regConfig     = 0x01
	regAmbient    = 0x05
	regManufactID = 0x06
	regDeviceID   = 0x07
	regResolution = 0x08

	manufacturerID = 0x0054
	deviceID       = 0x04 // upper byte of the device ID register

	cfgShutdown = 0x0100
)

// Resolution selects the conversion resolution (and conversion time).
type Resolution uint8

const (
	ResolutionHalf      Resolution = 0 // 0.5 °C, 30 ms
	ResolutionQuarter   Resolution = 1 // 0.25 °C, 65 ms
	ResolutionEighth    Resolution = 2 // 0.125 °C, 130 ms
	ResolutionSixteenth Resolution = 3 // 0.0625 °C, 250 ms (power-up default)
)

var ErrNoDevice = errors.New("mcp9808: device not found")

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x18 if zero.
	Address uint16
	// Resolution is applied when SetResolution is true.
	Resolution    Resolution
	SetResolution bool
}

// Device wraps an I2C connection to an MCP9808.
type Device struct {
	bus     drivers.I2C
	Address uint16

	w [3]byte
	r [2]byte
}

// New creates a new MCP9808 connection. The I2C bus must already be
// configured. It does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address}
}

// Configure applies cfg and wakes the device from shutdown.
func (d *Device) Configure(cfg Config) error {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	if cfg.SetResolution {
		d.w[0], d.w[1] = regResolution, byte(cfg.Resolution&0x03)
		if err := d.bus.Tx(d.Address, d.w[:2], nil); err != nil {
			return err
		}
	}
	return d.Wake()
}

// Connected checks the manufacturer and device identifiers.
func (d *Device) Connected() bool {
	m, err := d.read16(regManufactID)
	if err != nil || m != manufacturerID {
		return false
	}
	id, err := d.read16(regDeviceID)
	return err == nil && byte(id>>8) == deviceID
}

// ReadRaw returns the ambient temperature in 1/256 °C.
func (d *Device) ReadRaw() (int32, error) {
	v, err := d.read16(regAmbient)
	if err != nil {
		return 0, err
	}
	return AmbientToQ8(v), nil
}

// AmbientToQ8 converts the ambient register (13-bit two's complement in
// 1/16 °C, top three bits are alert flags) to 1/256 °C.
func AmbientToQ8(reg uint16) int32 {
	v := int32(reg & 0x1FFF)
	if v&0x1000 != 0 {
		v -= 0x2000
	}
	return v * 16
}

// Shutdown puts the sensor into low-power shutdown; conversions stop.
func (d *Device) Shutdown() error { return d.updateConfig(cfgShutdown, true) }

// Wake resumes continuous conversion.
func (d *Device) Wake() error { return d.updateConfig(cfgShutdown, false) }

func (d *Device) updateConfig(mask uint16, set bool) error {
	c, err := d.read16(regConfig)
	if err != nil {
		return err
	}
	if set {
		c |= mask
	} else {
		c &^= mask
	}
	d.w[0], d.w[1], d.w[2] = regConfig, byte(c>>8), byte(c)
	return d.bus.Tx(d.Address, d.w[:3], nil)
}

func (d *Device) read16(reg byte) (uint16, error) {
	d.w[0] = reg
	if err := d.bus.Tx(d.Address, d.w[:1], d.r[:]); err != nil {
		return 0, err
	}
	return uint16(d.r[0])<<8 | uint16(d.r[1]), nil
}
