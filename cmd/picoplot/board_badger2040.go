//go:build rp2040 && board_badger2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/uc8151"
)

const variantName = "badger2040"

// uc8151Panel reconfigures the controller's update speed on demand.
type uc8151Panel struct {
	*uc8151.Device
	cfg   uc8151.Config
	quick bool
}

func (p *uc8151Panel) speed(quick bool) {
	if p.quick == quick {
		return
	}
	p.quick = quick
	p.cfg.Speed = uc8151.MEDIUM
	p.cfg.FlickerFree = false
	if quick {
		p.cfg.Speed = uc8151.TURBO
		p.cfg.FlickerFree = true
	}
	p.Device.Configure(p.cfg)
}

func (p *uc8151Panel) Display() error {
	p.speed(false)
	return p.Device.Display()
}

func (p *uc8151Panel) DisplayQuick() error {
	p.speed(true)
	return p.Device.Display()
}

// vbatADC reads VBAT through the on-board 1:3 divider.
type vbatADC struct{ adc machine.ADC }

func (v vbatADC) ReadMilliVolts() (uint32, error) {
	return uint32(v.adc.Get()) * 3 * 3300 / 0xFFFF, nil
}

// UC8151 296x128 on SPI0, MCP9808 on the Qw/ST connector.
func setupBoard() (board, error) {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
		Frequency: 400_000,
	}); err != nil {
		return board{}, err
	}

	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		Frequency: 12_000_000,
		SCK:       machine.EPD_SCK_PIN,
		SDO:       machine.EPD_SDO_PIN,
	}); err != nil {
		return board{}, err
	}
	dev := uc8151.New(spi, machine.EPD_CS_PIN, machine.EPD_DC_PIN, machine.EPD_RESET_PIN, machine.EPD_BUSY_PIN)
	p := &uc8151Panel{
		Device: &dev,
		cfg:    uc8151.Config{Rotation: uc8151.ROTATION_270, Speed: uc8151.MEDIUM, Blocking: true},
	}
	dev.Configure(p.cfg)
	dev.ClearBuffer()

	machine.InitADC()
	adc := machine.ADC{Pin: machine.GPIO29}
	adc.Configure(machine.ADCConfig{})

	return board{panel: p, i2c: i2c, vbat: vbatADC{adc: adc}}, nil
}
