//go:build rp2040 && !board_badger2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/waveshare-epd/epd2in13"
)

// Waveshare Pico e-Paper 2.13 hat pins.
const (
	epdDC   = machine.GPIO8
	epdCS   = machine.GPIO9
	epdCLK  = machine.GPIO10
	epdDIN  = machine.GPIO11
	epdRST  = machine.GPIO12
	epdBUSY = machine.GPIO13
)

// epd2in13Panel switches the waveform table between full and partial
// updates as needed.
type epd2in13Panel struct {
	*epd2in13.Device
	partial bool
}

func newEPD2in13() (*epd2in13Panel, error) {
	spi := machine.SPI1
	if err := spi.Configure(machine.SPIConfig{
		Frequency: 4_000_000,
		SCK:       epdCLK,
		SDO:       epdDIN,
	}); err != nil {
		return nil, err
	}
	dev := epd2in13.New(spi, epdCS, epdDC, epdRST, epdBUSY)
	dev.Configure(epd2in13.Config{Rotation: epd2in13.ROTATION_270})
	dev.ClearBuffer()
	dev.ClearDisplay()
	return &epd2in13Panel{Device: &dev}, nil
}

func (p *epd2in13Panel) Display() error {
	if p.partial {
		p.Device.SetLUT(true)
		p.partial = false
	}
	return p.Device.Display()
}

func (p *epd2in13Panel) DisplayQuick() error {
	if !p.partial {
		p.Device.SetLUT(false)
		p.partial = true
	}
	return p.Device.Display()
}
