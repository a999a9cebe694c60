//go:build rp2040 && board_waveshare

package main

import "machine"

const variantName = "picoplot-waveshare"

// MCP9808 breakout on I2C0, GP16/GP17.
func setupBoard() (board, error) {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		SDA:       machine.GPIO16,
		SCL:       machine.GPIO17,
		Frequency: 400_000,
	}); err != nil {
		return board{}, err
	}
	p, err := newEPD2in13()
	if err != nil {
		return board{}, err
	}
	return board{panel: p, i2c: i2c}, nil
}
