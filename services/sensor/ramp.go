package sensor

import (
	"picoplot-go/types"
	"picoplot-go/x/ramp"
)

// Ramp is a deterministic sensor for the simulator and tests: each read
// advances one step along triangle waves.
type Ramp struct {
	Temp     ramp.Triangle // tenths of a degree
	Humidity ramp.Triangle // tenths of %RH
	VBat     ramp.Triangle // millivolts

	step, hstep, vstep uint32
}

// NewRamp swings 15.0..30.0 °C and 40..65 %RH once per simulated day of
// one-minute reads, with the battery sagging from 4.2 V to 3.6 V over a
// week.
func NewRamp() *Ramp {
	return &Ramp{
		Temp:     ramp.Triangle{Lo: 150, Hi: 300, Period: 24 * 60, Phase: 6 * 60},
		Humidity: ramp.Triangle{Lo: 400, Hi: 650, Period: 24 * 60},
		VBat:     ramp.Triangle{Lo: 3600, Hi: 4200, Period: 14 * 24 * 60, Phase: 7 * 24 * 60},
	}
}

func (r *Ramp) Read() (int32, error) {
	v := r.Temp.At(r.step)
	r.step++
	return types.Q8FromDeciC(v), nil
}

func (r *Ramp) ReadHumidity() (int32, error) {
	v := r.Humidity.At(r.hstep)
	r.hstep++
	return v, nil
}

func (r *Ramp) ReadMilliVolts() (uint32, error) {
	v := r.VBat.At(r.vstep)
	r.vstep++
	return uint32(v), nil
}
