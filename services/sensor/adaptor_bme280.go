package sensor

import (
	"picoplot-go/errcode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/bme280"
)

// bmeReader is the subset of bme280.Device used here.
type bmeReader interface {
	ReadTemperature() (int32, error) // milli-°C
	ReadHumidity() (int32, error)    // hundredths of %RH
}

type BME280 struct {
	dev bmeReader
}

// NewBME280 configures a BME280 at its default address with the driver's
// default oversampling.
func NewBME280(bus drivers.I2C) (*BME280, error) {
	dev := bme280.New(bus)
	if !dev.Connected() {
		return nil, &errcode.E{C: errcode.NotReady, Op: "sensor.NewBME280", Msg: "no device"}
	}
	dev.Configure()
	return &BME280{dev: &dev}, nil
}

func (s *BME280) Read() (int32, error) {
	mc, err := s.dev.ReadTemperature()
	if err != nil {
		return 0, errcode.Wrap(errcode.MapDriverErr(err), "sensor.BME280.Read", err)
	}
	return int32(int64(mc) * 256 / 1000), nil
}

func (s *BME280) ReadHumidity() (int32, error) {
	h, err := s.dev.ReadHumidity()
	if err != nil {
		return 0, errcode.Wrap(errcode.MapDriverErr(err), "sensor.BME280.ReadHumidity", err)
	}
	return h / 10, nil
}
