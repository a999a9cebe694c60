package sensor

import (
	"errors"
	"time"

	"picoplot-go/drivers/aht20"
	"picoplot-go/errcode"

	"tinygo.org/x/drivers"
)

// AHT20 reads temperature and humidity from one measurement. ReadHumidity
// returns the humidity captured by the preceding Read when there is one,
// and measures otherwise.
type AHT20 struct {
	dev     *aht20.Device
	last    aht20.Sample
	pending bool
}

func NewAHT20(bus drivers.I2C, addr uint16) (*AHT20, error) {
	dev := aht20.New(bus)
	err := dev.Configure(aht20.Config{
		Address:        addr,
		PollInterval:   15 * time.Millisecond,
		CollectTimeout: 250 * time.Millisecond,
	})
	if err != nil {
		return nil, errcode.Wrap(aht20Code(err), "sensor.NewAHT20", err)
	}
	return &AHT20{dev: dev}, nil
}

func aht20Code(err error) errcode.Code {
	switch {
	case errors.Is(err, aht20.ErrTimeout):
		return errcode.Timeout
	case errors.Is(err, aht20.ErrNotReady):
		return errcode.NotReady
	}
	return errcode.MapDriverErr(err)
}

func (s *AHT20) measure(op string) (aht20.Sample, error) {
	smp, err := s.dev.Read()
	if err != nil {
		return aht20.Sample{}, errcode.Wrap(aht20Code(err), op, err)
	}
	return smp, nil
}

func (s *AHT20) Read() (int32, error) {
	smp, err := s.measure("sensor.AHT20.Read")
	if err != nil {
		s.pending = false
		return 0, err
	}
	s.last, s.pending = smp, true
	return smp.Q8Celsius(), nil
}

func (s *AHT20) ReadHumidity() (int32, error) {
	if s.pending {
		s.pending = false
		return s.last.DeciRelHumidity(), nil
	}
	smp, err := s.measure("sensor.AHT20.ReadHumidity")
	if err != nil {
		return 0, err
	}
	return smp.DeciRelHumidity(), nil
}
