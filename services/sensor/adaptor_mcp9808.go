package sensor

import (
	"picoplot-go/drivers/mcp9808"
	"picoplot-go/errcode"

	"tinygo.org/x/drivers"
)

type MCP9808 struct {
	dev mcp9808.Device
}

// NewMCP9808 configures an MCP9808 at addr (0 for the default) and checks
// its identity registers.
func NewMCP9808(bus drivers.I2C, addr uint16) (*MCP9808, error) {
	dev := mcp9808.New(bus)
	err := dev.Configure(mcp9808.Config{
		Address:       addr,
		Resolution:    mcp9808.ResolutionSixteenth,
		SetResolution: true,
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.MapDriverErr(err), "sensor.NewMCP9808", err)
	}
	if !dev.Connected() {
		return nil, errcode.Wrap(errcode.NotReady, "sensor.NewMCP9808", mcp9808.ErrNoDevice)
	}
	return &MCP9808{dev: dev}, nil
}

func (s *MCP9808) Read() (int32, error) {
	v, err := s.dev.ReadRaw()
	if err != nil {
		return 0, errcode.Wrap(errcode.MapDriverErr(err), "sensor.MCP9808.Read", err)
	}
	return v, nil
}
