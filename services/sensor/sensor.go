// Package sensor adapts the environmental sensor drivers to the narrow
// reading interfaces the driver loop consumes.
package sensor

// TempSensor reports ambient temperature in °C * 256.
type TempSensor interface {
	Read() (int32, error)
}

// HumiditySensor reports relative humidity in tenths of a percent.
type HumiditySensor interface {
	ReadHumidity() (int32, error)
}

// VBatSource reports the supply voltage in millivolts.
type VBatSource interface {
	ReadMilliVolts() (uint32, error)
}
