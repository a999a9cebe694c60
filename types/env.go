package types

// ------------------------
// Temperature
// ------------------------

// Q8PerDegree is the sensor-side temperature encoding: raw / 256 = °C.
const Q8PerDegree = 256

type TemperatureValue struct {
	// Tenths of °C (e.g. 231 => 23.1°C).
	DeciC int32 `json:"deci_c"`
}

// TemperatureFromQ8 converts the sensor encoding to tenths of a degree,
// truncating toward zero.
func TemperatureFromQ8(raw int32) TemperatureValue {
	return TemperatureValue{DeciC: raw * 10 / Q8PerDegree}
}

// Q8FromDeciC is the inverse of TemperatureFromQ8 for sensors that report
// tenths natively.
func Q8FromDeciC(deci int32) int32 {
	return deci * Q8PerDegree / 10
}
