package logic

import "math"

// Setpoint conversions round to the nearest degree. The controller keeps
// the setpoint in Fahrenheit and converts only at the display edge, so
// rounding never accumulates (72°F renders as 22°C and stays 72°F).

// SetpointFToC converts a Fahrenheit setpoint to Celsius.
func SetpointFToC(sp int) int {
	return int(math.Round(float64(sp-32) * 5 / 9))
}

// SetpointCToF converts a Celsius setpoint to Fahrenheit.
func SetpointCToF(sp int) int {
	return int(math.Round(float64(sp)*9/5 + 32))
}

// CToF converts a temperature sample to Fahrenheit.
func CToF(t float64) float64 {
	return t*9/5 + 32
}
