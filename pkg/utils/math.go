package utils

import "math"

// RoundFloat64 rounds value to the given number of decimal places.
// For example, RoundFloat64(3.14159, 2) returns 3.14.
func RoundFloat64(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}
