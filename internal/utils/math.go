// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// DecrementToZero уменьшает значение, не опуская его ниже нуля
func DecrementToZero(value, amount float64) float64 {
	value -= amount
	if value < 0 {
		return 0
	}
	return value
}
