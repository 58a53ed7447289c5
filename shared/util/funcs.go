package util

// Clamp limita v ao intervalo [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs retorna o valor absoluto de um int32.
func Abs(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// Abs32 retorna o valor absoluto de um float32.
func Abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
