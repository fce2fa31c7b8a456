package common

// Abs returns the absolute value of x
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign maps n to 1 when n >= 0 and to -1 otherwise
func Sign(n int) int {
	if n >= 0 {
		return 1
	}
	return -1
}
