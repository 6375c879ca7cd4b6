// Package numeric holds the integer arithmetic behind the gcd binary.
package numeric

// GCD returns the greatest common divisor of a and b, computed with the
// iterative Euclidean algorithm. By convention GCD(a, 0) == a and
// GCD(0, 0) == 0.
func GCD(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
