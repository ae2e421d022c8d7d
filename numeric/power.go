package numeric

import "fmt"

// Real covers the numeric types the simulation kernels exponentiate.
type Real interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// FixedPower computes n^exp for a small, fixed exponent such as the spatial
// dimension. Exponents 1 through 4 use direct multiplication chains; larger
// exponents fall back to an accumulate-multiply loop. Overflow follows the
// semantics of T's own multiplication.
//
// exp must be at least 1; a smaller exponent is a programming error and
// panics.
func FixedPower[T Real](n T, exp int) T {
	if exp < 1 {
		panic(fmt.Sprintf("numeric: fixed power exponent must be >= 1, got %d", exp))
	}
	switch exp {
	case 1:
		return n
	case 2:
		return n * n
	case 3:
		return n * n * n
	case 4:
		return n * n * n * n
	}
	result := n
	for d := 1; d < exp; d++ {
		result *= n
	}
	return result
}
