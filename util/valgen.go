// Some helpers using closures to generate operand values
package valgen

import "math/rand"

func MakeConstGen(constant uint8) func() uint8 {
	return func() uint8 {
		return constant
	}
}

func MakeIncreasingGen(start uint8) func() uint8 {
	current := start
	return func() uint8 {
		current++
		return current
	}
}

func MakeRandGen(r *rand.Rand) func() uint8 {
	return func() uint8 {
		return uint8(r.Intn(256))
	}
}

// Matrix fills a flattened matrix of n elements from the generator.
func Matrix(n int, gen func() uint8) []uint8 {
	m := make([]uint8, n)
	for i := range m {
		m[i] = gen()
	}
	return m
}
