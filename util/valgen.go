// Package valgen provides closure-based value generators.
package valgen

// MakeConstGen returns a generator that always yields constant.
func MakeConstGen(constant int) func() int {
	return func() int {
		return constant
	}
}

// MakeIncreasingGen returns a generator that yields start+1, start+2
// and so on, one value per call.
func MakeIncreasingGen(start int) func() int {
	current := start
	return func() int {
		current++
		return current
	}
}

// MakeOrderGen returns a generator for 1-based instruction order
// numbers.
func MakeOrderGen() func() int {
	return MakeIncreasingGen(0)
}
