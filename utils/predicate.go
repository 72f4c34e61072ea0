package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// AtLeast reports whether value is not below min.
func AtLeast[T number](min T, value T) bool {
	return min <= value
}

// AtMost reports whether value is not above max.
func AtMost[T number](value T, max T) bool {
	return value <= max
}
