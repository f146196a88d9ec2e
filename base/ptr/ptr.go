package ptr

// String returns a pointer to the input value
func String(value string) *string {
	return &value
}

// Bool returns a pointer to the input value
func Bool(value bool) *bool {
	return &value
}

// Int returns a pointer to the input value
func Int(value int) *int {
	return &value
}

// Uint16 returns a pointer to the input value
func Uint16(value uint16) *uint16 {
	return &value
}

// Uint64 returns a pointer to the input value
func Uint64(value uint64) *uint64 {
	return &value
}

// Float64 returns a pointer to the input value
func Float64(value float64) *float64 {
	return &value
}
