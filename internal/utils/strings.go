package utils

import (
	"strconv"
	"strings"
)

// PadFloat formats a float32 zero-padded to width, preserving original decimals
func PadFloat(num float32, width int) string {
	str := strconv.FormatFloat(float64(num), 'f', -1, 32)

	// only the integer part counts towards the width
	parts := strings.Split(str, ".")
	intPart := parts[0]

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	if padding := width - len(intPart); padding > 0 {
		intPart = strings.Repeat("0", padding) + intPart
	}
	if negative {
		intPart = "-" + intPart
	}

	if len(parts) > 1 {
		return intPart + "." + parts[1]
	}
	return intPart
}

// DigitWidth returns the number of decimal digits needed to print n, at least 1
func DigitWidth(n int) int {
	if n < 10 {
		return 1
	}

	width := 0
	for n > 0 {
		n /= 10
		width++
	}
	return width
}
