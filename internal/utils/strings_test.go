package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadFloat(t *testing.T) {
	tests := []struct {
		name     string
		num      float32
		width    int
		expected string
	}{
		{name: "integer", num: 1, width: 3, expected: "001"},
		{name: "decimal", num: 12.5, width: 3, expected: "012.5"},
		{name: "full width", num: 125.5, width: 3, expected: "125.5"},
		{name: "wider than width", num: 1234, width: 3, expected: "1234"},
		{name: "zero width", num: 7, width: 0, expected: "7"},
		{name: "negative", num: -1, width: 2, expected: "-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PadFloat(tt.num, tt.width))
		})
	}
}

func TestDigitWidth(t *testing.T) {
	assert.Equal(t, 1, DigitWidth(0))
	assert.Equal(t, 1, DigitWidth(9))
	assert.Equal(t, 2, DigitWidth(10))
	assert.Equal(t, 2, DigitWidth(99))
	assert.Equal(t, 3, DigitWidth(100))
}
