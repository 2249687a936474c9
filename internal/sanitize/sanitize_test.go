package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{name: "clean", filename: "chapter_04.5", expected: "chapter_04.5"},
		{name: "illegal chars", filename: `chapter: "1/2"?`, expected: "chapter 12"},
		{name: "trailing dot and space", filename: " chapter. ", expected: "chapter"},
		{name: "windows path", filename: `C:\manga\ch1`, expected: "Cmangach1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Filename(tt.filename))
		})
	}
}
