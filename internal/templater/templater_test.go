package templater

import (
	"testing"

	"mgd/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExecTemplate(t *testing.T) {
	chapter := domain.Chapter{
		ID:     "29272df6-67ab-4b31-a584-9637d51f4370",
		Number: domain.NewNumber(4.5),
	}
	templater := New(chapter, 2)

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{name: "plain num", template: "chapter_{num}", expected: "chapter_4.5"},
		{name: "fixed pad", template: "chapter_{num:3}", expected: "chapter_004.5"},
		{name: "auto pad", template: "chapter_{num:auto}", expected: "chapter_04.5"},
		{name: "id", template: "{id}", expected: "29272df6-67ab-4b31-a584-9637d51f4370"},
		{name: "mixed", template: "{num:auto} ({id})", expected: "04.5 (29272df6-67ab-4b31-a584-9637d51f4370)"},
		{name: "unknown placeholder", template: "{title}_{num}", expected: "{title}_4.5"},
		{name: "no placeholders", template: "chapter", expected: "chapter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, templater.ExecTemplate(tt.template))
		})
	}
}

func TestExecTemplateUnnumbered(t *testing.T) {
	templater := New(domain.Chapter{ID: "x"}, 2)

	assert.Equal(t, "chapter_none", templater.ExecTemplate("chapter_{num}"))
	assert.Equal(t, "chapter_none", templater.ExecTemplate("chapter_{num:auto}"))
}
