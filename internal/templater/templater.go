package templater

import (
	"regexp"
	"strconv"
	"strings"

	"mgd/internal/domain"
	"mgd/internal/utils"
)

var templatePattern = regexp.MustCompile(`{((\w+?)(:.*?)?)}`)

type Templater struct {
	Chapter domain.Chapter
	Width   int
}

func New(chapter domain.Chapter, width int) *Templater {
	return &Templater{
		Chapter: chapter,
		Width:   width,
	}
}

// handleNum renders the chapter number. "{num}" is the plain number,
// "{num:3}" pads the integer part to three digits, "{num:auto}" pads
// to the width of the largest selected chapter. Chapters without a
// number render as "none".
func (t *Templater) handleNum(options string) string {
	num, ok := t.Chapter.Number.Value()
	if !ok {
		return "none"
	}

	options = strings.TrimPrefix(options, ":")
	if options == "" {
		return t.Chapter.Number.String()
	}

	if options == "auto" {
		return utils.PadFloat(num, t.Width)
	}

	length, _ := strconv.ParseInt(options, 10, 32)
	return utils.PadFloat(num, int(length))
}

func (t *Templater) ExecTemplate(template string) string {
	newString := template
	for _, match := range templatePattern.FindAllStringSubmatch(template, -1) {
		replace := match[0]

		switch match[2] {
		case "num":
			replace = t.handleNum(match[3])
		case "id":
			replace = t.Chapter.ID
		}

		newString = strings.Replace(newString, match[0], replace, 1)
	}

	return newString
}
