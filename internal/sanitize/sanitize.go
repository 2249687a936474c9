package sanitize

import (
	"regexp"
	"strings"
)

var illegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Filename removes problematic characters from a chapter directory name
func Filename(name string) string {
	name = strings.Trim(name, " .")

	return illegalChars.ReplaceAllString(name, "")
}
