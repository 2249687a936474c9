package mangadex

import (
	"net/url"
	"strings"

	"mgd/internal/domain"
)

const siteHost = "mangadex.org"

// ResolveManga turns a manga id or detail link into a manga id. Bare
// tokens are taken verbatim; links must point at a manga detail page
// on the expected host.
func ResolveManga(reference string) (string, error) {
	return resolveReference(reference, "title")
}

// ResolveChapter turns a chapter id or detail link into a chapter id.
func ResolveChapter(reference string) (string, error) {
	return resolveReference(reference, "chapter")
}

func resolveReference(reference, keyword string) (string, error) {
	u, err := url.Parse(reference)
	if err != nil || u.Host == "" {
		// no link structure, take it as a bare id
		return reference, nil
	}

	if u.Hostname() != siteHost {
		return "", &domain.InvalidReferenceError{Reference: reference}
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[0] != keyword || segments[1] == "" {
		return "", &domain.InvalidReferenceError{Reference: reference}
	}

	return segments[1], nil
}
