package parse

import (
	"slices"

	"mgd/internal/domain"
	"mgd/internal/utils"
)

// Range bounds a numeric label selection, either end may be left nil.
type Range struct {
	Min *float32
	Max *float32
}

// Active reports whether any bound is set.
func (r Range) Active() bool {
	return r.Min != nil || r.Max != nil
}

// Contains reports whether a label falls inside the range. Labels
// that are absent never match.
func (r Range) Contains(num domain.Number) bool {
	value, ok := num.Value()
	if !ok {
		return false
	}

	if r.Min != nil && value < *r.Min {
		return false
	}
	if r.Max != nil && value > *r.Max {
		return false
	}

	return true
}

// Criteria selects which chapters of a manga to download. The zero
// value selects everything.
type Criteria struct {
	Volumes      []float32
	Chapters     []float32
	ChapterRange Range
	VolumeRange  Range
}

// SelectChapters applies the criteria to the fetched volumes and
// returns the chapters to download, ordered and deduplicated. Only one
// criterion applies per call: the first non-empty of volume list,
// chapter list, chapter range and volume range wins, no criteria at
// all selects every chapter.
func SelectChapters(volumes []domain.Volume, criteria Criteria) []domain.Chapter {
	var chapters []domain.Chapter

	switch {
	case len(criteria.Volumes) > 0:
		var selected []domain.Volume
		for _, volume := range volumes {
			if num, ok := volume.Number.Value(); ok && slices.Contains(criteria.Volumes, num) {
				selected = append(selected, volume)
			}
		}
		chapters = Flatten(selected)
	case len(criteria.Chapters) > 0:
		chapters = slices.DeleteFunc(Flatten(volumes), func(chapter domain.Chapter) bool {
			num, ok := chapter.Number.Value()
			return !ok || !slices.Contains(criteria.Chapters, num)
		})
	case criteria.ChapterRange.Active():
		chapters = slices.DeleteFunc(Flatten(volumes), func(chapter domain.Chapter) bool {
			return !criteria.ChapterRange.Contains(chapter.Number)
		})
	case criteria.VolumeRange.Active():
		var selected []domain.Volume
		for _, volume := range volumes {
			if criteria.VolumeRange.Contains(volume.Number) {
				selected = append(selected, volume)
			}
		}
		chapters = Flatten(selected)
	default:
		chapters = Flatten(volumes)
	}

	return dedupe(chapters)
}

// Flatten combines the chapters of the given volumes into a single
// sequence ordered by chapter label. Unnumbered chapters sort before
// numbered ones and keep their relative order.
func Flatten(volumes []domain.Volume) []domain.Chapter {
	var chapters []domain.Chapter
	for _, volume := range volumes {
		for _, chapter := range volume.Chapters {
			chapters = append(chapters, chapter)
		}
	}

	slices.SortStableFunc(chapters, func(a, b domain.Chapter) int {
		return a.Number.Compare(b.Number)
	})

	return chapters
}

// PadWidth returns the digit width needed to align the labels of the
// selected chapters, based on the largest label present.
func PadWidth(chapters []domain.Chapter) int {
	width := 1
	for _, chapter := range chapters {
		if num, ok := chapter.Number.Value(); ok {
			if w := utils.DigitWidth(int(num)); w > width {
				width = w
			}
		}
	}

	return width
}

func dedupe(chapters []domain.Chapter) []domain.Chapter {
	seen := make(map[string]bool, len(chapters))

	return slices.DeleteFunc(chapters, func(chapter domain.Chapter) bool {
		if seen[chapter.ID] {
			return true
		}
		seen[chapter.ID] = true

		return false
	})
}
