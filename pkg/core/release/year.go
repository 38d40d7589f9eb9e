package release

import (
	"regexp"
	"strconv"
)

// yearCandidate is a 4-digit year-shaped match and its character offset in
// the normalized text.
type yearCandidate struct {
	value  int
	offset int
}

// resolveYear picks the release year among all year-shaped numbers in the
// text and returns it together with its offset, which doubles as the title
// split position (-1 when no year was found).
//
// Titles such as "2012", "1917" or "2001: A Space Odyssey" contain numbers
// that look like release years, so "first year found" is wrong. Scene names
// place the real year immediately before the quality/rip block, hence the
// tie-break: among candidates before the first quality or rip marker, take
// the one closest to it; when none precedes a marker (or there is no
// marker), take the last candidate in the string. Downstream behavior
// depends on this exact rule.
func resolveYear(text string) (int, int) {
	matches := yearRegex.FindAllStringIndex(text, -1)
	if matches == nil {
		return 0, -1
	}

	candidates := make([]yearCandidate, 0, len(matches))
	for _, loc := range matches {
		value, err := strconv.Atoi(text[loc[0]:loc[1]])
		if err != nil {
			continue
		}
		candidates = append(candidates, yearCandidate{value: value, offset: loc[0]})
	}
	if len(candidates) == 0 {
		return 0, -1
	}
	if len(candidates) == 1 {
		return candidates[0].value, candidates[0].offset
	}

	if marker := firstMarkerIndex(text); marker >= 0 {
		best := -1
		for i, c := range candidates {
			if c.offset < marker && (best < 0 || c.offset > candidates[best].offset) {
				best = i
			}
		}
		if best >= 0 {
			return candidates[best].value, candidates[best].offset
		}
	}

	last := candidates[len(candidates)-1]
	return last.value, last.offset
}

// firstMarkerIndex returns the offset of the earliest quality or rip token,
// or -1 when neither occurs.
func firstMarkerIndex(text string) int {
	idx := -1
	for _, re := range []*regexp.Regexp{qualityRegex, ripRegex} {
		if loc := re.FindStringIndex(text); loc != nil && (idx < 0 || loc[0] < idx) {
			idx = loc[0]
		}
	}
	return idx
}
