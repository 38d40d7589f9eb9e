package release

import (
	"regexp"
	"strings"
)

// blankBrackets overwrites bracket groups with spaces of the same length.
// Bracketed content is metadata by convention and never title material, but
// offsets computed on the normalized text must stay valid, so the groups are
// blanked rather than removed.
func blankBrackets(text string) string {
	return bracketRegex.ReplaceAllStringFunc(text, func(m string) string {
		return strings.Repeat(" ", len(m))
	})
}

// extractTitle cuts the cleaned text at splitPos (the chosen year's offset)
// when one exists, otherwise at the first metadata marker, and tidies what
// is left. An empty result means the input carried no usable title and the
// caller should fall back to the caption or filename as-is.
func extractTitle(text string, splitPos int) string {
	cleaned := blankBrackets(text)

	cut := splitPos
	if cut < 0 {
		cut = firstTitleBoundary(cleaned)
	}
	if cut >= 0 && cut <= len(cleaned) {
		cleaned = cleaned[:cut]
	}

	cleaned = strings.TrimSpace(cleaned)
	if i := strings.IndexByte(cleaned, '\n'); i >= 0 {
		cleaned = cleaned[:i]
	}
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.TrimRight(cleaned, "-_. ")
}

// firstTitleBoundary finds the earliest token that starts the metadata tail
// of a release name: an IMDb id, any season/episode shape, a quality keyword
// or a rip keyword. Returns -1 when the whole string is title material.
func firstTitleBoundary(text string) int {
	idx := -1
	for _, re := range []*regexp.Regexp{
		imdbIDRegex,
		seasonEpisodeRegex,
		seasonTagRegex,
		seasonXEpisodeRegex,
		qualityRegex,
		ripRegex,
	} {
		if loc := re.FindStringIndex(text); loc != nil && (idx < 0 || loc[0] < idx) {
			idx = loc[0]
		}
	}
	return idx
}
