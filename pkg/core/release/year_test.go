package release_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediadex/mediatag/pkg/core/release"
)

// Numeric titles are the reason the year tie-break exists: the title itself
// looks like a release year, so the candidate closest before the first
// quality/rip marker must win over the first candidate in the string.
func TestYearDisambiguationNumericTitles(t *testing.T) {
	tests := []struct {
		filename  string
		wantTitle string
		wantYear  int
	}{
		{"2012.2009.1080p.BluRay.x264.mkv", "2012", 2009},
		{"1917.2019.1080p.BluRay.x264.mkv", "1917", 2019},
		{"2001.A.Space.Odyssey.1968.1080p.BluRay.mkv", "2001 A Space Odyssey", 1968},
		{"1984.1984.1080p.BluRay.x264.mkv", "1984", 1984},
		// Standard single-year releases must keep working unchanged.
		{"Inception.2010.1080p.BluRay.x264-GROUP.mkv", "Inception", 2010},
		{"The.Matrix.1999.720p.BluRay.mkv", "The Matrix", 1999},
	}
	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			meta := release.Parse("", tc.filename)
			assert.Equal(t, tc.wantTitle, meta.Title)
			assert.Equal(t, tc.wantYear, meta.Year)
		})
	}
}

func TestYearFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantTitle string
		wantYear  int
	}{
		{
			// No quality/rip marker at all: the last year in the string wins.
			name:      "multiple years without marker",
			filename:  "1994.2000.Documentary.mkv",
			wantTitle: "1994",
			wantYear:  2000,
		},
		{
			// Every year sits after the marker: fall back to the last one.
			name:      "years only after marker",
			filename:  "Movie.720p.1999.2001.mkv",
			wantTitle: "Movie 720p 1999",
			wantYear:  2001,
		},
		{
			name:      "no year at all",
			filename:  "Some.Show.S01E01.720p.mkv",
			wantTitle: "Some Show",
			wantYear:  0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta := release.Parse("", tc.filename)
			assert.Equal(t, tc.wantTitle, meta.Title)
			assert.Equal(t, tc.wantYear, meta.Year)
		})
	}
}
