// Package release turns scene-convention release names (captions and
// filenames like "Star.Wars.Visions.S02E09.1080p.WEBRip.x265-PSA.mkv") into
// a structured metadata record. Parsing is a fixed sequence of independent
// extraction stages over the concatenated input; it is pure, deterministic
// and safe for concurrent use.
package release

import (
	"strconv"
	"strings"

	"github.com/mediadex/mediatag/internal/constants"
)

// Canonical video codec labels.
const (
	VideoCodecAVC  = "x264/AVC"
	VideoCodecHEVC = "x265/HEVC"
	VideoCodecVP9  = "VP9"
)

// Canonical HDR format labels, most capable first.
const (
	HDRDolbyVision = "Dolby Vision"
	HDR10Plus      = "HDR10+"
	HDR10          = "HDR10"
	HDRPlain       = "HDR"
)

// Metadata is the parsed view of a release name. A zero value means the
// field was not present in the input; Type is always set and defaults to
// Movie. Season and Episode come from the same pattern match, so they are
// either both set (and Type is Series) or both absent.
type Metadata struct {
	Title         string `json:"title,omitempty"`
	Year          int    `json:"year,omitempty"`
	Quality       string `json:"quality,omitempty"`
	Rip           string `json:"rip,omitempty"`
	Source        string `json:"source,omitempty"`
	Extension     string `json:"extension,omitempty"`
	Resolution    string `json:"resolution,omitempty"`
	Audio         string `json:"audio,omitempty"`
	AudioChannels string `json:"audio_channels,omitempty"`
	VideoCodec    string `json:"video_codec,omitempty"`
	BitDepth      string `json:"bit_depth,omitempty"`
	HDRFormat     string `json:"hdr_format,omitempty"`
	IMDB          string `json:"imdb,omitempty"`
	Type          string `json:"type"`
	Season        int    `json:"season,omitempty"`
	Episode       int    `json:"episode,omitempty"`
}

// IsSeries reports whether a season/episode pattern was found.
func (m *Metadata) IsSeries() bool {
	return m.Type == constants.TypeSeries
}

// Parse extracts metadata from a message caption and/or an attachment
// filename. Either input may be empty; an entirely empty input yields a
// record with every field absent. Parse never fails: unmatched fields are
// simply left unset.
func Parse(caption, filename string) *Metadata {
	meta := &Metadata{Type: constants.TypeMovie}

	raw := strings.TrimSpace(strings.TrimSpace(caption) + " " + strings.TrimSpace(filename))
	if raw == "" {
		return meta
	}

	// Extension and audio channels are pulled from the raw text: separator
	// normalization would destroy the trailing ".mkv" dot and the decimal
	// point inside "7.1CH".
	if m := extensionRegex.FindStringSubmatch(raw); m != nil {
		meta.Extension = "." + strings.ToLower(m[1])
	}
	if m := audioChannelRegex.FindString(raw); m != "" {
		meta.AudioChannels = strings.ToUpper(m)
	}

	text := separatorRegex.ReplaceAllString(raw, " ")

	meta.IMDB = imdbIDRegex.FindString(text)

	// Bracketed tags are a deliberate "this is metadata" convention and
	// outrank anything found inline.
	for _, groups := range bracketRegex.FindAllStringSubmatch(text, -1) {
		applyTags(meta, groups[1]+groups[2]+groups[3])
	}

	// Inline fallbacks over the full text; each commits only when the
	// bracket pass left the field empty.
	applyTags(meta, text)
	if meta.Extension == "" {
		if m := extensionTokenRegex.FindString(text); m != "" {
			meta.Extension = "." + strings.ToLower(m)
		}
	}
	if meta.Resolution == "" {
		meta.Resolution = resolutionRegex.FindString(text)
	}

	detectSeasonEpisode(meta, text)

	year, splitPos := resolveYear(text)
	meta.Year = year
	meta.Title = extractTitle(text, splitPos)

	return meta
}

// applyTags runs the closed-vocabulary extractors over text, setting only
// fields that are still unset. It is shared by the bracket pass and the
// inline pass so the first-match-wins precedence falls out of call order.
func applyTags(meta *Metadata, text string) {
	if meta.Quality == "" {
		if m := qualityRegex.FindString(text); m != "" {
			meta.Quality = canonicalQuality(m)
		}
	}
	if meta.Rip == "" {
		if m := ripRegex.FindString(text); m != "" {
			meta.Rip = ripLabels[canonicalKey(m)]
		}
	}
	if meta.Source == "" {
		if m := sourceRegex.FindString(text); m != "" {
			meta.Source = sourceLabels[canonicalKey(m)]
		}
	}
	if meta.Audio == "" {
		if m := audioRegex.FindString(text); m != "" {
			meta.Audio = audioLabels[canonicalKey(m)]
		}
	}
	if meta.AudioChannels == "" {
		if m := audioChannelRegex.FindString(text); m != "" {
			meta.AudioChannels = strings.ToUpper(m)
		}
	}
	if meta.VideoCodec == "" {
		if m := videoCodecRegex.FindString(text); m != "" {
			meta.VideoCodec = videoCodecLabels[canonicalKey(m)]
		}
	}
	if meta.BitDepth == "" {
		if m := bitDepthRegex.FindString(text); m != "" {
			meta.BitDepth = canonicalBitDepth(m)
		}
	}
	if meta.HDRFormat == "" {
		meta.HDRFormat = detectHDR(text)
	}
}

// detectHDR checks the HDR variants most-capable-first and stops at the
// first hit, so "HDR10+ Dolby Vision" resolves to Dolby Vision.
func detectHDR(text string) string {
	switch {
	case dolbyVisionRegex.MatchString(text):
		return HDRDolbyVision
	case hdr10PlusRegex.MatchString(text):
		return HDR10Plus
	case hdr10Regex.MatchString(text):
		return HDR10
	case hdrRegex.MatchString(text):
		return HDRPlain
	}
	return ""
}

func detectSeasonEpisode(meta *Metadata, text string) {
	m := seasonEpisodeRegex.FindStringSubmatch(text)
	if m == nil {
		m = seasonXEpisodeRegex.FindStringSubmatch(text)
	}
	if m == nil {
		return
	}
	season, _ := strconv.Atoi(m[1])
	episode, _ := strconv.Atoi(m[2])
	meta.Type = constants.TypeSeries
	meta.Season = season
	meta.Episode = episode
}
