package release

import (
	"regexp"
	"strings"
)

// All patterns are compiled once at init and never mutated afterwards, so
// Parse is safe to call from any number of goroutines. Quantifiers are kept
// small and bounded to avoid pathological backtracking on hostile captions.
var (
	// Container extensions, anchored at end of the raw (un-normalized) text.
	// This must match before separator collapsing destroys the literal dot.
	extensionRegex = regexp.MustCompile(`(?i)\.(mkv|mp4|avi|mov|wmv|flv|webm|m4v|3gp|ts|m2ts)\s*$`)

	// Inline fallback once the dot is gone, e.g. "... x264 mkv".
	extensionTokenRegex = regexp.MustCompile(`(?i)\b(mkv|mp4|avi|mov|wmv|flv|webm|m4v|3gp|ts|m2ts)\b`)

	// Audio channel specs like 5.1CH / 7.1CH / 6CH. Also matched on the raw
	// text: normalization collapses the decimal dot in "7.1" to a space,
	// which would leave only "1CH" behind.
	audioChannelRegex = regexp.MustCompile(`(?i)\b\d{1,2}(?:\.\d)?ch\b`)

	// Runs of scene separators collapsed to a single space.
	separatorRegex = regexp.MustCompile(`[._]+`)

	imdbIDRegex = regexp.MustCompile(`tt\d{6,8}`)

	// One capture group per bracket style; exactly one of them is non-empty
	// per match.
	bracketRegex = regexp.MustCompile(`\[([^\[\]]*)\]|\(([^()]*)\)|\{([^{}]*)\}`)

	qualityRegex    = regexp.MustCompile(`(?i)\b(2160p|1080p|720p|480p|4k)\b`)
	ripRegex        = regexp.MustCompile(`(?i)\b(web[- ]?dl|web[- ]?rip|blu[- ]?ray|b[dr]rip|hd[- ]?rip|dvd[- ]?rip|hdtv|hdts|hdcam|cam)\b`)
	sourceRegex     = regexp.MustCompile(`(?i)\b(netflix|nf|amazon|amzn|prime\s?video|prime|disney\+|dsnp|hbo\s?max|hbo|hulu|apple\s?tv\+?|atvp)\b`)
	resolutionRegex = regexp.MustCompile(`\b(\d{3,4}x\d{3,4})\b`)

	// Longer/composite names first so e.g. DTS-HD is not swallowed by DTS.
	audioRegex      = regexp.MustCompile(`(?i)\b(dts[- ]?hd(?:[- ]?ma)?|dts[- ]?x|truehd|atmos|e[- ]?ac[- ]?3|ac[- ]?3|aac|flac|mp3|m4a|dts)\b`)
	videoCodecRegex = regexp.MustCompile(`(?i)\b(x[- ]?264|h[- ]?264|avc|x[- ]?265|h[- ]?265|hevc|vp9)\b`)
	bitDepthRegex   = regexp.MustCompile(`(?i)\b(8|10|12)[- ]?bits?\b`)

	// HDR variants checked most-capable first; the first hit wins.
	dolbyVisionRegex = regexp.MustCompile(`(?i)\b(dolby\s?vision|dovi|dv)\b`)
	hdr10PlusRegex   = regexp.MustCompile(`(?i)\bhdr10(\+|plus)`)
	hdr10Regex       = regexp.MustCompile(`(?i)\bhdr10\b`)
	hdrRegex         = regexp.MustCompile(`(?i)\bhdr\b`)

	yearRegex = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	seasonEpisodeRegex = regexp.MustCompile(`(?i)\bs(\d{1,2})[ ._-]?e(\d{1,2})\b`)
	seasonXEpisodeRegex = regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{1,2})\b`)

	// Title boundary markers beyond the ones above: a bare season tag like
	// "S03 " with no episode attached.
	seasonTagRegex = regexp.MustCompile(`(?i)\bs\d{1,2}[ ._-]`)
)

// ripLabels maps a match with separators removed to its canonical label.
var ripLabels = map[string]string{
	"webdl":  "WEB-DL",
	"webrip": "WEBRip",
	"bluray": "BluRay",
	"brrip":  "BRRip",
	"bdrip":  "BRRip",
	"hdrip":  "HDRip",
	"dvdrip": "DVDRip",
	"hdtv":   "HDTV",
	"hdts":   "HDTS",
	"hdcam":  "CAM",
	"cam":    "CAM",
}

var sourceLabels = map[string]string{
	"netflix":    "Netflix",
	"nf":         "Netflix",
	"amazon":     "Amazon",
	"amzn":       "Amazon",
	"prime":      "Prime",
	"primevideo": "Prime",
	"disney+":    "Disney+",
	"dsnp":       "Disney+",
	"hbo":        "HBO",
	"hbomax":     "HBO",
	"hulu":       "Hulu",
	"appletv":    "Apple TV",
	"appletv+":   "Apple TV",
	"atvp":       "Apple TV",
}

var audioLabels = map[string]string{
	"dtshd":   "DTS-HD",
	"dtshdma": "DTS-HD",
	"dtsx":    "DTS-X",
	"dts":     "DTS",
	"truehd":  "TrueHD",
	"atmos":   "Atmos",
	"eac3":    "EAC3",
	"ac3":     "AC3",
	"aac":     "AAC",
	"flac":    "FLAC",
	"mp3":     "MP3",
	"m4a":     "M4A",
}

var videoCodecLabels = map[string]string{
	"x264": VideoCodecAVC,
	"h264": VideoCodecAVC,
	"avc":  VideoCodecAVC,
	"x265": VideoCodecHEVC,
	"h265": VideoCodecHEVC,
	"hevc": VideoCodecHEVC,
	"vp9":  VideoCodecVP9,
}

// canonicalKey lowercases a match and strips the separators the patterns
// tolerate, so "Blu-Ray", "blu ray" and "BluRay" share one map entry.
func canonicalKey(match string) string {
	key := strings.ToLower(match)
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, " ", "")
	return key
}

func canonicalQuality(match string) string {
	q := strings.ToLower(match)
	if q == "4k" {
		return "4K"
	}
	return q
}

func canonicalBitDepth(match string) string {
	depth := strings.ToLower(match)
	depth = strings.ReplaceAll(depth, "-", "")
	depth = strings.ReplaceAll(depth, " ", "")
	return strings.TrimSuffix(depth, "s")
}
