// Package metadata layers per-file consolidation on top of the release
// parser: it merges the rule-based parse with a second-opinion torrent-name
// parse and, optionally, an IMDb suggestion lookup. The indexing pipeline is
// expected to take the resulting record and persist it together with its own
// channel/message bookkeeping.
package metadata

import (
	"context"
	"os"
	"path/filepath"

	ptn "github.com/razsteinmetz/go-ptn"
	log "github.com/sirupsen/logrus"

	"github.com/mediadex/mediatag/internal/constants"
	"github.com/mediadex/mediatag/pkg/core/imdb"
	"github.com/mediadex/mediatag/pkg/core/release"
)

// FileMeta is the consolidated view of one posted file: the parsed release
// record plus the raw inputs and whatever the second-opinion parser added.
type FileMeta struct {
	*release.Metadata

	FileName     string `json:"fileName,omitempty"`
	Caption      string `json:"caption,omitempty"`
	FileSize     int64  `json:"fileSize,omitempty"`
	ReleaseGroup string `json:"releaseGroup,omitempty"`
}

// SuggestionClient is the slice of the IMDb suggestion client the
// verification step needs.
type SuggestionClient interface {
	Suggest(ctx context.Context, query string) ([]imdb.Suggestion, error)
}

// Consolidate parses caption/filename and fills the gaps the rule-based
// parser leaves, most notably the release group, from go-ptn. The release
// parser always wins where both produced a value; ptn only supplements.
func Consolidate(caption, filename string) *FileMeta {
	meta := &FileMeta{
		Metadata: release.Parse(caption, filename),
		FileName: filename,
		Caption:  caption,
	}

	if filename == "" {
		return meta
	}

	parsed, err := ptn.Parse(filename)
	if err != nil {
		log.WithError(err).Warnf("Second-opinion parse failed for %q", filename)
		return meta
	}

	meta.ReleaseGroup = parsed.Group
	if meta.Title == "" {
		meta.Title = parsed.Title
	}
	if meta.Year == 0 {
		meta.Year = parsed.Year
	}
	if meta.Season == 0 && meta.Episode == 0 && parsed.Season > 0 && parsed.Episode > 0 {
		meta.Season = parsed.Season
		meta.Episode = parsed.Episode
		meta.Type = constants.TypeSeries
	}
	return meta
}

// ConsolidateFile stats path and consolidates its base name. The only error
// is the stat error; parsing itself cannot fail.
func ConsolidateFile(path string) (*FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	meta := Consolidate("", filepath.Base(path))
	meta.FileSize = info.Size()
	return meta, nil
}

// VerifyIMDb cross-checks the parsed title/year against IMDb suggestions and
// returns the best-matching id, or "" when nothing plausible came back. A
// record whose filename already carried an id is trusted as-is. The lookup
// never touches the parser output.
func VerifyIMDb(ctx context.Context, client SuggestionClient, meta *FileMeta) string {
	if meta.IMDB != "" {
		return meta.IMDB
	}
	if client == nil || meta.Title == "" {
		return ""
	}

	suggestions, err := client.Suggest(ctx, meta.Title)
	if err != nil {
		log.WithError(err).Warnf("IMDb suggestion lookup failed for %q", meta.Title)
		return ""
	}

	if best := imdb.BestMatch(suggestions, meta.Title, meta.Year); best != nil {
		return best.ID
	}
	return ""
}
