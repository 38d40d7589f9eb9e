// Package imdb queries the unofficial IMDb suggestion endpoint to confirm a
// parsed title/year. The endpoint is undocumented and flaky, so every
// transient fault degrades to an empty result instead of an error the caller
// has to branch on.
package imdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// baseURL is a variable so tests can point the client at a local server.
var baseURL = "https://v3.sg.media-imdb.com"

// SetBaseURLForTesting overrides the endpoint and returns the previous value
// so tests can restore it.
func SetBaseURLForTesting(newURL string) string {
	old := baseURL
	baseURL = newURL
	return old
}

// Suggestion is one candidate title from the suggestion endpoint.
type Suggestion struct {
	ID    string // e.g. "tt1375666"
	Title string
	Year  int
}

// suggestionResponse mirrors the endpoint's terse JSON shape.
type suggestionResponse struct {
	Data []suggestionItem `json:"d"`
}

type suggestionItem struct {
	Label      string `json:"l"`
	ID         string `json:"id"`
	Year       int    `json:"y,omitempty"`
	YearRange  string `json:"yr,omitempty"` // "YYYY" or "YYYY-YYYY", sometimes used instead of y
	ResultType string `json:"q,omitempty"`  // "feature", "TV series", ...
}

// year falls back to the start of the yr range when y is absent.
func (item *suggestionItem) year() int {
	if item.Year != 0 {
		return item.Year
	}
	if parts := strings.Split(item.YearRange, "-"); len(parts) > 0 {
		if y, err := strconv.Atoi(parts[0]); err == nil {
			return y
		}
	}
	return 0
}

// Client talks to the IMDb suggestion endpoint.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a suggestion client with a sane timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Suggest queries the endpoint for a title. Network faults, non-200 statuses
// and malformed payloads are logged and produce an empty slice; the only
// returned error is a failure to build the request.
func (c *Client) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []Suggestion{}, nil
	}

	// URL shape: <base>/suggestion/titles/<first letter>/<query>.json
	apiURL := fmt.Sprintf("%s/suggestion/titles/%s/%s.json",
		baseURL, string(query[0]), url.PathEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create imdb suggestion request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("IMDb suggestion request failed")
		return []Suggestion{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("IMDb suggestion request returned %s", resp.Status)
		return []Suggestion{}, nil
	}

	var payload suggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Failed to decode IMDb suggestion response")
		return []Suggestion{}, nil
	}

	out := make([]Suggestion, 0, len(payload.Data))
	for _, item := range payload.Data {
		// Keep only real titles with a tt id; the endpoint also returns
		// people and games.
		likelyTitle := item.ResultType == "feature" || item.ResultType == "TV series" || item.ResultType == ""
		if item.Label == "" || !strings.HasPrefix(item.ID, "tt") || !likelyTitle {
			continue
		}
		out = append(out, Suggestion{ID: item.ID, Title: item.Label, Year: item.year()})
	}
	return out, nil
}

// BestMatch scores suggestions against a parsed title/year and returns the
// highest-scoring one, or nil for an empty list. Year agreement outweighs
// title agreement since the title string is the query itself.
func BestMatch(suggestions []Suggestion, title string, year int) *Suggestion {
	best := -1
	bestScore := -1
	for i, s := range suggestions {
		score := 0
		if year != 0 && s.Year == year {
			score += 2
		}
		if strings.EqualFold(strings.TrimSpace(s.Title), strings.TrimSpace(title)) {
			score++
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return &suggestions[best]
}
