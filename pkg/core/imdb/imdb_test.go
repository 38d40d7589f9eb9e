package imdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediadex/mediatag/pkg/core/imdb"
)

func TestSuggest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/suggestion/titles/i/inception.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"d": [
				{"l": "Inception", "id": "tt1375666", "y": 2010, "q": "feature"},
				{"l": "Inception: The Series", "id": "tt9999999", "yr": "2012-2014", "q": "TV series"},
				{"l": "Leonardo DiCaprio", "id": "nm0000138"},
				{"l": "Inception Game", "id": "tt1234567", "q": "video game"}
			]
		}`))
	}))
	defer server.Close()

	old := imdb.SetBaseURLForTesting(server.URL)
	defer imdb.SetBaseURLForTesting(old)

	got, err := imdb.NewClient().Suggest(context.Background(), "Inception")
	require.NoError(t, err)

	// The person entry and the video game must be filtered out; the TV
	// series year comes from the start of its yr range.
	require.Len(t, got, 2)
	assert.Equal(t, imdb.Suggestion{ID: "tt1375666", Title: "Inception", Year: 2010}, got[0])
	assert.Equal(t, imdb.Suggestion{ID: "tt9999999", Title: "Inception: The Series", Year: 2012}, got[1])
}

func TestSuggestEmptyQuery(t *testing.T) {
	got, err := imdb.NewClient().Suggest(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggestNonOKStatusIsNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	old := imdb.SetBaseURLForTesting(server.URL)
	defer imdb.SetBaseURLForTesting(old)

	got, err := imdb.NewClient().Suggest(context.Background(), "whatever")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggestBadPayloadIsNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	old := imdb.SetBaseURLForTesting(server.URL)
	defer imdb.SetBaseURLForTesting(old)

	got, err := imdb.NewClient().Suggest(context.Background(), "whatever")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBestMatch(t *testing.T) {
	suggestions := []imdb.Suggestion{
		{ID: "tt0000001", Title: "The Movie", Year: 1999},
		{ID: "tt0000002", Title: "The Movie", Year: 2010},
		{ID: "tt0000003", Title: "Another Movie", Year: 2010},
	}

	t.Run("year agreement wins", func(t *testing.T) {
		best := imdb.BestMatch(suggestions, "The Movie", 2010)
		require.NotNil(t, best)
		assert.Equal(t, "tt0000002", best.ID)
	})

	t.Run("title only when year unknown", func(t *testing.T) {
		best := imdb.BestMatch(suggestions, "another movie", 0)
		require.NotNil(t, best)
		assert.Equal(t, "tt0000003", best.ID)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, imdb.BestMatch(nil, "anything", 2020))
	})
}
