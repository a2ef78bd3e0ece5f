package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/payment-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovie(t *testing.T) {
	fixedTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid movie", func(t *testing.T) {
		movie, err := NewMovie(MovieAttributes{UID: "tt0111161", Title: "The Shawshank <Redemption>", Year: 1994, IMDB: 9.3}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "tt0111161", movie.UID)
		assert.Equal(t, "The Shawshank &lt;Redemption&gt;", movie.Title)
		assert.Equal(t, 1994, movie.Year)
		assert.Equal(t, fixedTime, movie.CreatedAt)
	})

	t.Run("Rejects invalid attributes", func(t *testing.T) {
		testCases := []struct {
			name  string
			attrs MovieAttributes
		}{
			{"missing uid", MovieAttributes{Title: "x"}},
			{"missing title", MovieAttributes{UID: "x"}},
			{"year too early", MovieAttributes{UID: "x", Title: "x", Year: 1899}},
			{"year too late", MovieAttributes{UID: "x", Title: "x", Year: 2101}},
			{"imdb out of range", MovieAttributes{UID: "x", Title: "x", IMDB: 11}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				movie, err := NewMovie(tc.attrs, mockTime)
				assert.Nil(t, movie)
				assert.ErrorIs(t, err, errs.ErrInvalidInput)
			})
		}
	})
}

func TestMovieReplaceKeepsUID(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Unix(100, 0)).Maybe()

	movie := &Movie{ID: 4, MovieAttributes: MovieAttributes{UID: "m-1", Title: "Old"}}
	err := movie.Replace(MovieAttributes{UID: "m-2", Title: "New", Genre: "Drama"}, mockTime)

	require.NoError(t, err)
	assert.Equal(t, "m-1", movie.UID)
	assert.Equal(t, "New", movie.Title)
	assert.Equal(t, "Drama", movie.Genre)
	assert.Equal(t, uint64(4), movie.ID)
}

func TestMovieQuery(t *testing.T) {
	t.Run("Validate defaults page", func(t *testing.T) {
		q := MovieQuery{PerPage: 10}
		require.NoError(t, q.Validate())
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 0, q.Offset())
	})

	t.Run("Offset advances with page", func(t *testing.T) {
		q := MovieQuery{PerPage: 10, Page: 3}
		require.NoError(t, q.Validate())
		assert.Equal(t, 20, q.Offset())
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		q := MovieQuery{PerPage: 101}
		assert.ErrorIs(t, q.Validate(), errs.ErrInvalidPageSize)

		q = MovieQuery{PerPage: 5, Sort: "password"}
		assert.ErrorIs(t, q.Validate(), errs.ErrInvalidSortField)

		q = MovieQuery{PerPage: 5, Filter: "1; DROP TABLE movies"}
		assert.ErrorIs(t, q.Validate(), errs.ErrInvalidFilterField)
	})

	t.Run("Cache keys", func(t *testing.T) {
		key, ok := MovieQuery{}.CacheKey()
		assert.True(t, ok)
		assert.Equal(t, "movies:index", key)

		key, ok = MovieQuery{PerPage: 10, Page: 2}.CacheKey()
		assert.True(t, ok)
		assert.Equal(t, "movies:page:10:2", key)

		key, ok = MovieQuery{PerPage: 10, Page: 1, Sort: MovieFieldYear, Descending: true}.CacheKey()
		assert.True(t, ok)
		assert.Equal(t, "movies:page:10:1:sort:-year", key)

		key, ok = MovieQuery{PerPage: 10, Page: 1, Filter: MovieFieldGenre}.CacheKey()
		assert.True(t, ok)
		assert.Equal(t, "movies:page:10:1:filter:genre", key)

		_, ok = MovieQuery{PerPage: 10, Search: "star"}.CacheKey()
		assert.False(t, ok)

		assert.Equal(t, "movies:uid:tt1", MovieCacheKey("tt1"))
	})

	t.Run("Parse sort", func(t *testing.T) {
		field, desc, err := ParseMovieSort("-imdb")
		require.NoError(t, err)
		assert.Equal(t, MovieFieldIMDB, field)
		assert.True(t, desc)

		_, _, err = ParseMovieSort("secret")
		assert.ErrorIs(t, err, errs.ErrInvalidSortField)
	})
}

func TestProject(t *testing.T) {
	movies := []*Movie{
		{MovieAttributes: MovieAttributes{UID: "a", Genre: "Drama"}},
		{MovieAttributes: MovieAttributes{UID: "b", Genre: "Comedy"}},
	}

	out := Project(movies, MovieFieldGenre)

	require.Len(t, out, 2)
	assert.Equal(t, map[string]any{"uid": "a", "genre": "Drama"}, out[0])
	assert.Equal(t, map[string]any{"uid": "b", "genre": "Comedy"}, out[1])
	assert.Len(t, MovieFields(), 17)
}
