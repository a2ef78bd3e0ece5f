package movie

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/payment-api/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/payment-api/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo  *persistencemocks.MockMovieRepository
	cache *coremocks.MockCache
	uc    *UseCase
}

func newFixture(t *testing.T) *fixture {
	repo := persistencemocks.NewMockMovieRepository(t)
	cache := coremocks.NewMockCache(t)
	clock := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)
	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return &fixture{
		repo:  repo,
		cache: cache,
		uc:    NewMovieUseCase(repo, cache, 0, clock, logger),
	}
}

func sampleMovies() []*entity.Movie {
	return []*entity.Movie{
		{ID: 1, MovieAttributes: entity.MovieAttributes{UID: "tt1", Title: "Alien", Year: 1979, Genre: "Horror"}},
		{ID: 2, MovieAttributes: entity.MovieAttributes{UID: "tt2", Title: "Heat", Year: 1995, Genre: "Crime"}},
	}
}

func TestListMovies(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache miss reads the database and fills the cache", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		query := entity.MovieQuery{PerPage: 2, Page: 1, Sort: entity.MovieFieldYear}
		f.cache.EXPECT().Get(mock.Anything, "movies:page:2:1:sort:year").Return(nil, coreport.ErrCacheMiss).Once()
		f.repo.EXPECT().List(mock.Anything, query).Return(sampleMovies(), int64(7), nil).Once()
		f.cache.EXPECT().Set(mock.Anything, "movies:page:2:1:sort:year", mock.Anything, DefaultCacheTTL).Return(nil).Once()

		// Execute
		page, err := f.uc.ListMovies(ctx, query)

		// Assertions
		require.NoError(t, err)
		assert.Len(t, page.Movies, 2)
		assert.Equal(t, int64(7), page.Total)
		assert.Nil(t, page.Projection)
	})

	t.Run("Cache hit skips the database", func(t *testing.T) {
		f := newFixture(t)
		cached, err := json.Marshal(&entity.MoviePage{Movies: sampleMovies(), Total: 2, Page: 1})
		require.NoError(t, err)
		f.cache.EXPECT().Get(mock.Anything, "movies:index").Return(cached, nil).Once()

		page, err := f.uc.ListMovies(ctx, entity.MovieQuery{})

		require.NoError(t, err)
		require.Len(t, page.Movies, 2)
		assert.Equal(t, "Alien", page.Movies[0].Title)
	})

	t.Run("Cache failure falls back to the database", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(mock.Anything, "movies:index").Return(nil, errors.New("connection refused")).Once()
		f.repo.EXPECT().List(mock.Anything, mock.Anything).Return(sampleMovies(), int64(2), nil).Once()
		f.cache.EXPECT().Set(mock.Anything, "movies:index", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

		page, err := f.uc.ListMovies(ctx, entity.MovieQuery{})

		require.NoError(t, err)
		assert.Len(t, page.Movies, 2)
	})

	t.Run("Search is never cached", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().List(mock.Anything, mock.MatchedBy(func(q entity.MovieQuery) bool {
			return q.Search == "ali"
		})).Return(sampleMovies()[:1], int64(1), nil).Once()

		page, err := f.uc.ListMovies(ctx, entity.MovieQuery{PerPage: 10, Search: " ali "})

		require.NoError(t, err)
		assert.Len(t, page.Movies, 1)
	})

	t.Run("Filter projects a single field", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(mock.Anything, "movies:page:5:1:filter:genre").Return(nil, coreport.ErrCacheMiss).Once()
		f.repo.EXPECT().List(mock.Anything, mock.Anything).Return(sampleMovies(), int64(2), nil).Once()
		f.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		page, err := f.uc.ListMovies(ctx, entity.MovieQuery{PerPage: 5, Filter: entity.MovieFieldGenre})

		require.NoError(t, err)
		assert.Nil(t, page.Movies)
		assert.Equal(t, []map[string]any{
			{"uid": "tt1", "genre": "Horror"},
			{"uid": "tt2", "genre": "Crime"},
		}, page.Projection)
	})

	t.Run("Invalid sort field", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.ListMovies(ctx, entity.MovieQuery{PerPage: 5, Sort: "password"})

		assert.ErrorIs(t, err, errs.ErrInvalidSortField)
	})
}

func TestGetMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("Read through", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(mock.Anything, "movies:uid:tt1").Return(nil, coreport.ErrCacheMiss).Once()
		f.repo.EXPECT().GetByUID(mock.Anything, "tt1").Return(sampleMovies()[0], nil).Once()
		f.cache.EXPECT().Set(mock.Anything, "movies:uid:tt1", mock.Anything, mock.Anything).Return(nil).Once()

		movie, err := f.uc.GetMovie(ctx, "tt1")

		require.NoError(t, err)
		assert.Equal(t, "Alien", movie.Title)
	})

	t.Run("Not found is not cached", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(mock.Anything, "movies:uid:nope").Return(nil, coreport.ErrCacheMiss).Once()
		f.repo.EXPECT().GetByUID(mock.Anything, "nope").Return(nil, errs.ErrMovieNotFound).Once()

		_, err := f.uc.GetMovie(ctx, "nope")

		assert.ErrorIs(t, err, errs.ErrMovieNotFound)
	})
}

func TestMovieWritesInvalidateCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.cache.EXPECT().DeletePrefix(mock.Anything, "movies:").Return(nil).Once()

		movie, err := f.uc.CreateMovie(ctx, entity.MovieAttributes{UID: "tt9", Title: "Ran"})

		require.NoError(t, err)
		assert.Equal(t, "tt9", movie.UID)
	})

	t.Run("Duplicate uid leaves the cache alone", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateMovie).Once()

		_, err := f.uc.CreateMovie(ctx, entity.MovieAttributes{UID: "tt9", Title: "Ran"})

		assert.ErrorIs(t, err, errs.ErrDuplicateMovie)
	})

	t.Run("Patch keeps untouched attributes", func(t *testing.T) {
		f := newFixture(t)
		stored := &entity.Movie{ID: 1, MovieAttributes: entity.MovieAttributes{UID: "tt1", Title: "Tom &amp; Jerry", Year: 1940}}
		year := 1941
		f.repo.EXPECT().GetByUID(mock.Anything, "tt1").Return(stored, nil).Once()
		f.repo.EXPECT().Update(mock.Anything, stored).Return(nil).Once()
		f.cache.EXPECT().DeletePrefix(mock.Anything, "movies:").Return(nil).Once()

		movie, err := f.uc.PatchMovie(ctx, "tt1", usecase.PatchMovieInput{Year: &year})

		require.NoError(t, err)
		assert.Equal(t, "Tom &amp; Jerry", movie.Title)
		assert.Equal(t, 1941, movie.Year)
	})

	t.Run("Replace validates", func(t *testing.T) {
		f := newFixture(t)
		stored := &entity.Movie{ID: 1, MovieAttributes: entity.MovieAttributes{UID: "tt1", Title: "Alien"}}
		f.repo.EXPECT().GetByUID(mock.Anything, "tt1").Return(stored, nil).Once()

		_, err := f.uc.ReplaceMovie(ctx, "tt1", entity.MovieAttributes{Title: ""})

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Delete", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().DeleteByUID(mock.Anything, "tt1").Return(nil).Once()
		f.cache.EXPECT().DeletePrefix(mock.Anything, "movies:").Return(errors.New("redis down")).Once()

		assert.NoError(t, f.uc.DeleteMovie(ctx, "tt1"))
	})
}
