package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// PatchMovieInput carries a partial movie update
type PatchMovieInput struct {
	Title    *string
	Year     *int
	Released *string
	Runtime  *string
	Genre    *string
	Director *string
	Actors   *string
	Country  *string
	Poster   *string
	IMDB     *float64
	Type     *string
	Overview *string
	IMDBID   *string
}

// IsEmpty reports whether the patch changes nothing
func (in PatchMovieInput) IsEmpty() bool {
	return in.Title == nil && in.Year == nil && in.Released == nil && in.Runtime == nil &&
		in.Genre == nil && in.Director == nil && in.Actors == nil && in.Country == nil &&
		in.Poster == nil && in.IMDB == nil && in.Type == nil && in.Overview == nil && in.IMDBID == nil
}

// MovieUseCase defines movie catalogue operations
type MovieUseCase interface {
	CreateMovie(ctx context.Context, attrs entity.MovieAttributes) (*entity.Movie, error)
	// ListMovies answers a paged listing, through the cache when the query is cacheable
	ListMovies(ctx context.Context, query entity.MovieQuery) (*entity.MoviePage, error)
	GetMovie(ctx context.Context, uid string) (*entity.Movie, error)
	ReplaceMovie(ctx context.Context, uid string, attrs entity.MovieAttributes) (*entity.Movie, error)
	PatchMovie(ctx context.Context, uid string, input PatchMovieInput) (*entity.Movie, error)
	DeleteMovie(ctx context.Context, uid string) error
}
