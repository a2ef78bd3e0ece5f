package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// MovieRepository defines the storage operations for movies
type MovieRepository interface {
	// Create saves a new movie
	//
	// Possible errors:
	// - ErrDuplicateMovie: If a movie with the same uid exists
	Create(ctx context.Context, movie *entity.Movie) error

	// Update persists every attribute of an existing movie
	//
	// Possible errors:
	// - ErrMovieNotFound: If the movie doesn't exist
	Update(ctx context.Context, movie *entity.Movie) error

	// GetByUID retrieves a movie by its external uid
	//
	// Possible errors:
	// - ErrMovieNotFound: If the movie doesn't exist
	GetByUID(ctx context.Context, uid string) (*entity.Movie, error)

	// List runs a single paged, sorted and searched query. The query must be validated.
	// It returns the page together with the total number of matching rows.
	List(ctx context.Context, query entity.MovieQuery) ([]*entity.Movie, int64, error)

	// DeleteByUID removes a movie
	//
	// Possible errors:
	// - ErrMovieNotFound: If the movie doesn't exist
	DeleteByUID(ctx context.Context, uid string) error
}
