package movie

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
)

// ReplaceMovie overwrites every attribute of the movie addressed by uid
func (u *UseCase) ReplaceMovie(ctx context.Context, uid string, attrs entity.MovieAttributes) (*entity.Movie, error) {
	movie, err := u.movieRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := movie.Replace(attrs, u.timeProvider); err != nil {
		return nil, err
	}

	return u.save(ctx, movie)
}

// PatchMovie changes only the provided attributes
func (u *UseCase) PatchMovie(ctx context.Context, uid string, input usecase.PatchMovieInput) (*entity.Movie, error) {
	movie, err := u.movieRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		return nil, errs.ErrInvalidJSON
	}

	attrs := movie.MovieAttributes
	applyString(&attrs.Title, input.Title)
	applyString(&attrs.Released, input.Released)
	applyString(&attrs.Runtime, input.Runtime)
	applyString(&attrs.Genre, input.Genre)
	applyString(&attrs.Director, input.Director)
	applyString(&attrs.Actors, input.Actors)
	applyString(&attrs.Country, input.Country)
	if input.Poster != nil {
		attrs.Poster = strings.TrimSpace(*input.Poster)
	}
	applyString(&attrs.Type, input.Type)
	applyString(&attrs.Overview, input.Overview)
	applyString(&attrs.IMDBID, input.IMDBID)
	if input.Year != nil {
		attrs.Year = *input.Year
	}
	if input.IMDB != nil {
		attrs.IMDB = *input.IMDB
	}

	if err := movie.Amend(attrs, u.timeProvider); err != nil {
		return nil, err
	}

	return u.save(ctx, movie)
}

func (u *UseCase) save(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	if err := u.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}

	u.invalidate(ctx)
	u.logger.Info("Movie updated", map[string]any{
		"movie_id": movie.ID,
		"uid":      movie.UID,
	})
	return movie, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = entity.SanitizeText(*src)
	}
}
