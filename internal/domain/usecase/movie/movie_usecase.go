package movie

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/persistence"
)

// DefaultCacheTTL is how long listings stay cached
const DefaultCacheTTL = coreport.Hour

// UseCase handles the movie catalogue with a read-through cache
type UseCase struct {
	movieRepo    persistence.MovieRepository
	cache        coreport.Cache
	cacheTTL     coreport.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewMovieUseCase creates a new movie UseCase. A non-positive ttl selects DefaultCacheTTL.
func NewMovieUseCase(
	movieRepo persistence.MovieRepository,
	cache coreport.Cache,
	cacheTTL coreport.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &UseCase{
		movieRepo:    movieRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListMovies answers a listing from the cache when possible
func (u *UseCase) ListMovies(ctx context.Context, query entity.MovieQuery) (*entity.MoviePage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key, cacheable := query.CacheKey()
	if cacheable {
		var page entity.MoviePage
		if u.readCache(ctx, key, &page) {
			return &page, nil
		}
	}

	movies, total, err := u.movieRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	page := &entity.MoviePage{
		Total:   total,
		Page:    query.Page,
		PerPage: query.PerPage,
	}
	if query.Filter != "" {
		page.Projection = entity.Project(movies, query.Filter)
	} else {
		page.Movies = movies
	}

	if cacheable {
		u.writeCache(ctx, key, page)
	}
	return page, nil
}

// GetMovie returns a movie by uid
func (u *UseCase) GetMovie(ctx context.Context, uid string) (*entity.Movie, error) {
	key := entity.MovieCacheKey(uid)

	var cached entity.Movie
	if u.readCache(ctx, key, &cached) {
		return &cached, nil
	}

	movie, err := u.movieRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	u.writeCache(ctx, key, movie)
	return movie, nil
}

// CreateMovie validates and stores a new movie
func (u *UseCase) CreateMovie(ctx context.Context, attrs entity.MovieAttributes) (*entity.Movie, error) {
	movie, err := entity.NewMovie(attrs, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	u.invalidate(ctx)
	u.logger.Info("Movie created", map[string]any{
		"movie_id": movie.ID,
		"uid":      movie.UID,
	})
	return movie, nil
}

// DeleteMovie removes a movie
func (u *UseCase) DeleteMovie(ctx context.Context, uid string) error {
	if err := u.movieRepo.DeleteByUID(ctx, uid); err != nil {
		return err
	}

	u.invalidate(ctx)
	u.logger.Info("Movie deleted", map[string]any{
		"uid": uid,
	})
	return nil
}

func (u *UseCase) readCache(ctx context.Context, key string, dst any) bool {
	data, err := u.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, coreport.ErrCacheMiss) {
			u.logger.Warn("Movie cache read failed", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		u.logger.Warn("Discarding undecodable movie cache entry", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return true
}

func (u *UseCase) writeCache(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		u.logger.Warn("Failed to encode movie cache entry", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	if err := u.cache.Set(ctx, key, data, u.cacheTTL); err != nil {
		u.logger.Warn("Movie cache write failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// invalidate drops every cached listing and movie
func (u *UseCase) invalidate(ctx context.Context) {
	if err := u.cache.DeletePrefix(ctx, entity.MovieCachePrefix); err != nil {
		u.logger.Warn("Movie cache invalidation failed", map[string]any{
			"error": err.Error(),
		})
	}
}
