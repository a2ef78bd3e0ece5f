package repository

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// MovieRepository implements persistence.MovieRepository using GORM
type MovieRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	retry           RetryConfig
}

// NewMovieRepository creates a new MovieRepository instance
func NewMovieRepository(db *gorm.DB, logger coreport.Logger) *MovieRepository {
	return &MovieRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		retry:           DefaultRetryConfig(),
	}
}

func movieToEntity(m *model.Movie) *entity.Movie {
	return &entity.Movie{
		ID: m.ID,
		MovieAttributes: entity.MovieAttributes{
			UID:      m.UID,
			Title:    m.Title,
			Year:     m.Year,
			Released: m.Released,
			Runtime:  m.Runtime,
			Genre:    m.Genre,
			Director: m.Director,
			Actors:   m.Actors,
			Country:  m.Country,
			Poster:   m.Poster,
			IMDB:     m.IMDB,
			Type:     m.Type,
			Overview: m.Overview,
			IMDBID:   m.IMDBID,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// attributeColumns returns the writable columns of a movie
func attributeColumns(a entity.MovieAttributes) map[string]any {
	return map[string]any{
		"title":    a.Title,
		"year":     a.Year,
		"released": a.Released,
		"runtime":  a.Runtime,
		"genre":    a.Genre,
		"director": a.Director,
		"actors":   a.Actors,
		"country":  a.Country,
		"poster":   a.Poster,
		"imdb":     a.IMDB,
		"type":     a.Type,
		"overview": a.Overview,
		"imdb_id":  a.IMDBID,
	}
}

func (r *MovieRepository) handleDatabaseError(operation string, identifier any, err error) error {
	return handleDatabaseError(r.logger, r.errorClassifier, movieErrors, operation, identifier, err)
}

// Create saves a new movie
func (r *MovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	a := movie.MovieAttributes
	movieModel := model.Movie{
		UID:       a.UID,
		Title:     a.Title,
		Year:      a.Year,
		Released:  a.Released,
		Runtime:   a.Runtime,
		Genre:     a.Genre,
		Director:  a.Director,
		Actors:    a.Actors,
		Country:   a.Country,
		Poster:    a.Poster,
		IMDB:      a.IMDB,
		Type:      a.Type,
		Overview:  a.Overview,
		IMDBID:    a.IMDBID,
		CreatedAt: movie.CreatedAt,
		UpdatedAt: movie.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&movieModel).Error; err != nil {
		return r.handleDatabaseError("creating movie", a.UID, err)
	}

	movie.ID = movieModel.ID
	r.logger.Info("Movie created successfully", map[string]any{
		"movie_id": movie.ID,
		"uid":      a.UID,
	})
	return nil
}

// Update persists every attribute of an existing movie
func (r *MovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	columns := attributeColumns(movie.MovieAttributes)
	columns["updated_at"] = movie.UpdatedAt

	result := r.db.WithContext(ctx).Model(&model.Movie{}).
		Where("uid = ?", movie.UID).
		Updates(columns)

	if result.Error != nil {
		return r.handleDatabaseError("updating movie", movie.UID, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(movieErrors, movie.UID)
	}
	return nil
}

// GetByUID retrieves a movie by its external uid
func (r *MovieRepository) GetByUID(ctx context.Context, uid string) (*entity.Movie, error) {
	var movieModel model.Movie
	err := RetryOnTransientError(ctx, r.retry, r.errorClassifier, r.logger, func() error {
		return r.db.WithContext(ctx).Where("uid = ?", uid).First(&movieModel).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("getting movie", uid, err)
	}
	return movieToEntity(&movieModel), nil
}

// List runs the listing described by query and returns the page with the matching total
func (r *MovieRepository) List(ctx context.Context, query entity.MovieQuery) ([]*entity.Movie, int64, error) {
	scoped := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Model(&model.Movie{})
		if query.Search != "" {
			tx = tx.Where("title ILIKE ?", "%"+likeEscaper.Replace(query.Search)+"%")
		}
		return tx
	}

	var total int64
	var models []model.Movie
	err := RetryOnTransientError(ctx, r.retry, r.errorClassifier, r.logger, func() error {
		if err := scoped().Count(&total).Error; err != nil {
			return err
		}

		tx := scoped()
		if query.Sort != "" {
			tx = tx.Order(clause.OrderByColumn{
				Column: clause.Column{Name: string(query.Sort)},
				Desc:   query.Descending,
			})
		}
		// id breaks ties so pages do not overlap
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
		if query.PerPage > 0 {
			tx = tx.Limit(query.PerPage).Offset(query.Offset())
		}
		return tx.Find(&models).Error
	})
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing movies", query.Search, err)
	}

	movies := make([]*entity.Movie, 0, len(models))
	for i := range models {
		movies = append(movies, movieToEntity(&models[i]))
	}

	r.logger.Debug("Movies listed", map[string]any{
		"count":    len(movies),
		"total":    total,
		"per_page": query.PerPage,
		"page":     query.Page,
	})
	return movies, total, nil
}

// DeleteByUID removes a movie
func (r *MovieRepository) DeleteByUID(ctx context.Context, uid string) error {
	result := r.db.WithContext(ctx).Where("uid = ?", uid).Delete(&model.Movie{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting movie", uid, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(movieErrors, uid)
	}

	r.logger.Info("Movie deleted", map[string]any{"uid": uid})
	return nil
}
