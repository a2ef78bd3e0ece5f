package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
)

// MovieField names a sortable and filterable movie column
type MovieField string

const (
	MovieFieldID        MovieField = "id"
	MovieFieldUID       MovieField = "uid"
	MovieFieldTitle     MovieField = "title"
	MovieFieldYear      MovieField = "year"
	MovieFieldReleased  MovieField = "released"
	MovieFieldRuntime   MovieField = "runtime"
	MovieFieldGenre     MovieField = "genre"
	MovieFieldDirector  MovieField = "director"
	MovieFieldActors    MovieField = "actors"
	MovieFieldCountry   MovieField = "country"
	MovieFieldPoster    MovieField = "poster"
	MovieFieldIMDB      MovieField = "imdb"
	MovieFieldType      MovieField = "type"
	MovieFieldOverview  MovieField = "overview"
	MovieFieldIMDBID    MovieField = "imdb_id"
	MovieFieldCreatedAt MovieField = "created_at"
	MovieFieldUpdatedAt MovieField = "updated_at"
)

var movieFields = []MovieField{
	MovieFieldID, MovieFieldUID, MovieFieldTitle, MovieFieldYear, MovieFieldReleased,
	MovieFieldRuntime, MovieFieldGenre, MovieFieldDirector, MovieFieldActors, MovieFieldCountry,
	MovieFieldPoster, MovieFieldIMDB, MovieFieldType, MovieFieldOverview, MovieFieldIMDBID,
	MovieFieldCreatedAt, MovieFieldUpdatedAt,
}

// MovieFields lists every field a movie listing can be sorted or filtered by
func MovieFields() []MovieField {
	out := make([]MovieField, len(movieFields))
	copy(out, movieFields)
	return out
}

// IsValidMovieField reports whether name is a known movie field
func IsValidMovieField(name string) bool {
	for _, f := range movieFields {
		if string(f) == name {
			return true
		}
	}
	return false
}

// Page size bounds for movie listings
const (
	MaxMoviesPerPage = 100
)

// MovieQuery describes a movie listing. A zero PerPage returns every movie.
type MovieQuery struct {
	PerPage    int
	Page       int
	Sort       MovieField
	Descending bool
	Filter     MovieField
	Search     string
}

// ParseMovieSort reads "field" or "-field" for descending order
func ParseMovieSort(raw string) (MovieField, bool, error) {
	raw = strings.TrimSpace(raw)
	desc := strings.HasPrefix(raw, "-")
	name := strings.TrimPrefix(raw, "-")
	if !IsValidMovieField(name) {
		return "", false, fmt.Errorf("%w: %q", errs.ErrInvalidSortField, name)
	}
	return MovieField(name), desc, nil
}

// Validate checks paging bounds and field names
func (q *MovieQuery) Validate() error {
	if q.PerPage < 0 || q.PerPage > MaxMoviesPerPage {
		return fmt.Errorf("%w: per_page must be between 1 and %d", errs.ErrInvalidPageSize, MaxMoviesPerPage)
	}
	if q.Page < 0 {
		return fmt.Errorf("%w: page must be positive", errs.ErrInvalidPageSize)
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Sort != "" && !IsValidMovieField(string(q.Sort)) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidSortField, q.Sort)
	}
	if q.Filter != "" && !IsValidMovieField(string(q.Filter)) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidFilterField, q.Filter)
	}
	q.Search = strings.TrimSpace(q.Search)
	return nil
}

// Offset returns the number of rows to skip
func (q MovieQuery) Offset() int {
	if q.PerPage == 0 || q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}

// CacheKey returns the read-through cache key, or false when the listing is not cached
func (q MovieQuery) CacheKey() (string, bool) {
	if q.Search != "" {
		return "", false
	}
	if q.PerPage == 0 {
		if q.Sort != "" || q.Filter != "" {
			return "", false
		}
		return MovieCachePrefix + "index", true
	}

	page := q.Page
	if page == 0 {
		page = 1
	}
	key := fmt.Sprintf("%spage:%d:%d", MovieCachePrefix, q.PerPage, page)
	if q.Sort != "" {
		order := ""
		if q.Descending {
			order = "-"
		}
		key += ":sort:" + order + string(q.Sort)
	}
	if q.Filter != "" {
		key += ":filter:" + string(q.Filter)
	}
	return key, true
}

// MovieCachePrefix namespaces every cached movie entry
const MovieCachePrefix = "movies:"

// MovieCacheKey returns the cache key of a single movie
func MovieCacheKey(uid string) string {
	return MovieCachePrefix + "uid:" + uid
}

// MoviePage is one page of a movie listing. Projection is set instead of Movies
// when the query filters on a single field.
type MoviePage struct {
	Movies     []*Movie
	Projection []map[string]any
	Total      int64
	Page       int
	PerPage    int
}

// Project reduces movies to their uid plus field
func Project(movies []*Movie, field MovieField) []map[string]any {
	out := make([]map[string]any, 0, len(movies))
	for _, m := range movies {
		out = append(out, map[string]any{
			string(MovieFieldUID): m.UID,
			string(field):         m.Field(field),
		})
	}
	return out
}

// Field returns the value of a single field
func (m *Movie) Field(f MovieField) any {
	switch f {
	case MovieFieldID:
		return m.ID
	case MovieFieldUID:
		return m.UID
	case MovieFieldTitle:
		return m.Title
	case MovieFieldYear:
		return m.Year
	case MovieFieldReleased:
		return m.Released
	case MovieFieldRuntime:
		return m.Runtime
	case MovieFieldGenre:
		return m.Genre
	case MovieFieldDirector:
		return m.Director
	case MovieFieldActors:
		return m.Actors
	case MovieFieldCountry:
		return m.Country
	case MovieFieldPoster:
		return m.Poster
	case MovieFieldIMDB:
		return m.IMDB
	case MovieFieldType:
		return m.Type
	case MovieFieldOverview:
		return m.Overview
	case MovieFieldIMDBID:
		return m.IMDBID
	case MovieFieldCreatedAt:
		return m.CreatedAt
	case MovieFieldUpdatedAt:
		return m.UpdatedAt
	default:
		return nil
	}
}
