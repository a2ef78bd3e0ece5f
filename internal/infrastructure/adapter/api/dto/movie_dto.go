package dto

import (
	"time"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
)

// MovieRequest is the body of POST /v1/movies and PUT /v1/movies/:uid
type MovieRequest struct {
	UID      string  `json:"uid"`
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Released string  `json:"released"`
	Runtime  string  `json:"runtime"`
	Genre    string  `json:"genre"`
	Director string  `json:"director"`
	Actors   string  `json:"actors"`
	Country  string  `json:"country"`
	Poster   string  `json:"poster"`
	IMDB     float64 `json:"imdb"`
	Type     string  `json:"type"`
	Overview string  `json:"overview"`
	IMDBID   string  `json:"imdb_id"`
}

// ToAttributes converts the request into movie attributes
func (r MovieRequest) ToAttributes() entity.MovieAttributes {
	return entity.MovieAttributes{
		UID:      r.UID,
		Title:    r.Title,
		Year:     r.Year,
		Released: r.Released,
		Runtime:  r.Runtime,
		Genre:    r.Genre,
		Director: r.Director,
		Actors:   r.Actors,
		Country:  r.Country,
		Poster:   r.Poster,
		IMDB:     r.IMDB,
		Type:     r.Type,
		Overview: r.Overview,
		IMDBID:   r.IMDBID,
	}
}

// PatchMovieRequest is the body of PATCH /v1/movies/:uid
type PatchMovieRequest struct {
	Title    *string  `json:"title"`
	Year     *int     `json:"year"`
	Released *string  `json:"released"`
	Runtime  *string  `json:"runtime"`
	Genre    *string  `json:"genre"`
	Director *string  `json:"director"`
	Actors   *string  `json:"actors"`
	Country  *string  `json:"country"`
	Poster   *string  `json:"poster"`
	IMDB     *float64 `json:"imdb"`
	Type     *string  `json:"type"`
	Overview *string  `json:"overview"`
	IMDBID   *string  `json:"imdb_id"`
}

// ToInput converts the request into use case input
func (r PatchMovieRequest) ToInput() usecase.PatchMovieInput {
	return usecase.PatchMovieInput{
		Title:    r.Title,
		Year:     r.Year,
		Released: r.Released,
		Runtime:  r.Runtime,
		Genre:    r.Genre,
		Director: r.Director,
		Actors:   r.Actors,
		Country:  r.Country,
		Poster:   r.Poster,
		IMDB:     r.IMDB,
		Type:     r.Type,
		Overview: r.Overview,
		IMDBID:   r.IMDBID,
	}
}

// MovieResponse is the public view of a movie
type MovieResponse struct {
	ID        uint64    `json:"id"`
	UID       string    `json:"uid"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Released  string    `json:"released"`
	Runtime   string    `json:"runtime"`
	Genre     string    `json:"genre"`
	Director  string    `json:"director"`
	Actors    string    `json:"actors"`
	Country   string    `json:"country"`
	Poster    string    `json:"poster"`
	IMDB      float64   `json:"imdb"`
	Type      string    `json:"type"`
	Overview  string    `json:"overview"`
	IMDBID    string    `json:"imdb_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMovieResponse(m *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:        m.ID,
		UID:       m.UID,
		Title:     m.Title,
		Year:      m.Year,
		Released:  m.Released,
		Runtime:   m.Runtime,
		Genre:     m.Genre,
		Director:  m.Director,
		Actors:    m.Actors,
		Country:   m.Country,
		Poster:    m.Poster,
		IMDB:      m.IMDB,
		Type:      m.Type,
		Overview:  m.Overview,
		IMDBID:    m.IMDBID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewMovieListResponse returns the projection when the page carries one, the full movies otherwise
func NewMovieListResponse(page *entity.MoviePage) any {
	if page.Projection != nil {
		return page.Projection
	}
	out := make([]MovieResponse, 0, len(page.Movies))
	for _, m := range page.Movies {
		out = append(out, NewMovieResponse(m))
	}
	return out
}
