package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
)

// Release year bounds accepted for a movie
const (
	MinMovieYear = 1900
	MaxMovieYear = 2100
	MaxIMDBScore = 10
)

// MovieAttributes holds the writable attributes of a movie
type MovieAttributes struct {
	UID      string
	Title    string
	Year     int
	Released string
	Runtime  string
	Genre    string
	Director string
	Actors   string
	Country  string
	Poster   string
	IMDB     float64
	Type     string
	Overview string
	IMDBID   string
}

// Movie is a catalogue entry
type Movie struct {
	ID uint64
	MovieAttributes
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks required fields and ranges
func (a MovieAttributes) Validate() error {
	if strings.TrimSpace(a.UID) == "" {
		return errs.NewValidationError("uid", "is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return errs.NewValidationError("title", "is required")
	}
	if a.Year != 0 && (a.Year < MinMovieYear || a.Year > MaxMovieYear) {
		return errs.NewValidationError("year", "must be between 1900 and 2100")
	}
	if a.IMDB < 0 || a.IMDB > MaxIMDBScore {
		return errs.NewValidationError("imdb", "must be between 0 and 10")
	}
	return nil
}

// Sanitized returns a copy with every text attribute escaped
func (a MovieAttributes) Sanitized() MovieAttributes {
	a.UID = strings.TrimSpace(a.UID)
	a.Title = SanitizeText(a.Title)
	a.Released = SanitizeText(a.Released)
	a.Runtime = SanitizeText(a.Runtime)
	a.Genre = SanitizeText(a.Genre)
	a.Director = SanitizeText(a.Director)
	a.Actors = SanitizeText(a.Actors)
	a.Country = SanitizeText(a.Country)
	a.Poster = strings.TrimSpace(a.Poster)
	a.Type = SanitizeText(a.Type)
	a.Overview = SanitizeText(a.Overview)
	a.IMDBID = SanitizeText(a.IMDBID)
	return a
}

// NewMovie validates and sanitizes attrs into a new movie
func NewMovie(attrs MovieAttributes, timeProvider coreport.TimeProvider) (*Movie, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Movie{
		MovieAttributes: attrs.Sanitized(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Replace overwrites every attribute. The uid of the stored movie is kept.
func (m *Movie) Replace(attrs MovieAttributes, timeProvider coreport.TimeProvider) error {
	if attrs.UID == "" {
		attrs.UID = m.UID
	}
	if err := attrs.Validate(); err != nil {
		return err
	}
	uid := m.UID
	m.MovieAttributes = attrs.Sanitized()
	m.UID = uid
	m.UpdatedAt = timeProvider.Now()
	return nil
}

// Amend applies attrs whose text is already sanitized. The uid is kept.
func (m *Movie) Amend(attrs MovieAttributes, timeProvider coreport.TimeProvider) error {
	attrs.UID = m.UID
	if err := attrs.Validate(); err != nil {
		return err
	}
	m.MovieAttributes = attrs
	m.UpdatedAt = timeProvider.Now()
	return nil
}
