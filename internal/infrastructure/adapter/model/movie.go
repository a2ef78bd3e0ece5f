package model

import (
	"time"
)

// Movie represents the database model for the movie catalogue
type Movie struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UID       string    `gorm:"column:uid;uniqueIndex:idx_movies_uid;not null;size:64"`
	Title     string    `gorm:"not null;size:255;index"`
	Year      int       `gorm:"not null"`
	Released  string    `gorm:"size:64"`
	Runtime   string    `gorm:"size:64"`
	Genre     string    `gorm:"size:255"`
	Director  string    `gorm:"size:255"`
	Actors    string    `gorm:"type:text"`
	Country   string    `gorm:"size:255"`
	Poster    string    `gorm:"type:text"`
	IMDB      float64   `gorm:"column:imdb;not null"`
	Type      string    `gorm:"size:64"`
	Overview  string    `gorm:"type:text"`
	IMDBID    string    `gorm:"column:imdb_id;size:32"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Movie
func (Movie) TableName() string {
	return "movies"
}
