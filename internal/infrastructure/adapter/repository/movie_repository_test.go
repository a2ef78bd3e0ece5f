package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var movieColumns = []string{
	"id", "uid", "title", "year", "released", "runtime", "genre", "director", "actors",
	"country", "poster", "imdb", "type", "overview", "imdb_id", "created_at", "updated_at",
}

func movieRow(rows *sqlmock.Rows, id int, uid, title string, year int) *sqlmock.Rows {
	return rows.AddRow(id, uid, title, year, "", "", "", "", "", "", "", 7.5, "movie", "", "", fixedNow, fixedNow)
}

func newMovieRepo(t *testing.T) (*MovieRepository, sqlmock.Sqlmock) {
	db, mock := dbtest.NewMockDB(t)
	return NewMovieRepository(db, logger.NewNoopLogger()), mock
}

func TestMovieRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newMovieRepo(t)
	movie := &entity.Movie{MovieAttributes: entity.MovieAttributes{UID: "tt1", Title: "Heat"}, CreatedAt: fixedNow, UpdatedAt: fixedNow}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "movies"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_movies_uid"})

	err := repo.Create(context.Background(), movie)
	assert.ErrorIs(t, err, errs.ErrDuplicateMovie)
}

func TestMovieRepository_GetByUID(t *testing.T) {
	repo, mock := newMovieRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" WHERE uid = $1`)).
		WillReturnRows(movieRow(sqlmock.NewRows(movieColumns), 1, "tt1", "Heat", 1995))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" WHERE uid = $1`)).
		WillReturnRows(sqlmock.NewRows(movieColumns))

	movie, err := repo.GetByUID(context.Background(), "tt1")
	require.NoError(t, err)
	assert.Equal(t, "Heat", movie.Title)
	assert.Equal(t, 1995, movie.Year)
	assert.Equal(t, 7.5, movie.IMDB)

	_, err = repo.GetByUID(context.Background(), "missing")
	assert.ErrorIs(t, err, errs.ErrMovieNotFound)
}

func TestMovieRepository_List_PagedSortedSearched(t *testing.T) {
	repo, mock := newMovieRepo(t)
	query := entity.MovieQuery{PerPage: 2, Page: 2, Sort: entity.MovieField("year"), Descending: true, Search: "50%"}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "movies" WHERE title ILIKE $1`)).
		WithArgs(`%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" WHERE title ILIKE $1 ORDER BY "year" DESC,"id" LIMIT`)).
		WillReturnRows(movieRow(sqlmock.NewRows(movieColumns), 3, "tt3", "50% Off", 1980))

	movies, total, err := repo.List(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, movies, 1)
	assert.Equal(t, "tt3", movies[0].UID)
}

func TestMovieRepository_List_All(t *testing.T) {
	repo, mock := newMovieRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "movies"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" ORDER BY "id"`)).
		WillReturnRows(movieRow(movieRow(sqlmock.NewRows(movieColumns), 1, "tt1", "Heat", 1995), 2, "tt2", "Ran", 1985))

	movies, total, err := repo.List(context.Background(), entity.MovieQuery{Page: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, movies, 2)
}

func TestMovieRepository_UpdateAndDelete(t *testing.T) {
	repo, mock := newMovieRepo(t)
	movie := &entity.Movie{MovieAttributes: entity.MovieAttributes{UID: "tt1", Title: "Heat"}, UpdatedAt: fixedNow}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "movies" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "movies" WHERE uid = $1`)).
		WithArgs("tt1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Update(context.Background(), movie))
	assert.ErrorIs(t, repo.DeleteByUID(context.Background(), "tt1"), errs.ErrMovieNotFound)
}
