package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Paging headers set on paged movie listings
const (
	TotalCountHeader = "X-Total-Count"
	PageHeader       = "X-Page"
	PerPageHeader    = "X-Per-Page"
)

// MovieHandler handles movie catalogue HTTP requests
type MovieHandler struct {
	movieUseCase usecase.MovieUseCase
	logger       coreport.Logger
}

// NewMovieHandler creates a new movie handler instance
func NewMovieHandler(movieUseCase usecase.MovieUseCase, logger coreport.Logger) *MovieHandler {
	return &MovieHandler{
		movieUseCase: movieUseCase,
		logger:       logger,
	}
}

// Create handles POST /v1/movies
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.MovieRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid movie payload", err)
		return
	}

	if _, err := h.movieUseCase.CreateMovie(c.Request.Context(), req.ToAttributes()); err != nil {
		respondError(c, h.logger, "Error creating movie", err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Movie added successfully"})
}

// List handles GET /v1/movies?per_page=&page=&sort=&filter=&search=
func (h *MovieHandler) List(c *gin.Context) {
	query, err := parseMovieQuery(c)
	if err != nil {
		respondError(c, h.logger, "Invalid movie query", err)
		return
	}

	page, err := h.movieUseCase.ListMovies(c.Request.Context(), query)
	if err != nil {
		respondError(c, h.logger, "Error listing movies", err)
		return
	}

	if page.PerPage > 0 {
		c.Header(TotalCountHeader, strconv.FormatInt(page.Total, 10))
		c.Header(PageHeader, strconv.Itoa(page.Page))
		c.Header(PerPageHeader, strconv.Itoa(page.PerPage))
	}
	c.JSON(http.StatusOK, dto.NewMovieListResponse(page))
}

// Get handles GET /v1/movies/:uid
func (h *MovieHandler) Get(c *gin.Context) {
	movie, err := h.movieUseCase.GetMovie(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondError(c, h.logger, "Error getting movie", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMovieResponse(movie))
}

// Replace handles PUT /v1/movies/:uid. The path uid wins over any uid in the body.
func (h *MovieHandler) Replace(c *gin.Context) {
	uid := c.Param("uid")

	var req dto.MovieRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid movie payload", err)
		return
	}
	req.UID = uid

	if _, err := h.movieUseCase.ReplaceMovie(c.Request.Context(), uid, req.ToAttributes()); err != nil {
		respondError(c, h.logger, "Error replacing movie", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Movie updated successfully"})
}

// Patch handles PATCH /v1/movies/:uid
func (h *MovieHandler) Patch(c *gin.Context) {
	var req dto.PatchMovieRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid movie payload", err)
		return
	}

	if _, err := h.movieUseCase.PatchMovie(c.Request.Context(), c.Param("uid"), req.ToInput()); err != nil {
		respondError(c, h.logger, "Error updating movie", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Movie updated successfully"})
}

// Delete handles DELETE /v1/movies/:uid
func (h *MovieHandler) Delete(c *gin.Context) {
	if err := h.movieUseCase.DeleteMovie(c.Request.Context(), c.Param("uid")); err != nil {
		respondError(c, h.logger, "Error deleting movie", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Movie deleted successfully."})
}

func parseMovieQuery(c *gin.Context) (entity.MovieQuery, error) {
	var query entity.MovieQuery

	if raw, ok := c.GetQuery("per_page"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			return query, fmt.Errorf("%w: per_page must be between 1 and %d", domainerr.ErrInvalidPageSize, entity.MaxMoviesPerPage)
		}
		query.PerPage = n
	}

	if raw, ok := c.GetQuery("page"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			return query, fmt.Errorf("%w: page must be a positive integer", domainerr.ErrInvalidPageSize)
		}
		query.Page = n
	}

	if raw, ok := c.GetQuery("sort"); ok {
		field, desc, err := entity.ParseMovieSort(raw)
		if err != nil {
			return query, err
		}
		query.Sort = field
		query.Descending = desc
	}

	if raw, ok := c.GetQuery("filter"); ok {
		raw = strings.TrimSpace(raw)
		if !entity.IsValidMovieField(raw) {
			return query, fmt.Errorf("%w: %q", domainerr.ErrInvalidFilterField, raw)
		}
		query.Filter = entity.MovieField(raw)
	}

	query.Search = c.Query("search")
	return query, nil
}
