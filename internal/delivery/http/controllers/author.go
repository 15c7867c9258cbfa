package controllers

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"BookShelf/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthorService interface {
	GetAll(ctx context.Context) ([]models.Author, error)
	GetByID(ctx context.Context, id int) (*models.Author, error)
	Create(ctx context.Context, author models.Author) (*models.Author, error)
	Update(ctx context.Context, id int, author models.Author) error
	Delete(ctx context.Context, id int) error
}

type AuthorHandler struct {
	AuthorService AuthorService
	log           logger.Log
}

func NewAuthorHandler(l logger.Log, authors AuthorService) *AuthorHandler {
	return &AuthorHandler{
		AuthorService: authors,
		log:           l,
	}
}

type authorResponse struct {
	ID        int        `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Bio       string     `json:"bio,omitempty"`
}

func toAuthorResponse(a models.Author) authorResponse {
	return authorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		BirthDate: a.BirthDate,
		Bio:       a.Bio,
	}
}

// authorRequest serves both create and update: an omitted optional field is
// written as its zero value on update, matching the full-replace semantics.
type authorRequest struct {
	FirstName string     `json:"first_name" binding:"required"`
	LastName  string     `json:"last_name" binding:"required"`
	BirthDate *time.Time `json:"birth_date"`
	Bio       string     `json:"bio"`
}

func (r authorRequest) toModel() models.Author {
	return models.Author{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Bio:       r.Bio,
	}
}

func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.AuthorService.GetAll(c.Request.Context())
	if err != nil {
		h.log.ErrorErr("error listing authors", err)
		writeInternal(c)
		return
	}

	resp := make([]authorResponse, 0, len(authors))
	for _, a := range authors {
		resp = append(resp, toAuthorResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	author, err := h.AuthorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondAuthorError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, toAuthorResponse(*author))
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var input authorRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.AuthorService.Create(c.Request.Context(), input.toModel())
	if err != nil {
		h.log.ErrorErr("error creating author", err)
		writeInternal(c)
		return
	}
	c.JSON(http.StatusCreated, toAuthorResponse(*created))
}

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input authorRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.AuthorService.Update(c.Request.Context(), id, input.toModel()); err != nil {
		h.respondAuthorError(c, err, id)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.AuthorService.Delete(c.Request.Context(), id); err != nil {
		h.respondAuthorError(c, err, id)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthorHandler) respondAuthorError(c *gin.Context, err error, id int) {
	if errors.Is(err, app_errors.ErrAuthorNotFound) {
		writeError(c, http.StatusNotFound, "Author not found.", fmt.Sprintf("Author with ID %d not found.", id))
		return
	}
	h.log.ErrorErr("error processing author", err, "author_id", id)
	writeInternal(c)
}
