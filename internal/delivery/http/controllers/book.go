package controllers

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"BookShelf/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BookService interface {
	GetAll(ctx context.Context) ([]models.Book, error)
	GetByID(ctx context.Context, id int) (*models.Book, error)
	Create(ctx context.Context, book models.Book) (*models.Book, error)
	Update(ctx context.Context, id int, book models.Book) error
	Delete(ctx context.Context, id int) error
}

type BookHandler struct {
	BookService BookService
	log         logger.Log
}

func NewBookHandler(l logger.Log, books BookService) *BookHandler {
	return &BookHandler{
		BookService: books,
		log:         l,
	}
}

type bookResponse struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	AuthorID int    `json:"author_id"`
}

func toBookResponse(b models.Book) bookResponse {
	return bookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Genre:    b.Genre,
		AuthorID: b.AuthorID,
	}
}

type bookRequest struct {
	Title    string `json:"title" binding:"required"`
	Genre    string `json:"genre" binding:"required"`
	AuthorID int    `json:"author_id" binding:"gte=0"`
}

func (r bookRequest) toModel() models.Book {
	return models.Book{
		Title:    r.Title,
		Genre:    r.Genre,
		AuthorID: r.AuthorID,
	}
}

func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.BookService.GetAll(c.Request.Context())
	if err != nil {
		h.log.ErrorErr("error listing books", err)
		writeInternal(c)
		return
	}

	resp := make([]bookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, toBookResponse(b))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	book, err := h.BookService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondBookError(c, err, id, 0)
		return
	}
	c.JSON(http.StatusOK, toBookResponse(*book))
}

func (h *BookHandler) Create(c *gin.Context) {
	var input bookRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.BookService.Create(c.Request.Context(), input.toModel())
	if err != nil {
		h.respondBookError(c, err, 0, input.AuthorID)
		return
	}
	c.JSON(http.StatusCreated, toBookResponse(*created))
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input bookRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.BookService.Update(c.Request.Context(), id, input.toModel()); err != nil {
		h.respondBookError(c, err, id, input.AuthorID)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.BookService.Delete(c.Request.Context(), id); err != nil {
		h.respondBookError(c, err, id, 0)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookHandler) respondBookError(c *gin.Context, err error, bookID, authorID int) {
	switch {
	case errors.Is(err, app_errors.ErrBookNotFound):
		writeError(c, http.StatusNotFound, "Book not found.", fmt.Sprintf("Book with ID %d not found.", bookID))
	case errors.Is(err, app_errors.ErrAuthorNotFound):
		writeError(c, http.StatusNotFound, "Author not found.", fmt.Sprintf("Author with ID %d not found.", authorID))
	default:
		h.log.ErrorErr("error processing book", err, "book_id", bookID)
		writeInternal(c)
	}
}
