package catalog

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"BookShelf/pkg/logger"
	"context"
)

type BookRepo interface {
	Books(ctx context.Context) ([]models.Book, error)
	BookByID(ctx context.Context, id int) (*models.Book, error)
	CreateBook(ctx context.Context, book models.Book) (*models.Book, error)
	UpdateBook(ctx context.Context, book models.Book) error
	DeleteBook(ctx context.Context, id int) error
}

// authorChecker is what BookService needs from AuthorService.
type authorChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type BookService struct {
	log     logger.Log
	repo    BookRepo
	authors authorChecker
}

func NewBookService(l logger.Log, repo BookRepo, authors authorChecker) *BookService {
	return &BookService{
		log:     l,
		repo:    repo,
		authors: authors,
	}
}

func (s *BookService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.repo.Books(ctx)
}

func (s *BookService) GetByID(ctx context.Context, id int) (*models.Book, error) {
	return s.repo.BookByID(ctx, id)
}

// Create persists a book only if its author exists. The check goes through
// AuthorService rather than duplicating the lookup here.
func (s *BookService) Create(ctx context.Context, book models.Book) (*models.Book, error) {
	ok, err := s.authors.Exists(ctx, book.AuthorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, app_errors.ErrAuthorNotFound
	}

	return s.repo.CreateBook(ctx, book)
}

// Update re-validates the author reference only when it actually changes.
func (s *BookService) Update(ctx context.Context, id int, book models.Book) error {
	current, err := s.repo.BookByID(ctx, id)
	if err != nil {
		return err
	}

	if book.AuthorID != current.AuthorID {
		ok, err := s.authors.Exists(ctx, book.AuthorID)
		if err != nil {
			return err
		}
		if !ok {
			return app_errors.ErrAuthorNotFound
		}
	}

	book.ID = id
	return s.repo.UpdateBook(ctx, book)
}

func (s *BookService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteBook(ctx, id)
}
