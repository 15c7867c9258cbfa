package catalog

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"BookShelf/pkg/logger"
	"context"
	"errors"
)

type AuthorRepo interface {
	Authors(ctx context.Context) ([]models.Author, error)
	AuthorByID(ctx context.Context, id int) (*models.Author, error)
	CreateAuthor(ctx context.Context, author models.Author) (*models.Author, error)
	UpdateAuthor(ctx context.Context, author models.Author) error
	// DeleteAuthor resets author_id to models.NoAuthorID on every book owned
	// by the author and removes the author, in one transaction.
	DeleteAuthor(ctx context.Context, id int) error
}

type AuthorService struct {
	log  logger.Log
	repo AuthorRepo
}

func NewAuthorService(l logger.Log, repo AuthorRepo) *AuthorService {
	return &AuthorService{
		log:  l,
		repo: repo,
	}
}

func (s *AuthorService) GetAll(ctx context.Context) ([]models.Author, error) {
	return s.repo.Authors(ctx)
}

func (s *AuthorService) GetByID(ctx context.Context, id int) (*models.Author, error) {
	return s.repo.AuthorByID(ctx, id)
}

func (s *AuthorService) Create(ctx context.Context, author models.Author) (*models.Author, error) {
	return s.repo.CreateAuthor(ctx, author)
}

// Update overwrites every mutable field. A field the caller left empty is
// written as empty, this is a full replace, not a merge.
func (s *AuthorService) Update(ctx context.Context, id int, author models.Author) error {
	author.ID = id
	return s.repo.UpdateAuthor(ctx, author)
}

// Delete orphans the author's books instead of cascading. Books survive
// their author with author_id reset to the sentinel.
func (s *AuthorService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteAuthor(ctx, id)
}

// Exists is the existence check BookService leans on for its foreign-key
// invariant.
func (s *AuthorService) Exists(ctx context.Context, id int) (bool, error) {
	_, err := s.repo.AuthorByID(ctx, id)
	if err != nil {
		if errors.Is(err, app_errors.ErrAuthorNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
