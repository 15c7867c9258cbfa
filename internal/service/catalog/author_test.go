package catalog_test

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"BookShelf/internal/service/catalog"
	"BookShelf/internal/storage/memory"
	"BookShelf/pkg/logger"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (*catalog.AuthorService, *catalog.BookService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	log := logger.New("local")
	authors := catalog.NewAuthorService(log, store)
	books := catalog.NewBookService(log, store, authors)
	return authors, books, store
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthorGetAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	authors, _, _ := newCatalog(t)

	anna, err := authors.Create(ctx, models.Author{FirstName: "Anna", LastName: "Jackson", BirthDate: date(1976, 2, 13)})
	require.NoError(t, err)
	tom, err := authors.Create(ctx, models.Author{FirstName: "Tom", LastName: "Holland", BirthDate: date(1987, 8, 4)})
	require.NoError(t, err)

	all, err := authors.GetAll(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []models.Author{*anna, *tom}, all)
}

func TestAuthorCreateAndGetByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	authors, _, _ := newCatalog(t)

	created, err := authors.Create(ctx, models.Author{
		FirstName: "George",
		LastName:  "Orwell",
		BirthDate: date(1903, 6, 25),
		Bio:       "Author of 1984 and Animal Farm",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := authors.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestAuthorGetByID_NotFound(t *testing.T) {
	t.Parallel()
	authors, _, _ := newCatalog(t)

	_, err := authors.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, app_errors.ErrAuthorNotFound)
}

func TestAuthorUpdate_FullReplace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	authors, _, _ := newCatalog(t)

	created, err := authors.Create(ctx, models.Author{
		FirstName: "Harper",
		LastName:  "Lee",
		BirthDate: date(1926, 4, 28),
		Bio:       "Author of To Kill a Mockingbird",
	})
	require.NoError(t, err)

	// The update carries no birth date and no bio: both must end up empty.
	err = authors.Update(ctx, created.ID, models.Author{FirstName: "Nelle", LastName: "Lee"})
	require.NoError(t, err)

	got, err := authors.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Nelle", got.FirstName)
	require.Equal(t, "Lee", got.LastName)
	require.Nil(t, got.BirthDate)
	require.Empty(t, got.Bio)
}

func TestAuthorUpdate_NotFound(t *testing.T) {
	t.Parallel()
	authors, _, _ := newCatalog(t)

	err := authors.Update(context.Background(), 7, models.Author{FirstName: "X", LastName: "Y"})
	require.ErrorIs(t, err, app_errors.ErrAuthorNotFound)
}

func TestAuthorDelete_OrphansBooks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	authors, books, _ := newCatalog(t)

	author, err := authors.Create(ctx, models.Author{FirstName: "Anna", LastName: "Jackson"})
	require.NoError(t, err)
	other, err := authors.Create(ctx, models.Author{FirstName: "Tom", LastName: "Holland"})
	require.NoError(t, err)

	orphanCandidate, err := books.Create(ctx, models.Book{Title: "Gone", Genre: "Drama", AuthorID: author.ID})
	require.NoError(t, err)
	untouched, err := books.Create(ctx, models.Book{Title: "Staying", Genre: "Drama", AuthorID: other.ID})
	require.NoError(t, err)

	require.NoError(t, authors.Delete(ctx, author.ID))

	_, err = authors.GetByID(ctx, author.ID)
	require.ErrorIs(t, err, app_errors.ErrAuthorNotFound)

	// The deleted author's book survives with the sentinel reference.
	got, err := books.GetByID(ctx, orphanCandidate.ID)
	require.NoError(t, err)
	require.Equal(t, models.NoAuthorID, got.AuthorID)

	kept, err := books.GetByID(ctx, untouched.ID)
	require.NoError(t, err)
	require.Equal(t, other.ID, kept.AuthorID)
}

func TestAuthorDelete_NotFound(t *testing.T) {
	t.Parallel()
	authors, _, _ := newCatalog(t)

	require.ErrorIs(t, authors.Delete(context.Background(), 99), app_errors.ErrAuthorNotFound)
}

func TestAuthorExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	authors, _, _ := newCatalog(t)

	created, err := authors.Create(ctx, models.Author{FirstName: "A", LastName: "B"})
	require.NoError(t, err)

	ok, err := authors.Exists(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = authors.Exists(ctx, created.ID+1)
	require.NoError(t, err)
	require.False(t, ok)
}
