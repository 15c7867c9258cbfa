package postgres

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPostgres struct {
	db *pgxpool.Pool
}

func NewBookPostgres(db *pgxpool.Pool) *BookPostgres {
	return &BookPostgres{db: db}
}

func (r *BookPostgres) Books(ctx context.Context) ([]models.Book, error) {
	const query = `
		SELECT id, title, genre, author_id
		FROM books
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Genre, &b.AuthorID); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookPostgres) BookByID(ctx context.Context, id int) (*models.Book, error) {
	const query = `
		SELECT id, title, genre, author_id
		FROM books
		WHERE id = $1
	`
	var b models.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Genre, &b.AuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookPostgres) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	const query = `
		INSERT INTO books (title, genre, author_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, book.Title, book.Genre, book.AuthorID).Scan(&book.ID)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookPostgres) UpdateBook(ctx context.Context, book models.Book) error {
	const query = `
		UPDATE books
		   SET title     = $2,
		       genre     = $3,
		       author_id = $4
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, book.ID, book.Title, book.Genre, book.AuthorID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrBookNotFound
	}
	return nil
}

func (r *BookPostgres) DeleteBook(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrBookNotFound
	}
	return nil
}
