package postgres

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthorPostgres struct {
	db *pgxpool.Pool
}

func NewAuthorPostgres(db *pgxpool.Pool) *AuthorPostgres {
	return &AuthorPostgres{db: db}
}

func (r *AuthorPostgres) Authors(ctx context.Context) ([]models.Author, error) {
	const query = `
		SELECT id, first_name, last_name, birth_date, bio
		FROM authors
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []models.Author
	for rows.Next() {
		var a models.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthDate, &a.Bio); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *AuthorPostgres) AuthorByID(ctx context.Context, id int) (*models.Author, error) {
	const query = `
		SELECT id, first_name, last_name, birth_date, bio
		FROM authors
		WHERE id = $1
	`
	var a models.Author
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthDate, &a.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrAuthorNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AuthorPostgres) CreateAuthor(ctx context.Context, author models.Author) (*models.Author, error) {
	const query = `
		INSERT INTO authors (first_name, last_name, birth_date, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, author.FirstName, author.LastName, author.BirthDate, author.Bio).Scan(&author.ID)
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorPostgres) UpdateAuthor(ctx context.Context, author models.Author) error {
	const query = `
		UPDATE authors
		   SET first_name = $2,
		       last_name  = $3,
		       birth_date = $4,
		       bio        = $5
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, author.ID, author.FirstName, author.LastName, author.BirthDate, author.Bio)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrAuthorNotFound
	}
	return nil
}

// DeleteAuthor orphans the author's books and removes the author inside a
// single transaction, so no book is ever visible pointing at a deleted
// author.
func (r *AuthorPostgres) DeleteAuthor(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `UPDATE books SET author_id = $2 WHERE author_id = $1`, id, models.NoAuthorID); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		err = app_errors.ErrAuthorNotFound
		return err
	}

	return tx.Commit(ctx)
}
