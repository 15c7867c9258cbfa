package postgres

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserPostgres struct {
	db *pgxpool.Pool
}

func NewUserPostgres(db *pgxpool.Pool) *UserPostgres {
	return &UserPostgres{db: db}
}

const userColumns = `
	SELECT u.id, u.username, u.email, u.password, COALESCE(u.date_of_birth, 'epoch'::date), r.name
	FROM users u
	JOIN roles r ON u.role_id = r.id
`

func (r *UserPostgres) UserByName(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRow(ctx, userColumns+`WHERE u.username = $1`, username)
	return scanUser(row)
}

func (r *UserPostgres) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, userColumns+`WHERE u.email = $1`, email)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var role string
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.DateOfBirth, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrUserNotFound
		}
		return nil, err
	}
	user.Role = models.Role(role)
	return &user, nil
}

// CreateUser relies on the users_username_key / users_email_key constraints
// to close the race between the service's pre-checks and the insert.
func (r *UserPostgres) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password, date_of_birth, role_id)
		VALUES ($1, $2, $3, $4, (SELECT id FROM roles WHERE name = $5))
		RETURNING id
	`
	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.Password, user.DateOfBirth, string(user.Role)).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return nil, app_errors.ErrUsernameTaken
			case "users_email_key":
				return nil, app_errors.ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	user.ID = id
	return &user, nil
}

func (r *UserPostgres) DeleteUser(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrUserNotFound
	}
	return nil
}
