package auth

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"BookShelf/pkg/logger"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UserByName(ctx context.Context, username string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type AuthService struct {
	log        logger.Log
	jwtManager *JWTManager
	userRepo   UserRepo
}

func NewAuthService(l logger.Log, manager *JWTManager, repo UserRepo) *AuthService {
	return &AuthService{
		log:        l,
		jwtManager: manager,
		userRepo:   repo,
	}
}

// Login verifies the password against the stored hash and returns a signed
// token. No store writes happen on login.
func (u *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.userRepo.UserByName(ctx, username)
	if err != nil {
		return "", err
	}

	if !checkPasswordHash(password, user.Password) {
		return "", app_errors.ErrIncorrectPassword
	}

	return u.jwtManager.Generate(user.ID, user.Username, user.Role)
}

// Register creates a user with the default role. Username and email are
// checked independently so the caller learns which one is taken; the repo's
// unique constraints close the race between the checks and the insert.
func (u *AuthService) Register(ctx context.Context, username, email, password string, dateOfBirth time.Time) (uuid.UUID, error) {
	if _, err := u.userRepo.UserByName(ctx, username); err == nil {
		return uuid.Nil, app_errors.ErrUsernameTaken
	} else if !errors.Is(err, app_errors.ErrUserNotFound) {
		return uuid.Nil, err
	}

	if _, err := u.userRepo.UserByEmail(ctx, email); err == nil {
		return uuid.Nil, app_errors.ErrEmailTaken
	} else if !errors.Is(err, app_errors.ErrUserNotFound) {
		return uuid.Nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return uuid.Nil, err
	}

	created, err := u.userRepo.CreateUser(ctx, models.User{
		Username:    username,
		Email:       email,
		Password:    hash,
		DateOfBirth: dateOfBirth,
		Role:        models.DefaultRole,
	})
	if err != nil {
		return uuid.Nil, err
	}

	return created.ID, nil
}

// DeleteByUsername removes an account after verifying its password.
func (u *AuthService) DeleteByUsername(ctx context.Context, username, password string) error {
	user, err := u.userRepo.UserByName(ctx, username)
	if err != nil {
		return err
	}

	if !checkPasswordHash(password, user.Password) {
		return app_errors.ErrIncorrectPassword
	}

	return u.userRepo.DeleteUser(ctx, user.ID)
}

// DeleteByEmail removes an account without a password check. Administrative
// path, see the route guard discussion in DESIGN.md.
func (u *AuthService) DeleteByEmail(ctx context.Context, email string) error {
	user, err := u.userRepo.UserByEmail(ctx, email)
	if err != nil {
		return err
	}

	return u.userRepo.DeleteUser(ctx, user.ID)
}

func (u *AuthService) ParseToken(ctx context.Context, token string) (*Claims, error) {
	return u.jwtManager.Parse(token)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
