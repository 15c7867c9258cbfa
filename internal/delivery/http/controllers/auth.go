package controllers

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/service/auth"
	"BookShelf/pkg/logger"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string, dateOfBirth time.Time) (uuid.UUID, error)
	DeleteByUsername(ctx context.Context, username, password string) error
	DeleteByEmail(ctx context.Context, email string) error
	ParseToken(ctx context.Context, token string) (*auth.Claims, error)
}

type AuthHandler struct {
	AuthService AuthService
	log         logger.Log
}

func NewAuthHandler(l logger.Log, auth AuthService) *AuthHandler {
	return &AuthHandler{
		AuthService: auth,
		log:         l,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.AuthService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrUserNotFound):
			writeError(c, http.StatusUnauthorized, "Incorrect username.", "User with this login does not exist.")
		case errors.Is(err, app_errors.ErrIncorrectPassword):
			writeError(c, http.StatusUnauthorized, "Incorrect password.", "Password is incorrect.")
		default:
			h.log.ErrorErr("error handling login", err)
			writeInternal(c)
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token})
}

type registerRequest struct {
	Username    string    `json:"username" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Password    string    `json:"password" binding:"required,min=6"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.AuthService.Register(c.Request.Context(), input.Username, input.Email, input.Password, input.DateOfBirth)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrUsernameTaken):
			writeError(c, http.StatusConflict, "Username already in use.", "Username is already in use.")
		case errors.Is(err, app_errors.ErrEmailTaken):
			writeError(c, http.StatusConflict, "Email already in use.", "Email is already in use.")
		default:
			h.log.ErrorErr("error handling register", err)
			writeInternal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

type deleteWithUsernameRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) DeleteWithUsername(c *gin.Context) {
	var input deleteWithUsernameRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.AuthService.DeleteByUsername(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrUserNotFound):
			writeError(c, http.StatusUnauthorized, "Incorrect username.", "User with this login does not exist.")
		case errors.Is(err, app_errors.ErrIncorrectPassword):
			writeError(c, http.StatusUnauthorized, "Incorrect password.", "Password is incorrect.")
		default:
			h.log.ErrorErr("error handling delete by username", err)
			writeInternal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

type deleteWithEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) DeleteWithEmail(c *gin.Context) {
	var input deleteWithEmailRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.AuthService.DeleteByEmail(c.Request.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrUserNotFound):
			writeError(c, http.StatusNotFound, "Incorrect email.", "User with this email does not exist.")
		default:
			h.log.ErrorErr("error handling delete by email", err)
			writeInternal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
