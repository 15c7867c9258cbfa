package app_errors

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrIncorrectPassword = errors.New("incorrect password")
var ErrUsernameTaken = errors.New("username is already in use")
var ErrEmailTaken = errors.New("email is already in use")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")
var ErrAuthorNotFound = errors.New("author not found")
var ErrBookNotFound = errors.New("book not found")
var ErrInvalidID = errors.New("id must be 0 or greater")
