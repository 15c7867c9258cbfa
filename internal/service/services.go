package service

import (
	"BookShelf/internal/service/auth"
	"BookShelf/internal/service/catalog"
)

type Collection struct {
	*auth.AuthService
	AuthorService *catalog.AuthorService
	BookService   *catalog.BookService
}
