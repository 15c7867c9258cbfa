package memory

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store keeps the whole catalog in process memory behind one mutex. The lock
// spans each operation, which is what makes register's check-then-insert and
// the delete-then-orphan sequence single units of work without a database.
type Store struct {
	mu sync.RWMutex

	users   map[uuid.UUID]models.User
	authors map[int]models.Author
	books   map[int]models.Book

	nextAuthorID int
	nextBookID   int
}

func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]models.User),
		authors:      make(map[int]models.Author),
		books:        make(map[int]models.Book),
		nextAuthorID: 1,
		nextBookID:   1,
	}
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return nil, app_errors.ErrUsernameTaken
		}
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, app_errors.ErrEmailTaken
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user
	return &user, nil
}

func (s *Store) UserByName(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, app_errors.ErrUserNotFound
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, app_errors.ErrUserNotFound
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return app_errors.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *Store) Authors(ctx context.Context) ([]models.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := make([]models.Author, 0, len(s.authors))
	for _, a := range s.authors {
		authors = append(authors, a)
	}
	return authors, nil
}

func (s *Store) AuthorByID(ctx context.Context, id int) (*models.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.authors[id]
	if !ok {
		return nil, app_errors.ErrAuthorNotFound
	}
	return &a, nil
}

func (s *Store) CreateAuthor(ctx context.Context, author models.Author) (*models.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author.ID = s.nextAuthorID
	s.nextAuthorID++
	s.authors[author.ID] = author
	return &author, nil
}

func (s *Store) UpdateAuthor(ctx context.Context, author models.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[author.ID]; !ok {
		return app_errors.ErrAuthorNotFound
	}
	s.authors[author.ID] = author
	return nil
}

func (s *Store) DeleteAuthor(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[id]; !ok {
		return app_errors.ErrAuthorNotFound
	}
	for bookID, b := range s.books {
		if b.AuthorID == id {
			b.AuthorID = models.NoAuthorID
			s.books[bookID] = b
		}
	}
	delete(s.authors, id)
	return nil
}

func (s *Store) Books(ctx context.Context) ([]models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	return books, nil
}

func (s *Store) BookByID(ctx context.Context, id int) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return nil, app_errors.ErrBookNotFound
	}
	return &b, nil
}

func (s *Store) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book.ID = s.nextBookID
	s.nextBookID++
	s.books[book.ID] = book
	return &book, nil
}

func (s *Store) UpdateBook(ctx context.Context, book models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[book.ID]; !ok {
		return app_errors.ErrBookNotFound
	}
	s.books[book.ID] = book
	return nil
}

func (s *Store) DeleteBook(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return app_errors.ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}
