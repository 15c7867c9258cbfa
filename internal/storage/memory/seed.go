package memory

import (
	"BookShelf/internal/models"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedSampleData loads the starter catalog for memory mode: the same two
// authors and books the postgres migrations seed, plus an admin account
// (admin / admin123).
func (s *Store) SeedSampleData() error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	orwellBorn := time.Date(1903, 6, 25, 0, 0, 0, 0, time.UTC)
	leeBorn := time.Date(1926, 4, 28, 0, 0, 0, 0, time.UTC)

	s.mu.Lock()
	defer s.mu.Unlock()

	adminID := uuid.New()
	s.users[adminID] = models.User{
		ID:          adminID,
		Username:    "admin",
		Email:       "admin@gmail.com",
		Password:    string(hash),
		DateOfBirth: time.Date(2005, 8, 21, 0, 0, 0, 0, time.UTC),
		Role:        models.RoleAdmin,
	}

	s.authors[1] = models.Author{ID: 1, FirstName: "George", LastName: "Orwell", BirthDate: &orwellBorn, Bio: "Author of 1984 and Animal Farm"}
	s.authors[2] = models.Author{ID: 2, FirstName: "Harper", LastName: "Lee", BirthDate: &leeBorn, Bio: "Author of To Kill a Mockingbird"}
	s.nextAuthorID = 3

	s.books[1] = models.Book{ID: 1, Title: "1984", Genre: "Dystopian", AuthorID: 1}
	s.books[2] = models.Book{ID: 2, Title: "To Kill a Mockingbird", Genre: "Classic", AuthorID: 2}
	s.nextBookID = 3

	return nil
}
