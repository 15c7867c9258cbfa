package models

// NoAuthorID marks a book whose author was deleted. Books are never removed
// together with their author, the reference is reset instead.
const NoAuthorID = 0

type Book struct {
	ID       int
	Title    string
	Genre    string
	AuthorID int
}
