package models

import "time"

type Author struct {
	ID        int
	FirstName string
	LastName  string
	BirthDate *time.Time
	Bio       string
}
