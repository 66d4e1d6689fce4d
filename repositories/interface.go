package repositories

import (
	"errors"

	"bookstore-api/entities"
)

// ErrNotFound is returned when a requested record does not exist. The gorm
// implementations translate gorm.ErrRecordNotFound into it so callers never
// depend on the ORM.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
}

// BookQuery describes the filters, sorting and pagination of a list call.
// SortBy is matched against an allow-list by the repository; values outside
// it leave the result unsorted.
type BookQuery struct {
	Author   string
	Category string
	Title    string
	Rating   *float64
	SortBy   string
	Order    string
	Limit    int
	Offset   int
}

type BookRepository interface {
	Create(book *entities.Book) error
	GetByID(id string) (*entities.Book, error)
	List(q BookQuery) ([]entities.Book, int64, error)
	Update(book *entities.Book) error
	Delete(id string) error
}
