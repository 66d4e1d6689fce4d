package usecases

import (
	"bookstore-api/entities"
	"bookstore-api/repositories"
)

type BookUseCase struct {
	BookRepo repositories.BookRepository
}

func NewBookUseCase(bookRepo repositories.BookRepository) *BookUseCase {
	return &BookUseCase{BookRepo: bookRepo}
}

// CreateBook persists a new book.
func (uc *BookUseCase) CreateBook(book *entities.Book) error {
	return uc.BookRepo.Create(book)
}

// GetBook retrieves a book by ID.
func (uc *BookUseCase) GetBook(id string) (*entities.Book, error) {
	return uc.BookRepo.GetByID(id)
}

// ListBooks retrieves a filtered, paginated page of books plus the total
// count matching the filters.
func (uc *BookUseCase) ListBooks(q repositories.BookQuery) ([]entities.Book, int64, error) {
	return uc.BookRepo.List(q)
}

// UpdateBook replaces all client-settable fields of an existing book.
func (uc *BookUseCase) UpdateBook(id string, fields entities.Book) (*entities.Book, error) {
	existing, err := uc.BookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = fields.Title
	existing.Author = fields.Author
	existing.Category = fields.Category
	existing.Price = fields.Price
	existing.Rating = fields.Rating
	existing.PublishedDate = fields.PublishedDate

	if err := uc.BookRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteBook removes an existing book.
func (uc *BookUseCase) DeleteBook(id string) error {
	if _, err := uc.BookRepo.GetByID(id); err != nil {
		return err
	}
	return uc.BookRepo.Delete(id)
}
