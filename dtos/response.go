package dtos

import "bookstore-api/entities"

// BookResponse is the API-facing shape of a book. Audit timestamps are
// deliberately excluded.
type BookResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	PublishedDate string  `json:"publishedDate"`
}

// BookFromEntity maps a persisted book onto its response shape.
func BookFromEntity(b *entities.Book) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Category:      b.Category,
		Price:         b.Price,
		Rating:        b.Rating,
		PublishedDate: b.PublishedDate.Format("2006-01-02"),
	}
}

// BooksFromEntities maps a slice of books. It always returns a non-nil slice
// so list responses serialize as [] rather than null.
func BooksFromEntities(books []entities.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, BookFromEntity(&books[i]))
	}
	return out
}

// BookListResponse is the paginated list envelope for GET /api/books.
type BookListResponse struct {
	TotalItems  int64          `json:"totalItems"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Books       []BookResponse `json:"books"`
}

// AuthResponse carries the outcome of signup and login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
