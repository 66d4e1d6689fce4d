// Package dtos holds the request and response shapes of the API, keeping the
// wire format decoupled from the persisted entities. Each request type knows
// how to validate itself; each response type is built by a mapping function.
package dtos

import (
	"time"

	"bookstore-api/entities"
	"bookstore-api/validation"
)

// dateLayouts are the accepted publishedDate formats.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// SignupRequest is the payload for POST /api/users/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignupRequest) Validate() *validation.Validator {
	v := validation.New()
	v.Check(r.Email != "", "email", "email is required")
	v.Check(r.Email == "" || validation.Matches(r.Email, validation.EmailRX), "email", "email must be a valid email address")
	v.Check(r.Password != "", "password", "password is required")
	v.Check(r.Password == "" || len(r.Password) >= 6, "password", "password must be at least 6 characters long")
	return v
}

// LoginRequest is the payload for POST /api/users/login. Unlike signup it
// applies no minimum length to the password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() *validation.Validator {
	v := validation.New()
	v.Check(r.Email != "", "email", "email is required")
	v.Check(r.Email == "" || validation.Matches(r.Email, validation.EmailRX), "email", "email must be a valid email address")
	v.Check(r.Password != "", "password", "password is required")
	return v
}

// BookRequest is the payload for creating a book and for the full-replace
// update. Price and Rating are pointers so that an absent field can be told
// apart from a zero value.
type BookRequest struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Category      string   `json:"category"`
	Price         *float64 `json:"price"`
	Rating        *float64 `json:"rating"`
	PublishedDate string   `json:"publishedDate"`
}

func (r *BookRequest) Validate() *validation.Validator {
	v := validation.New()
	v.Check(r.Title != "", "title", "title is required")
	v.Check(r.Author != "", "author", "author is required")
	v.Check(r.Category != "", "category", "category is required")

	if r.Price == nil {
		v.AddError("price", "price is required")
	} else {
		v.Check(*r.Price > 0, "price", "price must be a positive number")
		v.Check(validation.HasPrecision(*r.Price, 2), "price", "price must have at most 2 decimal places")
	}

	if r.Rating == nil {
		v.AddError("rating", "rating is required")
	} else {
		v.Check(*r.Rating >= 0 && *r.Rating <= 5, "rating", "rating must be between 0 and 5")
		v.Check(validation.HasPrecision(*r.Rating, 1), "rating", "rating must have at most 1 decimal place")
	}

	if r.PublishedDate == "" {
		v.AddError("publishedDate", "publishedDate is required")
	} else if _, err := parseDate(r.PublishedDate); err != nil {
		v.AddError("publishedDate", "publishedDate must be a valid date")
	}
	return v
}

// ToEntity maps a validated request onto a Book entity. It must only be
// called after Validate has passed.
func (r *BookRequest) ToEntity() entities.Book {
	date, _ := parseDate(r.PublishedDate)
	return entities.Book{
		Title:         r.Title,
		Author:        r.Author,
		Category:      r.Category,
		Price:         *r.Price,
		Rating:        *r.Rating,
		PublishedDate: date,
	}
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
