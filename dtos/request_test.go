package dtos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func validBookRequest() BookRequest {
	return BookRequest{
		Title:         "The Hobbit",
		Author:        "J.R.R. Tolkien",
		Category:      "Fantasy",
		Price:         floatPtr(14.99),
		Rating:        floatPtr(4.9),
		PublishedDate: "1937-09-21",
	}
}

func TestBookRequestValidateAccepts(t *testing.T) {
	req := validBookRequest()
	assert.True(t, req.Validate().Valid())

	req.PublishedDate = "1937-09-21T00:00:00Z"
	assert.True(t, req.Validate().Valid(), "RFC3339 dates are accepted too")

	req = validBookRequest()
	req.Rating = floatPtr(0)
	assert.True(t, req.Validate().Valid(), "rating 0 is within range")

	req.Rating = floatPtr(5)
	assert.True(t, req.Validate().Valid(), "rating 5 is within range")
}

func TestBookRequestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookRequest)
		field  string
	}{
		{"empty title", func(r *BookRequest) { r.Title = "" }, "title"},
		{"empty author", func(r *BookRequest) { r.Author = "" }, "author"},
		{"empty category", func(r *BookRequest) { r.Category = "" }, "category"},
		{"missing price", func(r *BookRequest) { r.Price = nil }, "price"},
		{"zero price", func(r *BookRequest) { r.Price = floatPtr(0) }, "price"},
		{"negative price", func(r *BookRequest) { r.Price = floatPtr(-9.99) }, "price"},
		{"sub-cent price", func(r *BookRequest) { r.Price = floatPtr(10.999) }, "price"},
		{"missing rating", func(r *BookRequest) { r.Rating = nil }, "rating"},
		{"rating above 5", func(r *BookRequest) { r.Rating = floatPtr(5.1) }, "rating"},
		{"rating below 0", func(r *BookRequest) { r.Rating = floatPtr(-0.1) }, "rating"},
		{"rating too precise", func(r *BookRequest) { r.Rating = floatPtr(4.55) }, "rating"},
		{"missing date", func(r *BookRequest) { r.PublishedDate = "" }, "publishedDate"},
		{"bad date", func(r *BookRequest) { r.PublishedDate = "yesterday" }, "publishedDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookRequest()
			tt.mutate(&req)

			v := req.Validate()
			require.False(t, v.Valid())
			assert.Contains(t, v.Errors, tt.field)
		})
	}
}

func TestBookRequestToEntity(t *testing.T) {
	req := validBookRequest()
	require.True(t, req.Validate().Valid())

	book := req.ToEntity()
	assert.Equal(t, "The Hobbit", book.Title)
	assert.Equal(t, "J.R.R. Tolkien", book.Author)
	assert.Equal(t, "Fantasy", book.Category)
	assert.Equal(t, 14.99, book.Price)
	assert.Equal(t, 4.9, book.Rating)
	assert.Equal(t, time.Date(1937, 9, 21, 0, 0, 0, 0, time.UTC), book.PublishedDate)
}

func TestSignupRequestValidate(t *testing.T) {
	req := SignupRequest{Email: "reader@example.com", Password: "secret-pass"}
	assert.True(t, req.Validate().Valid())

	req = SignupRequest{Email: "not-an-email", Password: "secret-pass"}
	v := req.Validate()
	require.False(t, v.Valid())
	assert.Contains(t, v.Errors, "email")

	req = SignupRequest{Email: "reader@example.com", Password: "tiny"}
	v = req.Validate()
	require.False(t, v.Valid())
	assert.Contains(t, v.Errors, "password")

	req = SignupRequest{}
	v = req.Validate()
	assert.Len(t, v.Errors, 2)
}

func TestLoginRequestValidate(t *testing.T) {
	// no minimum password length on login, unlike signup
	req := LoginRequest{Email: "reader@example.com", Password: "x"}
	assert.True(t, req.Validate().Valid())

	req = LoginRequest{Email: "reader@example.com"}
	v := req.Validate()
	require.False(t, v.Valid())
	assert.Contains(t, v.Errors, "password")
}
