package httpHandler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"bookstore-api/dtos"
	"bookstore-api/repositories"
	"bookstore-api/usecases"
	"bookstore-api/ws"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	useCase *usecases.BookUseCase
	events  *ws.Manager
}

func NewBookHandler(useCase *usecases.BookUseCase, events *ws.Manager) *BookHandler {
	return &BookHandler{useCase: useCase, events: events}
}

// CreateBook handles POST /api/books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dtos.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	if v := req.Validate(); !v.Valid() {
		c.JSON(http.StatusBadRequest, dtos.ValidationError(v.Errors))
		return
	}

	book := req.ToEntity()
	if err := h.useCase.CreateBook(&book); err != nil {
		serverError(c, err)
		return
	}

	resp := dtos.BookFromEntity(&book)
	h.publish("book_created", resp)
	c.JSON(http.StatusCreated, resp)
}

// GetAllBooks handles GET /api/books with filtering, pagination and sorting.
func (h *BookHandler) GetAllBooks(c *gin.Context) {
	query := repositories.BookQuery{
		Author:   c.Query("author"),
		Category: c.Query("category"),
		Title:    c.Query("title"),
		SortBy:   c.Query("sortBy"),
		Order:    c.DefaultQuery("order", "ASC"),
	}

	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dtos.ValidationError(map[string]string{"rating": "rating must be a number"}))
			return
		}
		query.Rating = &rating
	}

	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), 10)
	query.Limit = limit
	query.Offset = (page - 1) * limit

	books, total, err := h.useCase.ListBooks(query)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.BookListResponse{
		TotalItems:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		Books:       dtos.BooksFromEntities(books),
	})
}

// GetBook handles GET /api/books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.useCase.GetBook(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, dtos.NotFound("Book"))
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.BookFromEntity(book))
}

// UpdateBook handles PUT /api/books/:id. The payload is the same full
// schema as create; partial updates are not supported.
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dtos.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	if v := req.Validate(); !v.Valid() {
		c.JSON(http.StatusBadRequest, dtos.ValidationError(v.Errors))
		return
	}

	book, err := h.useCase.UpdateBook(c.Param("id"), req.ToEntity())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, dtos.NotFound("Book"))
			return
		}
		serverError(c, err)
		return
	}

	resp := dtos.BookFromEntity(book)
	h.publish("book_updated", resp)
	c.JSON(http.StatusOK, resp)
}

// DeleteBook handles DELETE /api/books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id := c.Param("id")

	book, err := h.useCase.GetBook(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, dtos.NotFound("Book"))
			return
		}
		serverError(c, err)
		return
	}

	if err := h.useCase.DeleteBook(id); err != nil {
		serverError(c, err)
		return
	}

	h.publish("book_deleted", dtos.BookFromEntity(book))
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// publish broadcasts a catalog change to websocket subscribers.
func (h *BookHandler) publish(eventType string, book dtos.BookResponse) {
	if h.events == nil {
		return
	}
	payload, err := json.Marshal(gin.H{"type": eventType, "book": book})
	if err != nil {
		return
	}
	h.events.Broadcast(payload)
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
