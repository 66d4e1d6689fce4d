package httpHandler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"bookstore-api/entities"
	"bookstore-api/handlers"
	"bookstore-api/middleware"
	"bookstore-api/repositories"
	"bookstore-api/usecases"
	"bookstore-api/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSecret = []byte("test-secret")

// fakeUserRepo is an in-memory repositories.UserRepository. It counts reads
// so tests can assert that rejected requests never touch persistence.
type fakeUserRepo struct {
	mu           sync.Mutex
	users        map[string]entities.User
	getByIDCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]entities.User)}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByIDCalls++
	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// fakeBookRepo is an in-memory repositories.BookRepository mirroring the
// filtering, allow-listed sorting and pagination of the gorm implementation.
type fakeBookRepo struct {
	mu        sync.Mutex
	books     map[string]entities.Book
	insertion []string
	listCalls int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[string]entities.Book)}
}

func (r *fakeBookRepo) Create(book *entities.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	r.books[book.ID] = *book
	r.insertion = append(r.insertion, book.ID)
	return nil
}

func (r *fakeBookRepo) GetByID(id string) (*entities.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if book, ok := r.books[id]; ok {
		b := book
		return &b, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeBookRepo) List(q repositories.BookQuery) ([]entities.Book, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++

	var filtered []entities.Book
	for _, id := range r.insertion {
		b := r.books[id]
		if q.Author != "" && b.Author != q.Author {
			continue
		}
		if q.Category != "" && b.Category != q.Category {
			continue
		}
		if q.Rating != nil && b.Rating != *q.Rating {
			continue
		}
		if q.Title != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(q.Title)) {
			continue
		}
		filtered = append(filtered, b)
	}

	switch strings.ToLower(q.SortBy) {
	case "price":
		sort.SliceStable(filtered, func(i, j int) bool {
			if strings.EqualFold(q.Order, "DESC") {
				return filtered[i].Price > filtered[j].Price
			}
			return filtered[i].Price < filtered[j].Price
		})
	case "rating":
		sort.SliceStable(filtered, func(i, j int) bool {
			if strings.EqualFold(q.Order, "DESC") {
				return filtered[i].Rating > filtered[j].Rating
			}
			return filtered[i].Rating < filtered[j].Rating
		})
	}

	total := int64(len(filtered))
	if q.Limit > 0 {
		if q.Offset >= len(filtered) {
			filtered = nil
		} else {
			end := q.Offset + q.Limit
			if end > len(filtered) {
				end = len(filtered)
			}
			filtered = filtered[q.Offset:end]
		}
	}
	return filtered, total, nil
}

func (r *fakeBookRepo) Update(book *entities.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[book.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.books[book.ID] = *book
	return nil
}

func (r *fakeBookRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.books, id)
	for i, existing := range r.insertion {
		if existing == id {
			r.insertion = append(r.insertion[:i], r.insertion[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeBookRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.books)
}

// newTestRouter wires the handlers exactly as server.Start does, minus the
// real database and websocket feed.
func newTestRouter(users *fakeUserRepo, books *fakeBookRepo) *gin.Engine {
	return newTestRouterWithEvents(users, books, nil)
}

// newTestRouterWithEvents additionally attaches a ws.Manager so broadcasts
// from book mutations can be observed.
func newTestRouterWithEvents(users *fakeUserRepo, books *fakeBookRepo, events *ws.Manager) *gin.Engine {
	r := gin.New()

	authHandler := NewAuthHandler(usecases.NewAuthUseCase(users, testSecret, time.Hour))
	bookHandler := NewBookHandler(usecases.NewBookUseCase(books), events)
	authRequired := middleware.RequireAuth(users, testSecret)

	api := r.Group("/api")
	api.POST("/users/signup", authHandler.Signup)
	api.POST("/users/login", authHandler.Login)

	protected := api.Group("/books")
	protected.Use(authRequired)
	protected.POST("", bookHandler.CreateBook)
	protected.GET("", bookHandler.GetAllBooks)
	protected.GET("/:id", bookHandler.GetBook)
	protected.PUT("/:id", bookHandler.UpdateBook)
	protected.DELETE("/:id", bookHandler.DeleteBook)

	if events != nil {
		handler := handlers.NewEventsHandler(events)
		api.GET("/events/subscribers", authRequired, handler.Subscribers)
	}

	return r
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookPayload(title, author, category string, price, rating float64, date string) map[string]any {
	return map[string]any{
		"title":         title,
		"author":        author,
		"category":      category,
		"price":         price,
		"rating":        rating,
		"publishedDate": date,
	}
}
