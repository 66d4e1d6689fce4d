package repositories

import (
	"strings"
	"time"

	"bookstore-api/db"
	"bookstore-api/entities"
)

// sortColumns is the allow-list for BookQuery.SortBy. Anything else is
// silently ignored rather than rejected.
var sortColumns = map[string]string{
	"price":  "price",
	"rating": "rating",
}

// orderClause resolves sortBy/order into a SQL ORDER BY expression. The
// second return value is false when sortBy is not on the allow-list.
func orderClause(sortBy, order string) (string, bool) {
	column, ok := sortColumns[strings.ToLower(sortBy)]
	if !ok {
		return "", false
	}
	direction := "ASC"
	if strings.EqualFold(order, "DESC") {
		direction = "DESC"
	}
	return column + " " + direction, true
}

type bookPgRepository struct {
	db db.Database
}

func NewBookPgRepository(database db.Database) BookRepository {
	return &bookPgRepository{db: database}
}

func (r *bookPgRepository) Create(book *entities.Book) error {
	return r.db.GetDB().Create(book).Error
}

func (r *bookPgRepository) GetByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.GetDB().Where("id = ?", id).First(&book).Error
	if err != nil {
		return nil, translate(err)
	}
	return &book, nil
}

func (r *bookPgRepository) List(q BookQuery) ([]entities.Book, int64, error) {
	tx := r.db.GetDB().Model(&entities.Book{})

	if q.Author != "" {
		tx = tx.Where("author = ?", q.Author)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Rating != nil {
		tx = tx.Where("rating = ?", *q.Rating)
	}
	if q.Title != "" {
		tx = tx.Where("title ILIKE ?", "%"+q.Title+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if clause, ok := orderClause(q.SortBy, q.Order); ok {
		tx = tx.Order(clause)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit).Offset(q.Offset)
	}

	var books []entities.Book
	err := tx.Find(&books).Error
	return books, total, err
}

func (r *bookPgRepository) Update(book *entities.Book) error {
	book.UpdatedAt = time.Now()
	return r.db.GetDB().Save(book).Error
}

func (r *bookPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Book{}).Error
}
