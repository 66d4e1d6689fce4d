package db

import (
	"log"
	"time"

	"bookstore-api/entities"

	"golang.org/x/crypto/bcrypt"
)

func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

var seedBooks = []entities.Book{
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", Category: "Fiction", Price: 12.99, Rating: 4.8, PublishedDate: mustDate("1960-07-11")},
	{Title: "1984", Author: "George Orwell", Category: "Science Fiction", Price: 10.99, Rating: 4.6, PublishedDate: mustDate("1949-06-08")},
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Fiction", Price: 9.99, Rating: 4.3, PublishedDate: mustDate("1925-04-10")},
	{Title: "Pride and Prejudice", Author: "Jane Austen", Category: "Romance", Price: 8.99, Rating: 4.7, PublishedDate: mustDate("1813-01-28")},
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Category: "Fantasy", Price: 14.99, Rating: 4.9, PublishedDate: mustDate("1937-09-21")},
}

// Seed populates demo data for development environments. It only inserts
// when the target table is empty, so restarting the server is safe.
func Seed(database Database) error {
	gdb := database.GetDB()

	var bookCount int64
	if err := gdb.Model(&entities.Book{}).Count(&bookCount).Error; err != nil {
		return err
	}
	if bookCount == 0 {
		books := make([]entities.Book, len(seedBooks))
		copy(books, seedBooks)
		if err := gdb.Create(&books).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d demo books", len(books))
	}

	var userCount int64
	if err := gdb.Model(&entities.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entities.User{Email: "demo@bookstore.com", PasswordHash: string(hash)}
		if err := gdb.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Seeded demo user %s", user.Email)
	}

	return nil
}
