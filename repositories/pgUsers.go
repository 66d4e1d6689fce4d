package repositories

import (
	"errors"

	"bookstore-api/db"
	"bookstore-api/entities"

	"gorm.io/gorm"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userPgRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
