package usecases

import (
	"errors"
	"time"

	"bookstore-api/auth"
	"bookstore-api/entities"
	"bookstore-api/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserExists is returned when signup hits an already-registered email.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot tell which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUseCase struct {
	UserRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUseCase(userRepo repositories.UserRepository, jwtSecret []byte, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		UserRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Signup registers a new account and returns a signed token for it. The
// duplicate check and the insert are not transactional; the unique constraint
// on users.email backstops the race.
func (uc *AuthUseCase) Signup(email, password string) (string, error) {
	_, err := uc.UserRepo.GetByEmail(email)
	if err == nil {
		return "", ErrUserExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &entities.User{Email: email, PasswordHash: string(hash)}
	if err := uc.UserRepo.Create(user); err != nil {
		return "", err
	}

	return auth.GenerateToken(user.ID, uc.jwtSecret, uc.tokenTTL)
}

// Login verifies the credentials and returns a signed token.
func (uc *AuthUseCase) Login(email, password string) (string, error) {
	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, uc.jwtSecret, uc.tokenTTL)
}
