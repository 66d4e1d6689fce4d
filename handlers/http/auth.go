package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"bookstore-api/dtos"
	"bookstore-api/usecases"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.AuthUseCase
}

func NewAuthHandler(useCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

// Signup handles POST /api/users/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	if v := req.Validate(); !v.Valid() {
		c.JSON(http.StatusBadRequest, dtos.ValidationError(v.Errors))
		return
	}

	token, err := h.useCase.Signup(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecases.ErrUserExists) {
			c.JSON(http.StatusBadRequest, dtos.NewError(http.StatusBadRequest, "User already exists"))
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dtos.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
	})
}

// Login handles POST /api/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.NewError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	if v := req.Validate(); !v.Valid() {
		c.JSON(http.StatusBadRequest, dtos.ValidationError(v.Errors))
		return
	}

	token, err := h.useCase.Login(req.Email, req.Password)
	if err != nil {
		// A 400, not a 401: the response must not hint at which part of
		// the credentials was wrong
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, dtos.NewError(http.StatusBadRequest, "Invalid credentials"))
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.AuthResponse{
		Message: "Login successful",
		Token:   token,
	})
}

// serverError logs the failure and emits the generic 500 envelope. Detail is
// included only outside release mode.
func serverError(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, dtos.ServerError(err, gin.Mode() != gin.ReleaseMode))
}
