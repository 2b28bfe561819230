package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pricebite/pricebite-backend/internal/middleware"
	"github.com/pricebite/pricebite-backend/internal/models"
	"github.com/pricebite/pricebite-backend/internal/services"
)

var validate = validator.New()

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name               string   `json:"name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required"`
	Phone              string   `json:"phone"`
	City               string   `json:"city"`
	DietaryPreferences []string `json:"dietaryPreferences"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries the optional profile fields; absent fields
// stay unchanged. Email and password cannot be updated here.
type UpdateProfileRequest struct {
	Name               *string  `json:"name"`
	Phone              *string  `json:"phone"`
	City               *string  `json:"city"`
	DietaryPreferences []string `json:"dietaryPreferences"`
}

// AuthResponse is the token-bearing response of register and login.
type AuthResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

// UserResponse wraps a public user projection.
type UserResponse struct {
	Message string            `json:"message,omitempty"`
	User    models.PublicUser `json:"user"`
}

// AuthHandler serves the /api/auth endpoints.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a new account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	token, user, err := h.auth.Register(r.Context(), services.RegisterInput{
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		Phone:              req.Phone,
		City:               req.City,
		DietaryPreferences: req.DietaryPreferences,
	})
	if errors.Is(err, services.ErrDuplicateUser) {
		writeError(w, http.StatusBadRequest, "User already exists with this email")
		return
	}
	if err != nil {
		log.Printf("registration error: %v", err)
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user,
	})
}

// Login authenticates and returns a fresh token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		// Same body for unknown email and wrong password.
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		log.Printf("login error: %v", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// Logout acknowledges the request. Tokens are stateless, so there is nothing
// to revoke server-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.CurrentUser(r.Context(), middleware.UserID(r.Context()))
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("get user error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{User: user})
}

// UpdateProfile applies a partial profile update.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.auth.UpdateProfile(r.Context(), middleware.UserID(r.Context()), services.ProfileUpdate{
		Name:               req.Name,
		Phone:              req.Phone,
		City:               req.City,
		DietaryPreferences: req.DietaryPreferences,
	})
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("profile update error: %v", err)
		writeError(w, http.StatusInternalServerError, "Profile update failed")
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{
		Message: "Profile updated successfully",
		User:    user,
	})
}
