package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pricebite/pricebite-backend/internal/models"
	"github.com/pricebite/pricebite-backend/pkg/utils"
)

var (
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists with this email")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never leaks which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration, login, and profile management backed by
// the user document store.
type AuthService struct {
	store     UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(store UserStore, jwtSecret string) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}
}

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Name               string
	Email              string
	Password           string
	Phone              string
	City               string
	DietaryPreferences []string
}

// Register creates a new user and returns a signed token plus the public
// projection. The password is stored as a bcrypt hash only.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, models.PublicUser, error) {
	_, err := s.store.FindByEmail(ctx, in.Email)
	if err == nil {
		return "", models.PublicUser{}, ErrDuplicateUser
	}
	if !errors.Is(err, ErrUserNotFound) {
		return "", models.PublicUser{}, fmt.Errorf("checking existing user: %w", err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", models.PublicUser{}, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:               in.Name,
		Email:              in.Email,
		Password:           hash,
		Phone:              in.Phone,
		City:               in.City,
		DietaryPreferences: in.DietaryPreferences,
		CreatedAt:          time.Now(),
	}
	if err := s.store.Insert(ctx, user); err != nil {
		return "", models.PublicUser{}, fmt.Errorf("inserting user: %w", err)
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", models.PublicUser{}, fmt.Errorf("signing token: %w", err)
	}
	return token, user.Public(), nil
}

// Login checks the credentials and returns a fresh token plus the public
// projection.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.PublicUser, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", models.PublicUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.PublicUser{}, fmt.Errorf("looking up user: %w", err)
	}

	if !utils.VerifyPassword(password, user.Password) {
		return "", models.PublicUser{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", models.PublicUser{}, fmt.Errorf("signing token: %w", err)
	}
	return token, user.Public(), nil
}

// CurrentUser loads the user behind an already-verified token id. The record
// may have been deleted out-of-band, which surfaces as ErrUserNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (models.PublicUser, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

// UpdateProfile applies a partial update; only supplied fields change.
// Last write wins, there is no concurrent-modification check.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (models.PublicUser, error) {
	user, err := s.store.UpdateByID(ctx, userID, update)
	if err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}
