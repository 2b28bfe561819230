package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pricebite/pricebite-backend/internal/handlers"
	"github.com/pricebite/pricebite-backend/internal/models"
	"github.com/pricebite/pricebite-backend/internal/services"
	"github.com/pricebite/pricebite-backend/pkg/utils"
)

// fakeUserStore is an in-memory services.UserStore.
type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (s *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	s.users[user.ID.Hex()] = &copied
	return nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, services.ErrUserNotFound
}

func (s *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) UpdateByID(ctx context.Context, id string, update services.ProfileUpdate) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.City != nil {
		u.City = *update.City
	}
	if update.DietaryPreferences != nil {
		u.DietaryPreferences = update.DietaryPreferences
	}
	copied := *u
	return &copied, nil
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func registerViaHTTP(t *testing.T, r *chi.Mux) handlers.AuthResponse {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", "", handlers.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Phone:    "9999999999",
		City:     "Mumbai",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp handlers.AuthResponse
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter(t)

	resp := registerViaHTTP(t, r)
	assert.Equal(t, "test@example.com", resp.User.Email)
	assert.Equal(t, "Mumbai", resp.User.City)

	// The password hash never leaves the server.
	raw := doJSON(t, r, http.MethodPost, "/api/auth/register", "", handlers.RegisterRequest{
		Name:     "Other User",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.NotContains(t, raw.Body.String(), "password")
}

func TestRegisterEndpoint_Validation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", "", handlers.RegisterRequest{
		Email: "test@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/register", "", handlers.RegisterRequest{
		Name:     "Test User",
		Email:    "not-an-email",
		Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	r := newTestRouter(t)
	registerViaHTTP(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", "", handlers.RegisterRequest{
		Name:     "Again",
		Email:    "test@example.com",
		Password: "password456",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)
	registerViaHTTP(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", "", handlers.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.AuthResponse
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)

	// Wrong password and unknown email are indistinguishable.
	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", "", handlers.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/api/auth/login", "", handlers.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestMeEndpoint_AuthGates(t *testing.T) {
	r := newTestRouter(t)
	resp := registerViaHTTP(t, r)

	// No token: 401.
	rec := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Present but invalid token: 403.
	rec = doJSON(t, r, http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Expired token: 403.
	expired, err := utils.GenerateToken(resp.User.ID, resp.User.Email, []byte(testJWTSecret), -time.Minute)
	require.NoError(t, err)
	rec = doJSON(t, r, http.MethodGet, "/api/auth/me", expired, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Valid token: the public projection.
	rec = doJSON(t, r, http.MethodGet, "/api/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me handlers.UserResponse
	decodeBody(t, rec, &me)
	assert.Equal(t, resp.User.ID, me.User.ID)
	assert.Equal(t, "test@example.com", me.User.Email)
}

func TestMeEndpoint_UserGone(t *testing.T) {
	r := newTestRouter(t)

	// Token signed for a user that does not exist in the store.
	token, err := utils.GenerateToken(primitive.NewObjectID().Hex(), "ghost@example.com", []byte(testJWTSecret), time.Hour)
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfileEndpoint_PartialUpdate(t *testing.T) {
	r := newTestRouter(t)
	resp := registerViaHTTP(t, r)

	city := "Delhi"
	rec := doJSON(t, r, http.MethodPut, "/api/auth/profile", resp.Token, handlers.UpdateProfileRequest{
		City: &city,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated handlers.UserResponse
	decodeBody(t, rec, &updated)

	assert.Equal(t, "Delhi", updated.User.City)
	assert.Equal(t, resp.User.Name, updated.User.Name)
	assert.Equal(t, resp.User.Phone, updated.User.Phone)
	assert.Equal(t, resp.User.Email, updated.User.Email)
}

func TestLogoutEndpoint(t *testing.T) {
	r := newTestRouter(t)
	resp := registerViaHTTP(t, r)

	// Logout is a no-op acknowledgement but still requires a valid token.
	rec := doJSON(t, r, http.MethodPost, "/api/auth/logout", resp.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logout successful")

	rec = doJSON(t, r, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The token still works afterwards; there is no revocation list.
	rec = doJSON(t, r, http.MethodGet, "/api/auth/me", resp.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
