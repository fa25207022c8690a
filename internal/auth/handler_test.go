package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southlake-academy/admin-api/internal/models"
	"github.com/southlake-academy/admin-api/pkg/utils"
)

type stubStore struct {
	users map[string]*models.User
}

func newStubStore() *stubStore {
	return &stubStore{users: make(map[string]*models.User)}
}

func (s *stubStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users[email], nil
}

func (s *stubStore) Create(ctx context.Context, email, passwordHash, fullName string, role models.Role) (*models.User, error) {
	u := &models.User{ID: uuid.New(), Email: email, Password: passwordHash, FullName: fullName, Role: role}
	s.users[email] = u
	return u, nil
}

func seedUser(t *testing.T, store *stubStore, email, password string, role models.Role) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), email, hash, "Test User", role)
	require.NoError(t, err)
}

func newTestRouter(store UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(store, NewJWTService("test-secret", 24), nil)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/register", h.Register)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	buf, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "admin@example.com", "password123", models.RoleAdmin)
	r := newTestRouter(store)

	w := postJSON(r, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool          `json:"success"`
		Data    TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Token)
	assert.Equal(t, "admin@example.com", body.Data.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "admin@example.com", "password123", models.RoleAdmin)
	r := newTestRouter(store)

	w := postJSON(r, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	r := newTestRouter(newStubStore())

	w := postJSON(r, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister(t *testing.T) {
	store := newStubStore()
	r := newTestRouter(store)

	w := postJSON(r, "/api/auth/register", map[string]string{
		"email":     "staff@example.com",
		"password":  "password123",
		"full_name": "New Staff",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, store.users["staff@example.com"])
	assert.Equal(t, models.RoleStaff, store.users["staff@example.com"].Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "staff@example.com", "password123", models.RoleStaff)
	r := newTestRouter(store)

	w := postJSON(r, "/api/auth/register", map[string]string{
		"email":     "staff@example.com",
		"password":  "password123",
		"full_name": "Dup",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterInvalidRole(t *testing.T) {
	r := newTestRouter(newStubStore())

	w := postJSON(r, "/api/auth/register", map[string]string{
		"email":     "x@example.com",
		"password":  "password123",
		"full_name": "X",
		"role":      "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
