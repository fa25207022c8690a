package inquiries

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southlake-academy/admin-api/internal/inflight"
	"github.com/southlake-academy/admin-api/internal/models"
)

type stubStore struct {
	contacts  map[int64]models.Contact
	schedules map[int64]models.ScheduleRequest
}

func newStubStore() *stubStore {
	return &stubStore{
		contacts:  make(map[int64]models.Contact),
		schedules: make(map[int64]models.ScheduleRequest),
	}
}

func (s *stubStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	for _, c := range s.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubStore) DeleteContact(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.contacts[id]; !ok {
		return false, nil
	}
	delete(s.contacts, id)
	return true, nil
}

func (s *stubStore) ListScheduleRequests(ctx context.Context) ([]models.ScheduleRequest, error) {
	var out []models.ScheduleRequest
	for _, sr := range s.schedules {
		out = append(out, sr)
	}
	return out, nil
}

func (s *stubStore) DeleteScheduleRequest(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.schedules[id]; !ok {
		return false, nil
	}
	delete(s.schedules, id)
	return true, nil
}

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(store, inflight.NewMemoryGuard(), nil)
	r := gin.New()
	r.GET("/api/contacts", h.ListContacts)
	r.DELETE("/api/contacts/:id", h.DeleteContact)
	r.GET("/api/schedule", h.ListScheduleRequests)
	r.DELETE("/api/schedule/:id", h.DeleteScheduleRequest)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListContactsEmpty(t *testing.T) {
	r := newTestRouter(newStubStore())

	w := do(r, http.MethodGet, "/api/contacts")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool             `json:"success"`
		Data    []models.Contact `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestDeleteContact(t *testing.T) {
	store := newStubStore()
	store.contacts[5] = models.Contact{ID: 5, Name: "Jane"}
	r := newTestRouter(store)

	w := do(r, http.MethodDelete, "/api/contacts/5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.contacts)

	w = do(r, http.MethodDelete, "/api/contacts/5")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteContactInvalidID(t *testing.T) {
	r := newTestRouter(newStubStore())

	w := do(r, http.MethodDelete, "/api/contacts/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteScheduleRequest(t *testing.T) {
	store := newStubStore()
	store.schedules[3] = models.ScheduleRequest{ID: 3, StudentName: "Sam"}
	r := newTestRouter(store)

	w := do(r, http.MethodDelete, "/api/schedule/3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.schedules)
}
