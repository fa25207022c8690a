package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/southlake-academy/admin-api/internal/models"
)

type stubSource struct {
	all   []models.Registration
	byCat map[string][]models.Registration
}

func (s *stubSource) List(ctx context.Context) ([]models.Registration, error) {
	return s.all, nil
}

func (s *stubSource) ListByCategory(ctx context.Context, category string) ([]models.Registration, error) {
	return s.byCat[category], nil
}

func (s *stubSource) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	for i := range s.all {
		if s.all[i].RegistrationID == id {
			return &s.all[i], nil
		}
	}
	return nil, nil
}

func newTestRouter(source RegistrationSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(source, nil)
	r := gin.New()
	r.GET("/api/registrations/:category/:id/pdf", h.RegistrationPDF)
	r.GET("/api/exports/:category", h.Spreadsheet)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRegistrationPDFForms(t *testing.T) {
	source := &stubSource{all: []models.Registration{{
		RegistrationID:  42,
		ParentFirstName: "John",
		ParentLastName:  "Doe",
		Forms: map[string][]models.FormSubmission{
			"music": {{"instrument": "piano"}},
		},
	}}}
	r := newTestRouter(source)

	w := get(r, "/api/registrations/music/42/pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypePDF, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Music_Program_Registration_42.pdf")
	assert.True(t, len(w.Body.Bytes()) > 0)
	assert.Equal(t, "%PDF", string(w.Body.Bytes()[:4]))
}

func TestRegistrationPDFAnnualSummary(t *testing.T) {
	source := &stubSource{all: []models.Registration{{
		RegistrationID:  7,
		ParentFirstName: "Ann",
		ParentLastName:  "Lee",
		Amount:          "150",
	}}}
	r := newTestRouter(source)

	w := get(r, "/api/registrations/annual/7/pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Annual_Registration_Registration_7.pdf")
	assert.Equal(t, "%PDF", string(w.Body.Bytes()[:4]))
}

func TestRegistrationPDFNotFound(t *testing.T) {
	r := newTestRouter(&stubSource{})

	w := get(r, "/api/registrations/music/99/pdf")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegistrationPDFUnknownCategory(t *testing.T) {
	r := newTestRouter(&stubSource{})

	w := get(r, "/api/registrations/bogus/1/pdf")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSpreadsheetFiltered(t *testing.T) {
	source := &stubSource{all: []models.Registration{
		{RegistrationID: 42, ParentFirstName: "John", ParentLastName: "Doe", Amount: "100"},
		{RegistrationID: 7, ParentFirstName: "Ann", ParentLastName: "Lee", Amount: "150"},
	}}
	r := newTestRouter(source)

	w := get(r, "/api/exports/annual?q=doe")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Enrolled_Students.xlsx")

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetEnrolled)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "42", rows[1][0])
	assert.Equal(t, "John Doe", rows[1][1])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Private___Test_Prep", sanitizeFilename("Private & Test Prep"))
	assert.Equal(t, "Music_Program", sanitizeFilename("Music Program"))
}
