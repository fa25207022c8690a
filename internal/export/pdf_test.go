package export

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southlake-academy/admin-api/internal/models"
)

func TestBuildFormsPDFNoForms(t *testing.T) {
	// A registrant with zero submissions still gets a document carrying
	// the no-forms row, not an error.
	out, err := BuildFormsPDF("After School Program", 7, FormSections(nil))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestBuildFormsPDF(t *testing.T) {
	forms := []models.FormSubmission{
		{"childFirstName": "Mia", "grade": "2nd"},
		{"childFirstName": "Leo", "grade": "4th"},
	}
	out, err := BuildFormsPDF("Camp", 12, FormSections(forms))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestBuildSummaryPDF(t *testing.T) {
	reg := &models.Registration{RegistrationID: 9, ParentFirstName: "Ann", ParentLastName: "Lee"}
	out, err := BuildSummaryPDF("Enrolled Student Details", RegistrationRows(reg))
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestPDFWriterPaginates(t *testing.T) {
	w := newPDFWriter()
	rows := make([]Row, 100)
	for i := range rows {
		rows[i] = Row{fmt.Sprintf("Field %d", i), "value"}
	}
	w.table(rows)
	// 100 rows cannot fit one A4 page; the cursor must have wrapped.
	assert.Greater(t, w.pdf.PageNo(), 1)
	assert.LessOrEqual(t, w.y, pageHeight-marginBottom)
}
