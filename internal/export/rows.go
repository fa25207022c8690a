package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/southlake-academy/admin-api/internal/models"
)

// MissingValue is rendered for absent, empty, or null field values.
const MissingValue = "N/A"

// NoFormsMarker is the row emitted when a registrant has no form
// submissions for the exported category; the document is produced either
// way, never skipped.
const NoFormsMarker = "No forms available"

// Row is a two-cell table row: field label and value.
type Row [2]string

// Section is one table, optionally preceded by a heading line.
type Section struct {
	Heading string
	Rows    []Row
}

// FormSections projects the form submissions of one category into PDF
// table sections: one section per submission with the submission's own
// fields, keys sorted for deterministic output.
func FormSections(forms []models.FormSubmission) []Section {
	if len(forms) == 0 {
		return []Section{{Rows: []Row{{"Forms", NoFormsMarker}}}}
	}
	sections := make([]Section, 0, len(forms))
	for i, form := range forms {
		keys := make([]string, 0, len(form))
		for k := range form {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([]Row, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, Row{FormatKey(k), formatValue(form[k])})
		}
		sections = append(sections, Section{
			Heading: fmt.Sprintf("Form %d:", i+1),
			Rows:    rows,
		})
	}
	return sections
}

// RegistrationRows projects a registration into the annual summary table.
func RegistrationRows(reg *models.Registration) []Row {
	return []Row{
		{"Parent Name", orMissing(reg.ParentName())},
		{"Child Name", orMissing(strings.TrimSpace(reg.FirstName + " " + reg.LastName))},
		{"Address", orMissing(reg.Address)},
		{"City", orMissing(reg.City)},
		{"State", orMissing(reg.State)},
		{"Country", orMissing(reg.Country)},
		{"Zip Code", orMissing(reg.ZipCode)},
		{"Phone", orMissing(reg.Phone)},
		{"Email", orMissing(reg.Email)},
		{"Payment Amount", payment(reg.Amount)},
		{"Registration ID", strconv.FormatInt(reg.RegistrationID, 10)},
		{"Expiry Date", reg.ExpiryDate.Format("01/02/2006")},
	}
}

// SpreadsheetHeader is the bulk-export column set. It is deliberately a
// projection, not the PDF's field set.
var SpreadsheetHeader = []string{"Registration ID", "Parent Name", "Payment"}

// SpreadsheetRows projects registrations into spreadsheet rows, one per
// record, matching SpreadsheetHeader. An empty input yields no rows; the
// sheet still gets its header.
func SpreadsheetRows(regs []models.Registration) [][]string {
	rows := make([][]string, 0, len(regs))
	for i := range regs {
		r := &regs[i]
		rows = append(rows, []string{
			strconv.FormatInt(r.RegistrationID, 10),
			r.ParentName(),
			payment(r.Amount),
		})
	}
	return rows
}

func payment(amount string) string {
	if amount == "" {
		return MissingValue
	}
	return "$" + amount
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return MissingValue
	}
	return s
}

// formatValue renders one opaque form value. Nested lists and objects are
// flattened to "k: v" joins so the table stays two columns wide.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return MissingValue
	case string:
		return orMissing(val)
	case []any:
		if len(val) == 0 {
			return MissingValue
		}
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		if len(val) == 0 {
			return MissingValue
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+formatValue(val[k]))
		}
		return strings.Join(parts, ", ")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
