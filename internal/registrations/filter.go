package registrations

import (
	"strconv"
	"strings"

	"github.com/southlake-academy/admin-api/internal/models"
)

// Filter returns the registrations matching a free-text query: a
// case-insensitive substring match over the stringified registration id
// and the parent first/last name. A blank query matches everything. The
// input slice is never modified; callers keep the full fetched set and
// re-filter on every keystroke.
func Filter(list []models.Registration, query string) []models.Registration {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]models.Registration, 0, len(list))
	for _, r := range list {
		if strings.Contains(strconv.FormatInt(r.RegistrationID, 10), q) ||
			strings.Contains(strings.ToLower(r.ParentFirstName), q) ||
			strings.Contains(strings.ToLower(r.ParentLastName), q) {
			out = append(out, r)
		}
	}
	return out
}
