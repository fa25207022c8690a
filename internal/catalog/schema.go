// Package catalog implements the program catalog: one generic,
// schema-parameterized list/edit/save surface shared by every product
// line instead of a handler pair per category.
package catalog

// Field describes one editable attribute of a category's programs. The
// admin UI renders its form from these definitions; the repository stores
// the values in the program's open attribute bag.
type Field struct {
	Name      string
	Label     string
	Multiline bool
}

// Category describes one product line and which catalog operations it
// offers. All updates are keyed by id; categories differ only in field
// sets and in whether create/delete are exposed.
type Category struct {
	Slug            string
	Title           string
	AllowCreate     bool
	AllowDelete     bool
	HasSessionTypes bool
	Fields          []Field
}

var programDetailFields = []Field{
	{Name: "ages", Label: "Ages"},
	{Name: "location", Label: "Location"},
	{Name: "dates", Label: "Days"},
	{Name: "time", Label: "Time"},
	{Name: "capacity", Label: "Capacity"},
	{Name: "slotsAvailable", Label: "Slots Available"},
	{Name: "discounts", Label: "Discounts"},
	{Name: "dateFrom", Label: "Date From"},
	{Name: "dateTo", Label: "Date To"},
	{Name: "classExperience", Label: "Class Experience", Multiline: true},
	{Name: "cancellationPolicy", Label: "Cancellation Policy", Multiline: true},
}

var tutoringDetailFields = []Field{
	{Name: "ages", Label: "Ages"},
	{Name: "location", Label: "Location"},
	{Name: "subjects", Label: "Subjects"},
	{Name: "schedule", Label: "Schedule"},
	{Name: "classExperience", Label: "Class Experience", Multiline: true},
	{Name: "cancellationPolicy", Label: "Cancellation Policy", Multiline: true},
}

// categories is the registry, in sidebar order.
var categories = []Category{
	{
		Slug:   "after-school",
		Title:  "After School Program",
		Fields: programDetailFields,
	},
	{
		Slug:            "music",
		Title:           "Music Program",
		HasSessionTypes: true,
		Fields:          programDetailFields,
	},
	{
		Slug:            "private-lessons",
		Title:           "Private Music Lessons",
		HasSessionTypes: true,
		Fields:          tutoringDetailFields,
	},
	{
		Slug:            "in-person-tutoring",
		Title:           "Private & Test Prep",
		HasSessionTypes: true,
		Fields:          tutoringDetailFields,
	},
	{
		Slug:            "online-tutoring",
		Title:           "Online Tutoring",
		HasSessionTypes: true,
		Fields:          tutoringDetailFields,
	},
	{
		Slug:   "camps",
		Title:  "Camp",
		Fields: programDetailFields,
	},
	{
		Slug:        "single",
		Title:       "Single Program",
		AllowCreate: true,
		AllowDelete: true,
		Fields:      programDetailFields,
	},
}

var categoriesBySlug = func() map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, c := range categories {
		m[c.Slug] = c
	}
	return m
}()

// Categories returns the registry in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Lookup returns the category for a slug.
func Lookup(slug string) (Category, bool) {
	c, ok := categoriesBySlug[slug]
	return c, ok
}
