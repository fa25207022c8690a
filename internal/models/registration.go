package models

import "time"

// FormSubmission is the category-specific intake data captured at purchase
// time (student names, ages, grade, quantity, ...). Its shape varies per
// category, so it stays an open record and is treated as opaque by the
// exporters.
type FormSubmission map[string]any

// Registration is a parent/guardian enrollment transaction. One
// registration can span several program categories; Forms holds the form
// submissions per category slug.
type Registration struct {
	RegistrationID  int64                       `json:"registrationId"`
	ParentFirstName string                      `json:"parentFirstName"`
	ParentLastName  string                      `json:"parentLastName"`
	FirstName       string                      `json:"firstName"`
	LastName        string                      `json:"lastName"`
	Address         string                      `json:"address"`
	City            string                      `json:"city"`
	State           string                      `json:"state"`
	ZipCode         string                      `json:"zipCode"`
	Country         string                      `json:"country"`
	Phone           string                      `json:"phone"`
	Email           string                      `json:"email"`
	Amount          string                      `json:"amount"`
	ExpiryDate      time.Time                   `json:"expiryDate"`
	Forms           map[string][]FormSubmission `json:"forms,omitempty"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

// ParentName returns "First Last" for display and export columns.
func (r *Registration) ParentName() string {
	if r.ParentFirstName == "" {
		return r.ParentLastName
	}
	if r.ParentLastName == "" {
		return r.ParentFirstName
	}
	return r.ParentFirstName + " " + r.ParentLastName
}

// FormsFor returns the form submissions for a category slug (nil when the
// registrant bought nothing in that category).
func (r *Registration) FormsFor(category string) []FormSubmission {
	if r.Forms == nil {
		return nil
	}
	return r.Forms[category]
}
