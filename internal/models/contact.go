package models

import "time"

// Contact is a message submitted through the public contact-us form.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScheduleRequest is a tutoring schedule callback request.
type ScheduleRequest struct {
	ID                int64     `json:"id"`
	StudentName       string    `json:"studentName"`
	ParentPhoneNumber string    `json:"parentPhoneNumber"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
