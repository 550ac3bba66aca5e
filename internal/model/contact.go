package model

import "time"

// StatusNew is the status assigned to every freshly submitted message.
// Status values are otherwise free text; there is no closed set.
const StatusNew = "new"

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Message   string     `json:"message"`
	Timestamp time.Time  `json:"timestamp"`
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"-"`
}

// ContactMessageCreate is the client-supplied part of a ContactMessage.
// Fields are pointers so an absent or null key can be told apart from "".
type ContactMessageCreate struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required"`
	Message *string `json:"message" validate:"required"`
}

// Validate checks that every field is present. Empty strings are accepted
// and the e-mail address is not format-checked.
func (c ContactMessageCreate) Validate() error {
	return validateStruct(c)
}

// ContactListOptions carries the parameters for listing contact messages.
type ContactListOptions struct {
	Limit int
}

// DefaultContactListLimit is used when the caller does not pass a limit.
const DefaultContactListLimit = 100

// ContactCountFilter narrows a contact message count. Zero values match everything.
type ContactCountFilter struct {
	Status string
	Since  time.Time
}
