package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is an entry in the address book. ID is assigned by the store
// when the contact is first persisted; (Name, Phone) is unique across contacts.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContact creates an unsaved Contact.
// Returns a ValidationError if name or phone is blank.
func NewContact(name, phone, email string) (*Contact, error) {
	c := &Contact{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the required fields are present.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "cannot be blank", ErrEmptyField)
	}

	if strings.TrimSpace(c.Phone) == "" {
		return NewValidationError("phone", "cannot be blank", ErrEmptyField)
	}

	return nil
}

// Replace overwrites every mutable field, keeping ID and CreatedAt.
// The contact is left unchanged if the new values fail validation.
func (c *Contact) Replace(name, phone, email string) error {
	candidate := Contact{Name: name, Phone: phone, Email: email}
	if err := candidate.Validate(); err != nil {
		return err
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now().UTC()
	return nil
}
