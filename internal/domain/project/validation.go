package project

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate enforces the admin form's save rules: name, client id and
// deadline must be present, and status must be one of the known values.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.ClientID, validation.Required),
		validation.Field(&p.Deadline, validation.Required),
		validation.Field(&p.Status, validation.Required, validation.In(StatusActive, StatusCompleted, StatusPaused)),
	)
}
