// Package forms models the user and hobby creation forms: field values,
// local validation before submission, and reset after a successful submit.
package forms

import (
	"context"
	"errors"
	"strconv"

	"github.com/yukikurage/user-hobbies-api/internal/client"
	"github.com/yukikurage/user-hobbies-api/internal/dto"
	"github.com/yukikurage/user-hobbies-api/internal/validation"
)

// UserCreator submits the user form. *client.Queries implements it.
type UserCreator interface {
	CreateUser(ctx context.Context, input dto.CreateUserInput) (dto.UserDTO, error)
}

// HobbyCreator submits the hobby form and lists users for the picker.
// *client.Queries implements it.
type HobbyCreator interface {
	CreateHobby(ctx context.Context, input dto.CreateHobbyInput) (dto.HobbyDTO, error)
	Users(ctx context.Context) ([]dto.UserDTO, error)
}

// fieldErrors keeps the messages shown under each field.
type fieldErrors struct {
	errs validation.Errors
}

// Errors returns the current messages keyed by field.
func (f *fieldErrors) Errors() map[string]string {
	return f.errs.Messages()
}

// FieldError returns the message shown under field, if any.
func (f *fieldErrors) FieldError(field string) string {
	return f.errs.Messages()[field]
}

// absorb shows server-side validation messages on the fields.
func (f *fieldErrors) absorb(err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && len(apiErr.ValidationErrors) > 0 {
		f.errs = apiErr.ValidationErrors
	}
}

// UserForm is the "Add User" form.
type UserForm struct {
	fieldErrors
	FirstName   string
	LastName    string
	Address     string
	PhoneNumber string

	creator UserCreator
}

// NewUserForm creates an empty form that submits through creator.
func NewUserForm(creator UserCreator) *UserForm {
	return &UserForm{creator: creator}
}

func (f *UserForm) values() map[string]any {
	return map[string]any{
		"first_name":   f.FirstName,
		"last_name":    f.LastName,
		"address":      f.Address,
		"phone_number": f.PhoneNumber,
	}
}

// Validate checks the fields and records their messages.
func (f *UserForm) Validate() validation.Errors {
	f.errs = validation.CreateUser.Validate(f.values())
	return f.errs
}

// Submit validates and creates the user. The form resets only on success.
func (f *UserForm) Submit(ctx context.Context) (dto.UserDTO, error) {
	if errs := f.Validate(); errs != nil {
		return dto.UserDTO{}, errs
	}

	values := f.values()
	user, err := f.creator.CreateUser(ctx, dto.CreateUserInput{
		FirstName:   validation.TrimmedString(values, "first_name"),
		LastName:    validation.TrimmedString(values, "last_name"),
		Address:     validation.TrimmedString(values, "address"),
		PhoneNumber: validation.TrimmedString(values, "phone_number"),
	})
	if err != nil {
		f.absorb(err)
		return dto.UserDTO{}, err
	}

	f.Reset()
	return user, nil
}

// Reset clears values and messages.
func (f *UserForm) Reset() {
	*f = UserForm{creator: f.creator}
}

// UserOption is one entry of the hobby form's user picker.
type UserOption struct {
	Value string
	Label string
}

// HobbyForm is the "Add Hobby" form. UserID holds the picker value.
type HobbyForm struct {
	fieldErrors
	UserID  string
	Hobbies string

	creator HobbyCreator
}

// NewHobbyForm creates an empty form that submits through creator.
func NewHobbyForm(creator HobbyCreator) *HobbyForm {
	return &HobbyForm{creator: creator}
}

func (f *HobbyForm) values() map[string]any {
	return map[string]any{
		"user_id": f.UserID,
		"hobbies": f.Hobbies,
	}
}

// Validate checks the fields and records their messages.
func (f *HobbyForm) Validate() validation.Errors {
	f.errs = validation.HobbyForm.Validate(f.values())
	return f.errs
}

// SelectUser sets the picker to id.
func (f *HobbyForm) SelectUser(id uint64) {
	f.UserID = strconv.FormatUint(id, 10)
}

// UserOptions lists the users available in the picker, labelled by full name.
func (f *HobbyForm) UserOptions(ctx context.Context) ([]UserOption, error) {
	users, err := f.creator.Users(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]UserOption, len(users))
	for i, user := range users {
		options[i] = UserOption{
			Value: strconv.FormatUint(user.ID, 10),
			Label: user.FirstName + " " + user.LastName,
		}
	}
	return options, nil
}

// Submit validates and adds the hobby. The form resets only on success.
func (f *HobbyForm) Submit(ctx context.Context) (dto.HobbyDTO, error) {
	if errs := f.Validate(); errs != nil {
		return dto.HobbyDTO{}, errs
	}

	values := f.values()
	hobby, err := f.creator.CreateHobby(ctx, dto.CreateHobbyInput{
		UserID:  validation.Uint(values, "user_id"),
		Hobbies: validation.TrimmedString(values, "hobbies"),
	})
	if err != nil {
		f.absorb(err)
		return dto.HobbyDTO{}, err
	}

	f.Reset()
	return hobby, nil
}

// Reset clears values and messages.
func (f *HobbyForm) Reset() {
	*f = HobbyForm{creator: f.creator}
}
