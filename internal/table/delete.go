package table

import (
	"context"
	"fmt"
)

// DeleteKind tells what a row's delete button removes.
type DeleteKind string

const (
	DeleteUser  DeleteKind = "user"
	DeleteHobby DeleteKind = "hobby"
)

// Deleter performs the deletes. *client.Queries implements it.
type Deleter interface {
	DeleteUser(ctx context.Context, id uint64) error
	DeleteHobby(ctx context.Context, userID uint64, hobby string) error
}

// DeleteAction is a destructive action awaiting confirmation.
type DeleteAction struct {
	Kind        DeleteKind
	UserID      uint64
	Hobby       string
	Title       string
	Description string
	ConfirmText string
}

// DeleteActionFor picks the action for a row: a hobby row deletes that
// hobby, a row without a hobby deletes the user.
func DeleteActionFor(row Row) DeleteAction {
	if HasHobby(row) {
		return DeleteAction{
			Kind:        DeleteHobby,
			UserID:      row.ID,
			Hobby:       *row.Hobbies,
			Title:       "Delete Hobby",
			Description: fmt.Sprintf("Are you sure you want to delete the hobby \"%s\"? This action cannot be undone.", *row.Hobbies),
			ConfirmText: "Delete",
		}
	}
	return DeleteAction{
		Kind:        DeleteUser,
		UserID:      row.ID,
		Title:       "Delete User",
		Description: "Are you sure you want to delete this user? All their hobbies will also be deleted. This action cannot be undone.",
		ConfirmText: "Delete",
	}
}

// ButtonLabel is the text of the row's delete button.
func (a DeleteAction) ButtonLabel() string {
	if a.Kind == DeleteHobby {
		return "Hobby"
	}
	return "User"
}

// Execute runs the confirmed action.
func (a DeleteAction) Execute(ctx context.Context, d Deleter) error {
	switch a.Kind {
	case DeleteHobby:
		return d.DeleteHobby(ctx, a.UserID, a.Hobby)
	case DeleteUser:
		return d.DeleteUser(ctx, a.UserID)
	default:
		return fmt.Errorf("unknown delete action %q", a.Kind)
	}
}
