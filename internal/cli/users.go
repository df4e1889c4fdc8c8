package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yukikurage/user-hobbies-api/internal/forms"
	"github.com/yukikurage/user-hobbies-api/internal/table"
)

func newUsersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List, add and delete users.",
	}
	cmd.AddCommand(newUsersListCommand(a))
	cmd.AddCommand(newUsersAddCommand(a))
	cmd.AddCommand(newUsersDeleteCommand(a))
	return cmd
}

func newUsersListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every user.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := a.queries.Users(cmd.Context())
			if err != nil {
				return err
			}
			return renderUsers(a.stdout, users)
		},
	}
}

func newUsersAddCommand(a *app) *cobra.Command {
	var form forms.UserForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := forms.NewUserForm(a.queries)
			f.FirstName = form.FirstName
			f.LastName = form.LastName
			f.Address = form.Address
			f.PhoneNumber = form.PhoneNumber

			user, err := f.Submit(cmd.Context())
			if err != nil {
				return fieldFailure(a, f, userFields, err)
			}
			fmt.Fprintf(a.stdout, "Created user %d: %s %s\n", user.ID, user.FirstName, user.LastName)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.FirstName, "first-name", "", "First name (required).")
	flags.StringVar(&form.LastName, "last-name", "", "Last name (required).")
	flags.StringVar(&form.Address, "address", "", "Postal address.")
	flags.StringVar(&form.PhoneNumber, "phone", "", "Phone number.")
	return cmd
}

func newUsersDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user and all of their hobbies.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, err = a.runDelete(cmd.Context(), table.DeleteActionFor(table.Row{ID: id}))
			return err
		},
	}
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return id, nil
}

var userFields = []string{"first_name", "last_name", "address", "phone_number"}

type fieldMessages interface {
	FieldError(field string) string
}

// fieldFailure prints the form's field messages in field order and returns err.
func fieldFailure(a *app, form fieldMessages, fields []string, err error) error {
	for _, field := range fields {
		if msg := form.FieldError(field); msg != "" {
			fmt.Fprintf(a.stderr, "  %s: %s\n", field, msg)
		}
	}
	return err
}
