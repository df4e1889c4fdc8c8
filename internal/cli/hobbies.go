package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/user-hobbies-api/internal/forms"
	"github.com/yukikurage/user-hobbies-api/internal/table"
)

var hobbyFields = []string{"user_id", "hobbies"}

func newHobbiesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hobbies",
		Short: "List, add and delete hobbies.",
	}
	cmd.AddCommand(newHobbiesListCommand(a))
	cmd.AddCommand(newHobbiesAddCommand(a))
	cmd.AddCommand(newHobbiesDeleteCommand(a))
	return cmd
}

func newHobbiesListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list USER_ID",
		Short: "List the hobbies of one user.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			hobbies, err := a.api.ListHobbiesForUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			return renderHobbies(a.stdout, hobbies)
		},
	}
}

func newHobbiesAddCommand(a *app) *cobra.Command {
	var (
		userID uint64
		hobby  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a hobby to a user.",
		Long:  "Add a hobby to a user. Without --user-id the available users are listed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := forms.NewHobbyForm(a.queries)
			if userID != 0 {
				f.SelectUser(userID)
			}
			f.Hobbies = hobby

			created, err := f.Submit(cmd.Context())
			if err != nil {
				if f.FieldError("user_id") != "" {
					if listErr := printUserOptions(cmd, a, f); listErr != nil {
						return errors.Join(err, listErr)
					}
				}
				return fieldFailure(a, f, hobbyFields, err)
			}
			fmt.Fprintf(a.stdout, "Added hobby %q to user %d\n", created.Hobbies, created.UserID)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&userID, "user-id", 0, "User receiving the hobby (required).")
	cmd.Flags().StringVar(&hobby, "hobby", "", "Hobby text (required).")
	return cmd
}

func printUserOptions(cmd *cobra.Command, a *app, f *forms.HobbyForm) error {
	options, err := f.UserOptions(cmd.Context())
	if err != nil {
		return err
	}
	if len(options) == 0 {
		fmt.Fprintln(a.stderr, "No users yet. Create one with \"hobbyctl users add\".")
		return nil
	}
	fmt.Fprintln(a.stderr, "Available users:")
	for _, opt := range options {
		fmt.Fprintf(a.stderr, "  %s\t%s\n", opt.Value, opt.Label)
	}
	return nil
}

func newHobbiesDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete USER_ID HOBBY",
		Short: "Delete one hobby of a user.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if args[1] == "" {
				return errors.New("hobby must not be empty")
			}
			hobby := args[1]
			_, err = a.runDelete(cmd.Context(), table.DeleteActionFor(table.Row{ID: id, Hobbies: &hobby}))
			return err
		},
	}
}
