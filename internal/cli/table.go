package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/user-hobbies-api/internal/dto"
	"github.com/yukikurage/user-hobbies-api/internal/table"
)

func newTableCommand(a *app) *cobra.Command {
	var (
		search    string
		filter    string
		page      int
		pageSize  int
		deleteRow int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the users & hobbies table.",
		Long: `Show one page of the joined users & hobbies listing.

--search matches first name, last name, address, phone number and hobby
case-insensitively. --delete-row N deletes what the delete button of row N
on the shown page removes: the hobby on hobby rows, the user otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := table.ParseFilter(filter)
			if err != nil {
				return err
			}

			rows, err := a.queries.UsersWithHobbies(cmd.Context())
			if err != nil {
				return err
			}

			view := table.NewView(rows)
			view.SetSearch(search)
			view.SetFilter(f)
			if err := view.SetPageSize(pageSize); err != nil {
				return err
			}
			view.SetPage(page)

			if deleteRow == 0 {
				return renderView(a.stdout, view)
			}

			visible := view.PageRows()
			if deleteRow < 1 || deleteRow > len(visible) {
				return fmt.Errorf("row %d is not on page %d (it has %d rows)", deleteRow, view.CurrentPage(), len(visible))
			}

			// The subscription refreshes the view once the delete invalidates the listing.
			var refreshErr error
			unsubscribe := a.queries.OnUsersWithHobbies(func(rows []dto.UserWithHobbiesDTO, err error) {
				if err != nil {
					refreshErr = err
					return
				}
				view.SetRows(rows)
			})
			defer unsubscribe()

			deleted, err := a.runDelete(cmd.Context(), table.DeleteActionFor(visible[deleteRow-1]))
			if err != nil || !deleted {
				return err
			}
			if refreshErr != nil {
				return refreshErr
			}
			return renderView(a.stdout, view)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&search, "search", "", "Case-insensitive search text.")
	flags.StringVar(&filter, "filter", string(table.FilterAll), "Row filter: all, with-hobbies or no-hobbies.")
	flags.IntVar(&page, "page", table.MinPage, "Page to show.")
	flags.IntVar(&pageSize, "page-size", table.DefaultPageSize, "Rows per page: 5, 10, 25 or 50.")
	flags.IntVar(&deleteRow, "delete-row", 0, "Delete the given row of the shown page.")
	return cmd
}
