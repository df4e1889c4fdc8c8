package cli

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/yukikurage/user-hobbies-api/internal/dto"
	"github.com/yukikurage/user-hobbies-api/internal/table"
)

const emptyCell = "-"

// newTable starts a table whose first row is the column titles.
func newTable(w io.Writer, columns []string) (*tablewriter.Table, error) {
	t := tablewriter.NewWriter(w)
	if err := t.Append(columns); err != nil {
		return nil, err
	}
	return t, nil
}

func optional(s *string) string {
	if s == nil || *s == "" {
		return emptyCell
	}
	return *s
}

func renderUsers(w io.Writer, users []dto.UserDTO) error {
	t, err := newTable(w, []string{"ID", "First Name", "Last Name", "Address", "Phone Number"})
	if err != nil {
		return err
	}
	for _, u := range users {
		if err := t.Append([]string{
			strconv.FormatUint(u.ID, 10),
			u.FirstName,
			u.LastName,
			optional(u.Address),
			optional(u.PhoneNumber),
		}); err != nil {
			return err
		}
	}
	return t.Render()
}

func renderHobbies(w io.Writer, hobbies []dto.HobbyDTO) error {
	t, err := newTable(w, []string{"ID", "Hobby", "Added"})
	if err != nil {
		return err
	}
	for _, h := range hobbies {
		if err := t.Append([]string{
			strconv.FormatUint(h.ID, 10),
			h.Hobbies,
			h.CreatedAt.Format("2006-01-02 15:04"),
		}); err != nil {
			return err
		}
	}
	return t.Render()
}

// renderView prints the current page of v followed by its captions. Rows
// are numbered within the page, which is what --delete-row refers to.
func renderView(w io.Writer, v *table.View) error {
	t, err := newTable(w, []string{"#", "First Name", "Last Name", "Address", "Phone Number", "Hobby", "Delete"})
	if err != nil {
		return err
	}
	rows := v.PageRows()
	for i, row := range rows {
		if err := t.Append([]string{
			strconv.Itoa(i + 1),
			row.FirstName,
			row.LastName,
			optional(row.Address),
			optional(row.PhoneNumber),
			optional(row.Hobbies),
			table.DeleteActionFor(row).ButtonLabel(),
		}); err != nil {
			return err
		}
	}
	if err := t.Render(); err != nil {
		return err
	}

	if len(rows) == 0 {
		if _, err := io.WriteString(w, "No results.\n"); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, v.Summary()+" | "+v.PageLabel()+" | Rows per page: "+strconv.Itoa(v.PageSize())+"\n")
	return err
}
