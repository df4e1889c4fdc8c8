// Package table is the view model behind the users & hobbies table: filter,
// search and pagination over the joined listing, plus delete actions per row.
package table

import (
	"fmt"
	"strings"

	"github.com/yukikurage/user-hobbies-api/internal/dto"
)

// Row is one line of the joined users/hobbies listing.
type Row = dto.UserWithHobbiesDTO

// Filter selects rows by whether they carry a hobby.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterWithHobbies Filter = "with-hobbies"
	FilterNoHobbies   Filter = "no-hobbies"
)

// ParseFilter accepts the filter names used on the command line and in URLs.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterWithHobbies, FilterNoHobbies:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q (want all, with-hobbies or no-hobbies)", s)
	}
}

// View holds the full listing and the current table state.
type View struct {
	rows     []Row
	search   string
	filter   Filter
	page     int
	pageSize int
}

// NewView starts on page 1 with no search, the "all" filter and the default page size.
func NewView(rows []Row) *View {
	return &View{
		rows:     rows,
		filter:   FilterAll,
		page:     MinPage,
		pageSize: DefaultPageSize,
	}
}

// SetRows replaces the listing, for example after a refetch. The table state is kept.
func (v *View) SetRows(rows []Row) {
	v.rows = rows
}

// Rows returns the unfiltered listing.
func (v *View) Rows() []Row {
	return v.rows
}

func (v *View) Search() string   { return v.search }
func (v *View) Filter() Filter   { return v.filter }
func (v *View) PageSize() int    { return v.pageSize }
func (v *View) CurrentPage() int { return v.Pagination().Page }

// SetSearch changes the search text and returns to page 1.
func (v *View) SetSearch(query string) {
	v.search = query
	v.page = MinPage
}

// SetFilter changes the filter and returns to page 1.
func (v *View) SetFilter(f Filter) {
	v.filter = f
	v.page = MinPage
}

// SetPageSize changes the page size and returns to page 1.
func (v *View) SetPageSize(size int) error {
	if !ValidPageSize(size) {
		return fmt.Errorf("page size %d is not one of %v", size, PageSizeOptions)
	}
	v.pageSize = size
	v.page = MinPage
	return nil
}

// SetPage moves to page n, clamped to the available pages.
func (v *View) SetPage(n int) {
	v.page = GetPaginationParams(n, v.pageSize, len(v.Filtered())).Page
}

// NextPage moves forward one page unless already on the last one.
func (v *View) NextPage() { v.SetPage(v.CurrentPage() + 1) }

// PrevPage moves back one page unless already on the first one.
func (v *View) PrevPage() { v.SetPage(v.CurrentPage() - 1) }

// ClearFilters resets search and filter and returns to page 1.
func (v *View) ClearFilters() {
	v.search = ""
	v.filter = FilterAll
	v.page = MinPage
}

// HasActiveFilters reports whether search text or a filter narrows the listing.
func (v *View) HasActiveFilters() bool {
	return strings.TrimSpace(v.search) != "" || v.filter != FilterAll
}

// Filtered applies the filter and then the search, keeping listing order.
func (v *View) Filtered() []Row {
	query := strings.ToLower(strings.TrimSpace(v.search))

	out := make([]Row, 0, len(v.rows))
	for _, row := range v.rows {
		switch v.filter {
		case FilterWithHobbies:
			if !HasHobby(row) {
				continue
			}
		case FilterNoHobbies:
			if HasHobby(row) {
				continue
			}
		}
		if query != "" && !matches(row, query) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Pagination describes the current page of the filtered rows.
func (v *View) Pagination() Pagination {
	total := len(v.Filtered())
	params := GetPaginationParams(v.page, v.pageSize, total)
	return Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: TotalPages(total, params.Limit),
	}
}

// PageRows returns the rows visible on the current page.
func (v *View) PageRows() []Row {
	filtered := v.Filtered()
	return pageOf(filtered, GetPaginationParams(v.page, v.pageSize, len(filtered)))
}

// Summary is the "N of M records" caption.
func (v *View) Summary() string {
	noun := "records"
	if len(v.rows) == 1 {
		noun = "record"
	}
	return fmt.Sprintf("%d of %d %s", len(v.Filtered()), len(v.rows), noun)
}

// PageLabel is the "Page X of Y" caption. An empty result still reads "Page 1 of 1".
func (v *View) PageLabel() string {
	p := v.Pagination()
	return fmt.Sprintf("Page %d of %d", p.Page, max(p.TotalPages, 1))
}

// HasHobby reports whether the row pairs a user with a hobby.
func HasHobby(row Row) bool {
	return row.Hobbies != nil && *row.Hobbies != ""
}

func matches(row Row, query string) bool {
	fields := []*string{&row.FirstName, &row.LastName, row.Address, row.PhoneNumber, row.Hobbies}
	for _, field := range fields {
		if field != nil && strings.Contains(strings.ToLower(*field), query) {
			return true
		}
	}
	return false
}
