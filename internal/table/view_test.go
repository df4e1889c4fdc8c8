package table

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func sampleRows() []Row {
	return []Row{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Address: ptr("12 St James's Square"), Hobbies: ptr("Mathematics")},
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Address: ptr("12 St James's Square"), Hobbies: ptr("Poetry")},
		{ID: 2, FirstName: "Alan", LastName: "Turing", PhoneNumber: ptr("555-0142"), Hobbies: ptr("Running")},
		{ID: 3, FirstName: "Grace", LastName: "Hopper"},
		{ID: 4, FirstName: "Edsger", LastName: "Dijkstra", Hobbies: ptr("")},
	}
}

func numberedRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		name := fmt.Sprintf("User%02d", i)
		if i%3 == 0 {
			name = fmt.Sprintf("Match%02d", i)
		}
		rows[i] = Row{ID: uint64(i + 1), FirstName: name, LastName: "Test"}
	}
	return rows
}

func TestView_Defaults(t *testing.T) {
	v := NewView(sampleRows())
	require.Equal(t, FilterAll, v.Filter())
	require.Equal(t, DefaultPageSize, v.PageSize())
	require.Equal(t, 1, v.CurrentPage())
	require.False(t, v.HasActiveFilters())
	require.Len(t, v.PageRows(), 5)
	require.Equal(t, "5 of 5 records", v.Summary())
}

func TestView_Filter(t *testing.T) {
	v := NewView(sampleRows())

	v.SetFilter(FilterWithHobbies)
	require.Len(t, v.Filtered(), 3)

	v.SetFilter(FilterNoHobbies)
	ids := []uint64{}
	for _, row := range v.Filtered() {
		ids = append(ids, row.ID)
	}
	require.Equal(t, []uint64{3, 4}, ids)
	require.True(t, v.HasActiveFilters())
}

func TestView_SearchAcrossFields(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"  LOVELACE ", 2},
		{"james", 2},
		{"0142", 1},
		{"poe", 1},
		{"grace", 1},
		{"   ", 5},
		{"nobody", 0},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			v := NewView(sampleRows())
			v.SetSearch(tc.query)
			require.Len(t, v.Filtered(), tc.want)
		})
	}
}

func TestView_FilterThenSearch(t *testing.T) {
	v := NewView(sampleRows())
	v.SetFilter(FilterNoHobbies)
	v.SetSearch("ada")
	require.Empty(t, v.Filtered())
	require.Equal(t, "0 of 5 records", v.Summary())
	require.Equal(t, "Page 1 of 1", v.PageLabel())

	v.ClearFilters()
	require.False(t, v.HasActiveFilters())
	require.Len(t, v.Filtered(), 5)
}

func TestView_PaginationOverSearchResults(t *testing.T) {
	const n = 40
	for _, size := range PageSizeOptions {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			v := NewView(numberedRows(n))
			require.NoError(t, v.SetPageSize(size))
			v.SetSearch("match")

			m := len(v.Filtered())
			require.Equal(t, 14, m)
			require.Len(t, v.PageRows(), min(size, m))
			require.Equal(t, (m+size-1)/size, v.Pagination().TotalPages)
		})
	}
}

func TestView_PageNavigationAndResets(t *testing.T) {
	v := NewView(numberedRows(23))
	require.NoError(t, v.SetPageSize(5))
	require.Equal(t, 5, v.Pagination().TotalPages)

	v.PrevPage()
	require.Equal(t, 1, v.CurrentPage())

	v.SetPage(5)
	require.Equal(t, 5, v.CurrentPage())
	require.Len(t, v.PageRows(), 3)
	require.Equal(t, uint64(21), v.PageRows()[0].ID)

	v.NextPage()
	require.Equal(t, 5, v.CurrentPage())

	v.SetPage(3)
	v.SetSearch("")
	require.Equal(t, 1, v.CurrentPage())

	v.SetPage(3)
	v.SetFilter(FilterAll)
	require.Equal(t, 1, v.CurrentPage())

	v.SetPage(3)
	require.NoError(t, v.SetPageSize(10))
	require.Equal(t, 1, v.CurrentPage())

	require.Error(t, v.SetPageSize(7))
	require.Equal(t, 10, v.PageSize())
}

func TestView_PageClampedWhenRowsShrink(t *testing.T) {
	v := NewView(numberedRows(12))
	require.NoError(t, v.SetPageSize(5))
	v.SetPage(3)
	require.Equal(t, 3, v.CurrentPage())

	v.SetRows(numberedRows(6))
	require.Equal(t, 2, v.CurrentPage())
	require.Len(t, v.PageRows(), 1)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("With-Hobbies")
	require.NoError(t, err)
	require.Equal(t, FilterWithHobbies, f)

	f, err = ParseFilter("")
	require.NoError(t, err)
	require.Equal(t, FilterAll, f)

	_, err = ParseFilter("some-hobbies")
	require.Error(t, err)
}

type recordingDeleter struct {
	calls []string
	err   error
}

func (d *recordingDeleter) DeleteUser(_ context.Context, id uint64) error {
	d.calls = append(d.calls, fmt.Sprintf("user %d", id))
	return d.err
}

func (d *recordingDeleter) DeleteHobby(_ context.Context, userID uint64, hobby string) error {
	d.calls = append(d.calls, fmt.Sprintf("hobby %d %s", userID, hobby))
	return d.err
}

func TestDeleteActionFor(t *testing.T) {
	rows := sampleRows()

	hobby := DeleteActionFor(rows[1])
	require.Equal(t, DeleteHobby, hobby.Kind)
	require.Equal(t, "Delete Hobby", hobby.Title)
	require.Equal(t, `Are you sure you want to delete the hobby "Poetry"? This action cannot be undone.`, hobby.Description)
	require.Equal(t, "Hobby", hobby.ButtonLabel())

	user := DeleteActionFor(rows[3])
	require.Equal(t, DeleteUser, user.Kind)
	require.Equal(t, "Delete User", user.Title)
	require.Equal(t, "Are you sure you want to delete this user? All their hobbies will also be deleted. This action cannot be undone.", user.Description)

	require.Equal(t, DeleteUser, DeleteActionFor(rows[4]).Kind)

	d := &recordingDeleter{}
	require.NoError(t, hobby.Execute(context.Background(), d))
	require.NoError(t, user.Execute(context.Background(), d))
	require.Equal(t, []string{"hobby 1 Poetry", "user 3"}, d.calls)

	d.err = errors.New("boom")
	require.ErrorIs(t, user.Execute(context.Background(), d), d.err)
}
