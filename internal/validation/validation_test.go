package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateUser_Valid(t *testing.T) {
	errs := CreateUser.Validate(map[string]any{
		"first_name":   " Ada ",
		"last_name":    "Lovelace",
		"address":      "",
		"phone_number": nil,
	})
	require.Nil(t, errs)
}

func TestCreateUser_ReportsEveryField(t *testing.T) {
	errs := CreateUser.Validate(map[string]any{
		"first_name":   "   ",
		"address":      strings.Repeat("a", MaxAddressLength+1),
		"phone_number": 12345,
	})

	require.Equal(t, Errors{
		{Field: "first_name", Message: "First name is required"},
		{Field: "last_name", Message: "Last name is required"},
		{Field: "address", Message: "Address must be less than 200 characters"},
		{Field: "phone_number", Message: "Phone number must be a string"},
	}, errs)
	require.Contains(t, errs.Error(), "last_name: Last name is required")
}

func TestMaxLen_CountsRunesAfterTrim(t *testing.T) {
	name := strings.Repeat("é", MaxNameLength)
	errs := CreateUser.Validate(map[string]any{"first_name": "  " + name + "  ", "last_name": "x"})
	require.Nil(t, errs)

	errs = CreateUser.Validate(map[string]any{"first_name": name + "é", "last_name": "x"})
	require.Equal(t, "First name must be less than 50 characters", errs.Messages()["first_name"])
}

func TestCreateHobby_UserID(t *testing.T) {
	cases := []struct {
		name    string
		userID  any
		message string
	}{
		{"missing", nil, "User ID is required"},
		{"not a number", "abc", "User ID must be a number"},
		{"fraction", json.Number("1.5"), "User ID must be an integer"},
		{"negative", json.Number("-3"), "User ID must be positive"},
		{"zero", float64(0), "User ID must be positive"},
		{"infinity", "Infinity", "User ID must be a number"},
		{"inf number", json.Number("Inf"), "User ID must be a number"},
		{"overflowing exponent", json.Number("1e400"), "User ID must be a number"},
		{"hex", "0x10", "User ID must be a number"},
		{"beyond uint64", "99999999999999999999", "User ID is too large"},
		{"beyond safe range", json.Number("9007199254740993"), "User ID is too large"},
		{"largest safe id", json.Number("9007199254740991"), ""},
		{"numeric string", "7", ""},
		{"json number", json.Number("7"), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := map[string]any{"hobbies": "Chess"}
			if tc.userID != nil {
				values["user_id"] = tc.userID
			}
			errs := CreateHobby.Validate(values)
			if tc.message == "" {
				require.Nil(t, errs)
				return
			}
			require.Equal(t, tc.message, errs.Messages()["user_id"])
		})
	}
}

func TestHobbyForm_SelectUserMessage(t *testing.T) {
	errs := HobbyForm.Validate(map[string]any{"user_id": "", "hobbies": ""})
	require.Equal(t, map[string]string{
		"user_id": "Please select a user",
		"hobbies": "Hobby is required",
	}, errs.Messages())
}

func TestHelpers(t *testing.T) {
	values := map[string]any{"name": "  Ada  ", "id": json.Number("42"), "bad": "x"}
	require.Equal(t, "Ada", TrimmedString(values, "name"))
	require.Equal(t, "", TrimmedString(values, "missing"))
	require.Equal(t, uint64(42), Uint(values, "id"))
	require.Equal(t, uint64(0), Uint(values, "bad"))
}

func TestPathID(t *testing.T) {
	require.Nil(t, PathID("userId").Validate(map[string]any{"userId": "12"}))

	cases := map[string]string{
		"twelve":               "userId must be a number",
		"Inf":                  "userId must be a number",
		"NaN":                  "userId must be a number",
		"1e400":                "userId must be a number",
		"0x10":                 "userId must be a number",
		"0x1p3":                "userId must be a number",
		"99999999999999999999": "userId is too large",
		"-4":                   "userId must be positive",
	}
	for raw, message := range cases {
		t.Run(raw, func(t *testing.T) {
			errs := PathID("userId").Validate(map[string]any{"userId": raw})
			require.Equal(t, message, errs.Messages()["userId"])
		})
	}
}

func TestUint_RejectsUnsafeValues(t *testing.T) {
	require.Equal(t, uint64(MaxSafeInteger), Uint(map[string]any{"id": json.Number("9007199254740991")}, "id"))
	require.Equal(t, uint64(0), Uint(map[string]any{"id": "99999999999999999999"}, "id"))
	require.Equal(t, uint64(0), Uint(map[string]any{"id": "Inf"}, "id"))
	require.Equal(t, uint64(0), Uint(map[string]any{"id": "0x1p3"}, "id"))
}
