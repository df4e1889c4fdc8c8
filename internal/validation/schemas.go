package validation

// Length bounds shared by the API and the client forms.
const (
	MaxNameLength    = 50
	MaxAddressLength = 200
	MaxPhoneLength   = 20
	MaxHobbyLength   = 100
)

var (
	firstNameRules = []Rule{
		Required("First name is required"),
		String("First name must be a string"),
		MaxLen(MaxNameLength, "First name must be less than 50 characters"),
	}
	lastNameRules = []Rule{
		Required("Last name is required"),
		String("Last name must be a string"),
		MaxLen(MaxNameLength, "Last name must be less than 50 characters"),
	}
	addressRules = []Rule{
		String("Address must be a string"),
		MaxLen(MaxAddressLength, "Address must be less than 200 characters"),
	}
	phoneRules = []Rule{
		String("Phone number must be a string"),
		MaxLen(MaxPhoneLength, "Phone number must be less than 20 characters"),
	}
	hobbyRules = []Rule{
		Required("Hobby is required"),
		String("Hobby must be a string"),
		MaxLen(MaxHobbyLength, "Hobby must be less than 100 characters"),
	}
)

// CreateUser validates POST /users bodies and the user form.
var CreateUser = Schema{Fields: []Field{
	{Name: "first_name", Rules: firstNameRules},
	{Name: "last_name", Rules: lastNameRules},
	{Name: "address", Rules: addressRules},
	{Name: "phone_number", Rules: phoneRules},
}}

// CreateHobby validates POST /hobbies bodies.
var CreateHobby = Schema{Fields: []Field{
	{Name: "user_id", Rules: []Rule{
		Required("User ID is required"),
		Number("User ID must be a number"),
		Integer("User ID must be an integer"),
		SafeInteger("User ID is too large"),
		Positive("User ID must be positive"),
	}},
	{Name: "hobbies", Rules: hobbyRules},
}}

// HobbyForm validates the hobby form, where the user comes from a picker.
var HobbyForm = Schema{Fields: []Field{
	{Name: "user_id", Rules: []Rule{
		Required("Please select a user"),
		Number("Please select a user"),
		Integer("Please select a user"),
		SafeInteger("Please select a user"),
		Positive("Please select a user"),
	}},
	{Name: "hobbies", Rules: hobbyRules},
}}

// PathID validates a numeric path parameter.
func PathID(name string) Schema {
	return Schema{Fields: []Field{
		{Name: name, Rules: []Rule{
			Required(name + " is required"),
			Number(name + " must be a number"),
			Integer(name + " must be an integer"),
			SafeInteger(name + " is too large"),
			Positive(name + " must be positive"),
		}},
	}}
}
