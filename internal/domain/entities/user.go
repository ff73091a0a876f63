package entities

// UserType distinguishes the two connected profiles of the app.

type UserType string

const (
	UserTypeEmployee UserType = "Employee"
	UserTypeAdmin    UserType = "Admin"
)

// User is the pre-existing authenticated-user record.
//
// Storage model (DynamoDB):
//   - PK: email
//
// The service only ever reads it (once per request) to resolve the submitting
// employee's email and the Employee/Admin profile. It never writes it.

type User struct {
	Type  UserType `json:"type"`
	Email string   `json:"email"`
}

// IsAdmin reports whether the user may use the review endpoints.
func (u User) IsAdmin() bool {
	return u.Type == UserTypeAdmin
}
