package models

// User is a platform user account. Users are seeded once at startup and are
// never created, updated, or deleted through the API.
type User struct {
	// ID is the unique identifier for the user, assigned at seed time.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Role is a free-form role label, e.g. "admin" or "data-scientist".
	Role string `json:"role"`
}
