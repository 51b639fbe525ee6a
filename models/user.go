package models

// User is the snapshot of the signed-in account returned by the backend.
// The client never derives authority from it; it exists for display and for
// gating admin-only pages.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the snapshot carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// AuthResponse is the payload returned on successful login or on completing
// phone verification during registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
