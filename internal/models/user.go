package models

// User is the identity stored in the session after an OIDC login.
type User struct {
	Sub     string `json:"sub"` // OIDC subject identifier
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// DisplayName returns the best human-readable name for the user.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return u.Sub
}
