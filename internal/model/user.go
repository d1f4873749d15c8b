package model

// User is a storefront customer. Email is unique and doubles as the login
// identifier.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Locale Locale `json:"locale,omitempty"`
}

// Session binds a user to an opaque bearer token. The token may be a session
// id, a customer access token, etc., depending on the backend.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
