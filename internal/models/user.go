package models

// User is the account object returned alongside a bearer token on login.
type User struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Session pairs a bearer token with the user it belongs to. It is the only
// durable client-local state.
type Session struct {
	Token string `json:"access_token"`
	User  *User  `json:"user"`
}
