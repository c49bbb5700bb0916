// Package models defines the records exchanged with the sportactive backend
// and the derivation rules computed on top of them.
package models

// UserRecord is the authenticated user as returned by the backend.
// The Token field carries the bearer token issued on login; the record is
// persisted as a whole under the "user" storage key so the session can be
// restored across restarts.
type UserRecord struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	RealName string `json:"realName"`
	Token    string `json:"token,omitempty"`
}

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewUser is the registration request payload.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	RealName string `json:"realName,omitempty"`
}

// UserPatch carries profile fields to update. Zero values are omitted so the
// backend only touches what was provided.
type UserPatch struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	RealName string `json:"realName,omitempty"`
}
