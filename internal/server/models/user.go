// Package models holds the persisted record types of the delivery domain.
package models

// User is a registered account. Login is unique, email-shaped, and doubles
// as the token subject. Password holds the bcrypt hash and is never
// serialized outward.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"-"`
	Photo    string `json:"photo,omitempty"`
}

// UserSession is the login response body. Password is always cleared before
// the session leaves the service; Token carries the "Bearer " prefix.
type UserSession struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Photo    string `json:"photo,omitempty"`
	Token    string `json:"token"`
}
