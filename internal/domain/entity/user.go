package entity

import (
	"github.com/wadoud17/maktabati-pos/internal/domain/enum"
)

// User represents the authenticated identity as returned by the backend.
// Field tags match the backend's wire format; the client does not own the
// contract.
type User struct {
	ID        int       `json:"id"`
	LastName  string    `json:"nom"`
	FirstName string    `json:"prenom"`
	Login     string    `json:"login"`
	Role      enum.Role `json:"typeUser"`
	// Token is the bearer token issued at signin, when the backend provides
	// one. It is persisted with the identity and attached to API calls.
	Token string `json:"token,omitempty"`
}

// FullName returns the display name for the user.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
