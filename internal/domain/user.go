package domain

import (
	"strings"
	"time"
)

type Company struct {
	ID          int64
	UserID      int64
	Name        string
	Email       string
	Phone       *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// User's Company is nil for the explicit "no company" state, never a
// zero-value struct.
type User struct {
	Email     string
	FirstName string
	LastName  string
	Company   *Company
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// AuthResult is the raw outcome of a login/register call.
type AuthResult struct {
	Token string
}
