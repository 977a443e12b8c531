// Package models contains the database row types shared by repositories and
// services.
package models

import "time"

// User is an authenticatable account. Password holds the bcrypt hash, never
// the plaintext. CreatedBy references the leader who created the account and
// is nil for bootstrapped accounts.
type User struct {
	ID        int64
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	BirthDate string
	IsLeader  bool
	CreatedBy *int64
	CreatedAt time.Time
}
