// Package models defines the data models persisted in the database and the
// read-side view structs returned by joins.
package models

import "time"

// Account is a registered shop account. Identifier is the unique login
// handle; PasswordHash holds a bcrypt hash, never the plaintext secret.
type Account struct {
	ID           string
	Identifier   string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountView is the caller-facing projection of an Account. It carries no
// credential material.
type AccountView struct {
	Identifier  string
	DisplayName string
}
