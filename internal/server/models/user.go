// Package models declares the persistent record types shared by
// repositories and services.
package models

import "time"

// User is one account record. PasswordHash is the bcrypt output and is the
// only credential material ever stored; the raw password never leaves the
// service layer.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
