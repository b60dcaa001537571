package model

import "time"

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// ResetRecord is a one-time password-reset code issued to an email.
type ResetRecord struct {
	Email     string    `firestore:"email,omitempty"`
	Code      string    `firestore:"code,omitempty"`
	Reference string    `firestore:"reference,omitempty"`
	IsUsed    string    `firestore:"is_used,omitempty"` // "0" unused, "1" used
	CreatedAt time.Time `firestore:"createdat,omitempty"`
	ExpiresAt time.Time `firestore:"expiresat,omitempty"`
}
