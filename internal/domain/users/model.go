package users

import "time"

// User es la cuenta del paciente. Email se guarda normalizado (trim + lower).
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
