package entities

import "time"

// User нужен только как источник идентификации (uid+email) для аудита.
type User struct {
	ID           uint64     `json:"id" db:"id"`
	Fio          string     `json:"fio" db:"fio"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	CreatedAt    *time.Time `json:"created_at" db:"created_at"`
}
