package entity

import "time"

// User representa um usuário do sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca em claro depois de persistir
	Name         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
