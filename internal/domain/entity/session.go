package entity

import "time"

// Session é uma sessão autenticada: token opaco com expiração absoluta contada
// a partir da criação. Removida no logout ou ao ser detectada expirada.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expirada informa se a sessão já passou do prazo no instante dado.
// No instante exato de ExpiresAt a sessão ainda vale.
func (s *Session) Expirada(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
