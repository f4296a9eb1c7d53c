package dto

import "time"

// RegisterRequest corpo de POST /auth/register.
type RegisterRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginRequest corpo de POST /auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginUser dados resumidos do usuário autenticado na resposta de login.
type LoginUser struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}

// LoginResponse resposta de POST /auth/login.
type LoginResponse struct {
	Success bool      `json:"success"`
	User    LoginUser `json:"user"`
	Token   string    `json:"token"`
}

// CheckSessionResponse resposta de GET /auth/check-session.
type CheckSessionResponse struct {
	LoggedIn  bool   `json:"logged_in"`
	UserID    string `json:"user_id,omitempty"`
	UserLogin string `json:"user_login,omitempty"`
}

// MeResponse resposta de GET /auth/me.
type MeResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Active       bool      `json:"active"`
	UltimoAcesso time.Time `json:"ultimoAcesso"`
}

// UpdateProfileRequest corpo de PUT /auth/profile.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileResponse dados do perfil atualizado.
type ProfileResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
