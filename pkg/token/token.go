// Package token gera tokens de sessão opacos com crypto/rand.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tamanho em bytes do token; 32 bytes = 64 caracteres hex.
const tokenBytes = 32

// New devolve um token opaco aleatório em hex.
func New() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("gerar token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
