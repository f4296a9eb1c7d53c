package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FormatoHexDe64Caracteres(t *testing.T) {
	tok, err := New()
	require.NoError(t, err)

	assert.Len(t, tok, 64, "32 bytes aleatórios em hex são 64 caracteres")
	_, err = hex.DecodeString(tok)
	assert.NoError(t, err, "o token deve ser hex válido")
}

func TestNew_TokensDistintos(t *testing.T) {
	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := New()
		require.NoError(t, err)
		assert.False(t, vistos[tok], "tokens não podem se repetir")
		vistos[tok] = true
	}
}
