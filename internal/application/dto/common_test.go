package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	casos := []struct {
		nome   string
		in     PageRequest
		page   int
		limit  int
		offset int
	}{
		{nome: "padrões", in: PageRequest{}, page: 1, limit: 20, offset: 0},
		{nome: "página negativa", in: PageRequest{Page: -3, Limit: 10}, page: 1, limit: 10, offset: 0},
		{nome: "limite acima do teto", in: PageRequest{Page: 2, Limit: 500}, page: 2, limit: 100, offset: 100},
		{nome: "valores válidos", in: PageRequest{Page: 3, Limit: 25}, page: 3, limit: 25, offset: 50},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			c.in.Normalize()
			assert.Equal(t, c.page, c.in.Page)
			assert.Equal(t, c.limit, c.in.Limit)
			assert.Equal(t, c.offset, c.in.Offset())
		})
	}
}

func TestNewPagination_ArredondaParaCima(t *testing.T) {
	p := NewPagination(1, 20, 41)
	assert.Equal(t, 3, p.TotalPages, "41 itens em páginas de 20 são 3 páginas")

	p = NewPagination(1, 20, 40)
	assert.Equal(t, 2, p.TotalPages)

	p = NewPagination(1, 20, 0)
	assert.Equal(t, 0, p.TotalPages)
}
