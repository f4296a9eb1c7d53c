package entity

import "time"

// Fornecedor representa um fornecedor de produtos (opcional em notas de entrada).
type Fornecedor struct {
	ID        string
	Nome      string
	CNPJ      string
	Endereco  string
	Telefone  string
	Email     string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
