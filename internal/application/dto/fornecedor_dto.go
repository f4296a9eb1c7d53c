package dto

import (
	"time"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// CreateFornecedorRequest corpo de POST /fornecedores.
type CreateFornecedorRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// FornecedorResponse representação de um fornecedor nas respostas.
type FornecedorResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Endereco  string    `json:"endereco"`
	Telefone  string    `json:"telefone"`
	Email     string    `json:"email"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FornecedorListResponse resposta de GET /fornecedores.
type FornecedorListResponse struct {
	Fornecedores []FornecedorResponse `json:"fornecedores"`
	Pagination   Pagination           `json:"pagination"`
}

// ToFornecedorResponse converte a entidade para o DTO de resposta.
func ToFornecedorResponse(f *entity.Fornecedor) *FornecedorResponse {
	if f == nil {
		return nil
	}
	return &FornecedorResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		CNPJ:      f.CNPJ,
		Endereco:  f.Endereco,
		Telefone:  f.Telefone,
		Email:     f.Email,
		Ativo:     f.Ativo,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
