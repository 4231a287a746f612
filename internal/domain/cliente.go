package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	cpfRe   = regexp.MustCompile(`^\d{11}$`)
	emailRe = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@.+$`)
)

// Cliente es la raíz de agregado. ID es la identidad asignada por el storage,
// ClienteID la identidad de negocio (UUID generado una sola vez).
type Cliente struct {
	ID                    string
	ClienteID             string
	Nome                  string
	Email                 string
	CPF                   string
	Telefone              string
	Endereco              *Endereco
	Ativo                 bool
	DataCadastro          time.Time
	DataUltimaAtualizacao time.Time
	Versao                int
	Metadata              *Metadata
}

func NewCliente(nome, email, cpf string) *Cliente {
	now := time.Now()
	c := &Cliente{
		Nome:                  nome,
		Email:                 email,
		CPF:                   cpf,
		Ativo:                 true,
		DataCadastro:          now,
		DataUltimaAtualizacao: now,
	}
	c.GenerateClienteIDIfNeeded()
	return c
}

// GenerateClienteIDIfNeeded asigna un UUID nuevo sólo si todavía no hay uno.
func (c *Cliente) GenerateClienteIDIfNeeded() {
	if c.ClienteID == "" {
		c.ClienteID = uuid.New().String()
	}
}

func (c *Cliente) UpdateTimestamp() {
	c.DataUltimaAtualizacao = time.Now()
}

// Desativar es el soft delete: apaga el flag y deja constancia en metadata.
func (c *Cliente) Desativar() {
	c.Ativo = false
	if c.Metadata == nil {
		c.Metadata = NewMetadata()
	}
	now := time.Now()
	c.Metadata.DataDesativacao = &now
	c.UpdateTimestamp()
}

// Reativar no crea metadata si nunca existió.
func (c *Cliente) Reativar() {
	c.Ativo = true
	if c.Metadata != nil {
		c.Metadata.DataDesativacao = nil
	}
	c.UpdateTimestamp()
}

func (c *Cliente) IsAtivo() bool {
	return c.Ativo
}

func (c *Cliente) IsCPFValido() bool {
	return cpfRe.MatchString(c.CPF)
}

func (c *Cliente) IsEmailValido() bool {
	return emailRe.MatchString(c.Email)
}

func (c *Cliente) IsValido() bool {
	return c.Nome != "" && c.Email != "" && c.CPF != "" &&
		c.IsCPFValido() && c.IsEmailValido()
}

func (c *Cliente) AdicionarTag(tag string) {
	if c.Metadata == nil {
		c.Metadata = NewMetadata()
	}
	c.Metadata.AdicionarTag(tag)
}

func (c *Cliente) RemoverTag(tag string) {
	if c.Metadata != nil {
		c.Metadata.RemoverTag(tag)
	}
}

func (c *Cliente) HasTag(tag string) bool {
	return c.Metadata != nil && c.Metadata.HasTag(tag)
}
