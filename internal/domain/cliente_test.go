package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCliente(t *testing.T) {
	c := NewCliente("João Silva", "joao@x.com", "12345678901")

	assert.NotEmpty(t, c.ClienteID)
	assert.True(t, c.Ativo)
	assert.False(t, c.DataCadastro.IsZero())
	assert.False(t, c.DataUltimaAtualizacao.IsZero())
}

func TestGenerateClienteIDIfNeeded(t *testing.T) {
	c := &Cliente{}
	c.GenerateClienteIDIfNeeded()
	assert.NotEmpty(t, c.ClienteID)

	first := c.ClienteID
	c.GenerateClienteIDIfNeeded()
	assert.Equal(t, first, c.ClienteID, "no debe regenerar un id ya asignado")
}

func TestIsCPFValido(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"12345678901", true},
		{"1234567890", false},
		{"123456789012", false},
		{"123.456.789-01", false},
		{"1234567890a", false},
		{"", false},
	}
	for _, tt := range tests {
		c := &Cliente{CPF: tt.cpf}
		assert.Equal(t, tt.want, c.IsCPFValido(), "cpf=%q", tt.cpf)
	}
}

func TestIsEmailValido(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"joao+tag@dominio.com.br", true},
		{"a@b", true},
		{"a@", false},
		{"a.com", false},
		{"", false},
	}
	for _, tt := range tests {
		c := &Cliente{Email: tt.email}
		assert.Equal(t, tt.want, c.IsEmailValido(), "email=%q", tt.email)
	}
}

func TestIsValido(t *testing.T) {
	base := func() *Cliente {
		return &Cliente{Nome: "João", Email: "joao@x.com", CPF: "12345678901"}
	}

	assert.True(t, base().IsValido())

	c := base()
	c.Nome = ""
	assert.False(t, c.IsValido())

	c = base()
	c.Email = ""
	assert.False(t, c.IsValido())

	c = base()
	c.CPF = ""
	assert.False(t, c.IsValido())

	c = base()
	c.CPF = "123"
	assert.False(t, c.IsValido())

	c = base()
	c.Email = "sin-arroba"
	assert.False(t, c.IsValido())
}

func TestDesativarReativarRoundTrip(t *testing.T) {
	c := NewCliente("João", "joao@x.com", "12345678901")

	for i := 0; i < 3; i++ {
		c.Desativar()
		assert.False(t, c.IsAtivo())
		assert.NotNil(t, c.Metadata)
		assert.NotNil(t, c.Metadata.DataDesativacao)
		assert.True(t, c.Metadata.IsDesativado())

		c.Reativar()
		assert.True(t, c.IsAtivo())
		assert.Nil(t, c.Metadata.DataDesativacao)
	}
}

func TestDesativarCriaMetadataSiNoExiste(t *testing.T) {
	c := &Cliente{Nome: "João"}
	assert.Nil(t, c.Metadata)

	c.Desativar()

	assert.NotNil(t, c.Metadata)
	assert.NotNil(t, c.Metadata.DataDesativacao)
}

func TestReativarNoCreaMetadata(t *testing.T) {
	c := &Cliente{}
	c.Reativar()

	assert.True(t, c.IsAtivo())
	assert.Nil(t, c.Metadata, "reativar no debe crear metadata")
}

func TestTagsDelegadas(t *testing.T) {
	c := &Cliente{}

	assert.False(t, c.HasTag("vip"))
	c.RemoverTag("vip") // no-op sin metadata

	c.AdicionarTag("vip")
	assert.NotNil(t, c.Metadata)
	assert.True(t, c.HasTag("vip"))

	c.AdicionarTag("vip")
	assert.Len(t, c.Metadata.Tags, 1)

	c.RemoverTag("vip")
	assert.False(t, c.HasTag("vip"))
}

func TestUpdateTimestamp(t *testing.T) {
	c := &Cliente{}
	assert.True(t, c.DataUltimaAtualizacao.IsZero())

	c.UpdateTimestamp()
	assert.False(t, c.DataUltimaAtualizacao.IsZero())
}
