package httpserver

import (
	"time"

	"github.com/phenrril/clientes/internal/domain"
)

// ClienteDTO es la representación wire del cliente. La validación acá es la
// de forma del request; la regla de negocio vive en domain.Cliente.IsValido.
type ClienteDTO struct {
	ID                    string       `json:"id,omitempty"`
	ClienteID             string       `json:"clienteId,omitempty"`
	NomeCliente           string       `json:"nomeCliente" validate:"required"`
	EmailCliente          string       `json:"emailCliente" validate:"required,email"`
	CPFCliente            string       `json:"cpfCliente" validate:"required,len=11,numeric"`
	Telefone              string       `json:"telefone,omitempty"`
	Endereco              *EnderecoDTO `json:"endereco,omitempty"`
	Ativo                 *bool        `json:"ativo,omitempty"`
	DataCadastro          *time.Time   `json:"dataCadastro,omitempty"`
	DataUltimaAtualizacao *time.Time   `json:"dataUltimaAtualizacao,omitempty"`
	Versao                *int         `json:"versao,omitempty"`
	Metadata              *MetadataDTO `json:"metadata,omitempty"`
}

type EnderecoDTO struct {
	Rua         string `json:"rua,omitempty"`
	Numero      string `json:"numero,omitempty"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro,omitempty"`
	Cidade      string `json:"cidade,omitempty"`
	Estado      string `json:"estado,omitempty" validate:"omitempty,len=2,uppercase"`
	CEP         string `json:"cep,omitempty" validate:"omitempty,len=8,numeric"`
}

type MetadataDTO struct {
	Origem          string     `json:"origem,omitempty"`
	Canal           string     `json:"canal,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Notas           string     `json:"notas,omitempty"`
	DataDesativacao *time.Time `json:"dataDesativacao,omitempty"`
}

func toDomainCliente(dto *ClienteDTO) *domain.Cliente {
	c := &domain.Cliente{
		ID:        dto.ID,
		ClienteID: dto.ClienteID,
		Nome:      dto.NomeCliente,
		Email:     dto.EmailCliente,
		CPF:       dto.CPFCliente,
		Telefone:  dto.Telefone,
	}
	if dto.Ativo != nil {
		c.Ativo = *dto.Ativo
	}
	if dto.DataCadastro != nil {
		c.DataCadastro = *dto.DataCadastro
	}
	if dto.DataUltimaAtualizacao != nil {
		c.DataUltimaAtualizacao = *dto.DataUltimaAtualizacao
	}
	if dto.Versao != nil {
		c.Versao = *dto.Versao
	}
	if dto.Endereco != nil {
		c.Endereco = &domain.Endereco{
			Rua:         dto.Endereco.Rua,
			Numero:      dto.Endereco.Numero,
			Complemento: dto.Endereco.Complemento,
			Bairro:      dto.Endereco.Bairro,
			Cidade:      dto.Endereco.Cidade,
			Estado:      dto.Endereco.Estado,
			CEP:         dto.Endereco.CEP,
		}
	}
	if dto.Metadata != nil {
		c.Metadata = &domain.Metadata{
			Origem:          dto.Metadata.Origem,
			Canal:           dto.Metadata.Canal,
			Tags:            dto.Metadata.Tags,
			Notas:           dto.Metadata.Notas,
			DataDesativacao: dto.Metadata.DataDesativacao,
		}
	}
	return c
}

func toClienteDTO(c *domain.Cliente) *ClienteDTO {
	ativo := c.Ativo
	versao := c.Versao
	cadastro := c.DataCadastro
	atualizacao := c.DataUltimaAtualizacao
	dto := &ClienteDTO{
		ID:                    c.ID,
		ClienteID:             c.ClienteID,
		NomeCliente:           c.Nome,
		EmailCliente:          c.Email,
		CPFCliente:            c.CPF,
		Telefone:              c.Telefone,
		Ativo:                 &ativo,
		DataCadastro:          &cadastro,
		DataUltimaAtualizacao: &atualizacao,
		Versao:                &versao,
	}
	if c.Endereco != nil {
		dto.Endereco = &EnderecoDTO{
			Rua:         c.Endereco.Rua,
			Numero:      c.Endereco.Numero,
			Complemento: c.Endereco.Complemento,
			Bairro:      c.Endereco.Bairro,
			Cidade:      c.Endereco.Cidade,
			Estado:      c.Endereco.Estado,
			CEP:         c.Endereco.CEP,
		}
	}
	if c.Metadata != nil {
		dto.Metadata = &MetadataDTO{
			Origem:          c.Metadata.Origem,
			Canal:           c.Metadata.Canal,
			Tags:            c.Metadata.Tags,
			Notas:           c.Metadata.Notas,
			DataDesativacao: c.Metadata.DataDesativacao,
		}
	}
	return dto
}

func toClienteDTOs(clientes []domain.Cliente) []ClienteDTO {
	out := make([]ClienteDTO, 0, len(clientes))
	for i := range clientes {
		out = append(out, *toClienteDTO(&clientes[i]))
	}
	return out
}
