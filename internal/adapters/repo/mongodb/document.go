package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phenrril/clientes/internal/domain"
)

// clienteDoc es la forma del documento en la collection "clientes". Los
// nombres de campo replican el esquema existente en el cluster.
type clienteDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	ClienteID             string             `bson:"clienteId"`
	NomeCliente           string             `bson:"nomeCliente"`
	EmailCliente          string             `bson:"emailCliente"`
	CPFCliente            string             `bson:"cpfCliente"`
	Telefone              string             `bson:"telefone,omitempty"`
	Endereco              *enderecoDoc       `bson:"endereco,omitempty"`
	Ativo                 bool               `bson:"ativo"`
	DataCadastro          time.Time          `bson:"dataCadastro"`
	DataUltimaAtualizacao time.Time          `bson:"dataUltimaAtualizacao"`
	Versao                int                `bson:"versao"`
	Metadata              *metadataDoc       `bson:"metadata,omitempty"`
}

type enderecoDoc struct {
	Rua         string `bson:"rua,omitempty"`
	Numero      string `bson:"numero,omitempty"`
	Complemento string `bson:"complemento,omitempty"`
	Bairro      string `bson:"bairro,omitempty"`
	Cidade      string `bson:"cidade,omitempty"`
	Estado      string `bson:"estado,omitempty"`
	CEP         string `bson:"cep,omitempty"`
}

type metadataDoc struct {
	Origem          string     `bson:"origem,omitempty"`
	Canal           string     `bson:"canal,omitempty"`
	Tags            []string   `bson:"tags,omitempty"`
	Notas           string     `bson:"notas,omitempty"`
	DataDesativacao *time.Time `bson:"dataDesativacao,omitempty"`
}

func toDoc(c *domain.Cliente) *clienteDoc {
	d := &clienteDoc{
		ClienteID:             c.ClienteID,
		NomeCliente:           c.Nome,
		EmailCliente:          c.Email,
		CPFCliente:            c.CPF,
		Telefone:              c.Telefone,
		Ativo:                 c.Ativo,
		DataCadastro:          c.DataCadastro,
		DataUltimaAtualizacao: c.DataUltimaAtualizacao,
		Versao:                c.Versao,
	}
	if c.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(c.ID); err == nil {
			d.ID = oid
		}
	}
	if c.Endereco != nil {
		d.Endereco = &enderecoDoc{
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
		d.Metadata = &metadataDoc{
			Origem:          c.Metadata.Origem,
			Canal:           c.Metadata.Canal,
			Tags:            c.Metadata.Tags,
			Notas:           c.Metadata.Notas,
			DataDesativacao: c.Metadata.DataDesativacao,
		}
	}
	return d
}

func toDomain(d *clienteDoc) *domain.Cliente {
	c := &domain.Cliente{
		ClienteID:             d.ClienteID,
		Nome:                  d.NomeCliente,
		Email:                 d.EmailCliente,
		CPF:                   d.CPFCliente,
		Telefone:              d.Telefone,
		Ativo:                 d.Ativo,
		DataCadastro:          d.DataCadastro,
		DataUltimaAtualizacao: d.DataUltimaAtualizacao,
		Versao:                d.Versao,
	}
	if !d.ID.IsZero() {
		c.ID = d.ID.Hex()
	}
	if d.Endereco != nil {
		c.Endereco = &domain.Endereco{
			Rua:         d.Endereco.Rua,
			Numero:      d.Endereco.Numero,
			Complemento: d.Endereco.Complemento,
			Bairro:      d.Endereco.Bairro,
			Cidade:      d.Endereco.Cidade,
			Estado:      d.Endereco.Estado,
			CEP:         d.Endereco.CEP,
		}
	}
	if d.Metadata != nil {
		c.Metadata = &domain.Metadata{
			Origem:          d.Metadata.Origem,
			Canal:           d.Metadata.Canal,
			Tags:            d.Metadata.Tags,
			Notas:           d.Metadata.Notas,
			DataDesativacao: d.Metadata.DataDesativacao,
		}
	}
	return c
}
