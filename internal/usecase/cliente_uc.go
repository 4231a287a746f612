package usecase

import (
	"context"
	"time"

	"github.com/phenrril/clientes/internal/domain"
)

// ClienteUC orquesta las mutaciones sobre el agregado Cliente.
type ClienteUC struct {
	Clientes domain.ClienteRepository
}

// Create valida el candidato, exige unicidad de CPF y e-mail (en ese orden)
// y persiste con identidad y timestamps nuevos.
func (uc *ClienteUC) Create(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error) {
	if err := validarCriacao(c); err != nil {
		return nil, err
	}

	exists, err := uc.Clientes.ExistsByCPF(ctx, c.CPF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewClienteAlreadyExists("CPF", c.CPF)
	}

	exists, err = uc.Clientes.ExistsByEmail(ctx, c.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewClienteAlreadyExists("e-mail", c.Email)
	}

	c.GenerateClienteIDIfNeeded()
	c.Ativo = true
	now := time.Now()
	c.DataCadastro = now
	c.DataUltimaAtualizacao = now

	return uc.Clientes.Save(ctx, c)
}

func validarCriacao(c *domain.Cliente) error {
	if c == nil {
		return domain.NewInvalidCliente("Cliente não pode ser nulo")
	}
	if !c.IsValido() {
		return domain.NewInvalidCliente("Dados do cliente inválidos")
	}
	if !c.IsCPFValido() {
		return domain.NewInvalidClienteCampo("CPF", "formato inválido (deve conter 11 dígitos)")
	}
	if !c.IsEmailValido() {
		return domain.NewInvalidClienteCampo("E-mail", "formato inválido")
	}
	return nil
}

// Update aplica nome/email/telefone/endereco/metadata del input sobre el
// registro existente, reemplazando endereco y metadata por completo. CPF,
// clienteId, ativo, dataCadastro y versao nunca se tocan acá.
func (uc *ClienteUC) Update(ctx context.Context, clienteID string, in *domain.Cliente) (*domain.Cliente, error) {
	existente, err := uc.Clientes.FindByClienteID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.NewClienteNotFound(clienteID)
	}

	if err := validarAtualizacao(in); err != nil {
		return nil, err
	}

	existente.Nome = in.Nome
	existente.Email = in.Email
	existente.Telefone = in.Telefone
	existente.Endereco = in.Endereco
	existente.Metadata = in.Metadata
	existente.UpdateTimestamp()

	return uc.Clientes.Update(ctx, existente)
}

func validarAtualizacao(c *domain.Cliente) error {
	if c == nil {
		return domain.NewInvalidCliente("Cliente não pode ser nulo")
	}
	if c.Nome == "" {
		return domain.NewInvalidClienteCampo("nome", "não pode ser vazio")
	}
	if c.Email == "" {
		return domain.NewInvalidClienteCampo("e-mail", "não pode ser vazio")
	}
	if !c.IsEmailValido() {
		return domain.NewInvalidClienteCampo("e-mail", "formato inválido")
	}
	return nil
}

func (uc *ClienteUC) Desativar(ctx context.Context, clienteID string) error {
	cliente, err := uc.Clientes.FindByClienteID(ctx, clienteID)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.NewClienteNotFound(clienteID)
	}

	cliente.Desativar()

	_, err = uc.Clientes.Update(ctx, cliente)
	return err
}

func (uc *ClienteUC) Reativar(ctx context.Context, clienteID string) error {
	cliente, err := uc.Clientes.FindByClienteID(ctx, clienteID)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.NewClienteNotFound(clienteID)
	}

	cliente.Reativar()

	_, err = uc.Clientes.Update(ctx, cliente)
	return err
}

// Deletar remueve el registro en forma permanente. Irreversible.
func (uc *ClienteUC) Deletar(ctx context.Context, clienteID string) error {
	cliente, err := uc.Clientes.FindByClienteID(ctx, clienteID)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.NewClienteNotFound(clienteID)
	}

	return uc.Clientes.DeleteByClienteID(ctx, clienteID)
}
