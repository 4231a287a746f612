package usecase

import (
	"context"

	"github.com/phenrril/clientes/internal/domain"
)

// BuscaUC delega las lecturas al repositorio sin lógica de negocio. Los
// lookups individuales devuelven (nil, nil) cuando no hay match; los listados
// devuelven slice vacío, nunca error por "no encontrado".
type BuscaUC struct {
	Clientes domain.ClienteRepository
}

func (uc *BuscaUC) PorClienteID(ctx context.Context, clienteID string) (*domain.Cliente, error) {
	return uc.Clientes.FindByClienteID(ctx, clienteID)
}

func (uc *BuscaUC) PorCPF(ctx context.Context, cpf string) (*domain.Cliente, error) {
	return uc.Clientes.FindByCPF(ctx, cpf)
}

func (uc *BuscaUC) PorEmail(ctx context.Context, email string) (*domain.Cliente, error) {
	return uc.Clientes.FindByEmail(ctx, email)
}

func (uc *BuscaUC) Todos(ctx context.Context) ([]domain.Cliente, error) {
	return uc.Clientes.FindAll(ctx)
}

func (uc *BuscaUC) Ativos(ctx context.Context) ([]domain.Cliente, error) {
	return uc.Clientes.FindAllAtivos(ctx)
}

func (uc *BuscaUC) Inativos(ctx context.Context) ([]domain.Cliente, error) {
	return uc.Clientes.FindAllInativos(ctx)
}

// PorCidade lista sólo clientes activos de la ciudad.
func (uc *BuscaUC) PorCidade(ctx context.Context, cidade string) ([]domain.Cliente, error) {
	return uc.Clientes.FindAtivosPorCidade(ctx, cidade)
}

// PorCidadeEEstado lista por ciudad y estado sin mirar el flag ativo.
func (uc *BuscaUC) PorCidadeEEstado(ctx context.Context, cidade, estado string) ([]domain.Cliente, error) {
	return uc.Clientes.FindByCidadeEEstado(ctx, cidade, estado)
}

func (uc *BuscaUC) PorTag(ctx context.Context, tag string) ([]domain.Cliente, error) {
	return uc.Clientes.FindByTag(ctx, tag)
}

func (uc *BuscaUC) VipAtivos(ctx context.Context) ([]domain.Cliente, error) {
	return uc.Clientes.FindVipAtivos(ctx)
}

func (uc *BuscaUC) ContarAtivos(ctx context.Context) (int64, error) {
	return uc.Clientes.CountAtivos(ctx)
}
