package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phenrril/clientes/internal/domain"
)

// MockClienteRepo implementa domain.ClienteRepository para los tests de los
// casos de uso.
type MockClienteRepo struct {
	mock.Mock
}

func (m *MockClienteRepo) Save(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error) {
	args := m.Called(ctx, c)
	return clienteResult(args, ctx, c)
}

func (m *MockClienteRepo) Update(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error) {
	args := m.Called(ctx, c)
	return clienteResult(args, ctx, c)
}

// clienteResult permite a los tests devolver un valor fijo o una función que
// haga eco del cliente recibido.
func clienteResult(args mock.Arguments, ctx context.Context, c *domain.Cliente) (*domain.Cliente, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *domain.Cliente) *domain.Cliente); ok {
		return fn(ctx, c), args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindByClienteID(ctx context.Context, clienteID string) (*domain.Cliente, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindByCPF(ctx context.Context, cpf string) (*domain.Cliente, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindByEmail(ctx context.Context, email string) (*domain.Cliente, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindByID(ctx context.Context, id string) (*domain.Cliente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindAll(ctx context.Context) ([]domain.Cliente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindAllAtivos(ctx context.Context) ([]domain.Cliente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindAllInativos(ctx context.Context) ([]domain.Cliente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindByCidadeEEstado(ctx context.Context, cidade, estado string) ([]domain.Cliente, error) {
	args := m.Called(ctx, cidade, estado)
	return args.Get(0).([]domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindByTag(ctx context.Context, tag string) ([]domain.Cliente, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).([]domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindAtivosPorCidade(ctx context.Context, cidade string) ([]domain.Cliente, error) {
	args := m.Called(ctx, cidade)
	return args.Get(0).([]domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) FindVipAtivos(ctx context.Context) ([]domain.Cliente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Cliente), args.Error(1)
}

func (m *MockClienteRepo) CountAtivos(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClienteRepo) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *MockClienteRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockClienteRepo) Delete(ctx context.Context, c *domain.Cliente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClienteRepo) DeleteByClienteID(ctx context.Context, clienteID string) error {
	args := m.Called(ctx, clienteID)
	return args.Error(0)
}
