package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/phenrril/clientes/internal/domain"
)

func TestPorClienteID(t *testing.T) {
	repo := new(MockClienteRepo)
	uc := &BuscaUC{Clientes: repo}

	cliente := &domain.Cliente{ClienteID: "abc", Nome: "João"}
	repo.On("FindByClienteID", mock.Anything, "abc").Return(cliente, nil)

	got, err := uc.PorClienteID(context.Background(), "abc")

	assert.NoError(t, err)
	assert.Equal(t, cliente, got)
}

func TestPorClienteIDAusente(t *testing.T) {
	repo := new(MockClienteRepo)
	uc := &BuscaUC{Clientes: repo}

	repo.On("FindByClienteID", mock.Anything, "nope").Return(nil, nil)

	got, err := uc.PorClienteID(context.Background(), "nope")

	assert.NoError(t, err, "ausente no es error")
	assert.Nil(t, got)
}

func TestPorCPFYPorEmail(t *testing.T) {
	repo := new(MockClienteRepo)
	uc := &BuscaUC{Clientes: repo}

	cliente := &domain.Cliente{ClienteID: "abc"}
	repo.On("FindByCPF", mock.Anything, "12345678901").Return(cliente, nil)
	repo.On("FindByEmail", mock.Anything, "joao@x.com").Return(cliente, nil)

	porCPF, err := uc.PorCPF(context.Background(), "12345678901")
	assert.NoError(t, err)
	assert.Equal(t, cliente, porCPF)

	porEmail, err := uc.PorEmail(context.Background(), "joao@x.com")
	assert.NoError(t, err)
	assert.Equal(t, cliente, porEmail)
}

func TestListados(t *testing.T) {
	repo := new(MockClienteRepo)
	uc := &BuscaUC{Clientes: repo}

	lista := []domain.Cliente{{ClienteID: "a"}, {ClienteID: "b"}}

	repo.On("FindAll", mock.Anything).Return(lista, nil)
	repo.On("FindAllAtivos", mock.Anything).Return(lista, nil)
	repo.On("FindAllInativos", mock.Anything).Return([]domain.Cliente{}, nil)
	repo.On("FindAtivosPorCidade", mock.Anything, "São Paulo").Return(lista, nil)
	repo.On("FindByCidadeEEstado", mock.Anything, "São Paulo", "SP").Return(lista, nil)
	repo.On("FindByTag", mock.Anything, "premium").Return(lista, nil)
	repo.On("FindVipAtivos", mock.Anything).Return(lista, nil)

	todos, _ := uc.Todos(context.Background())
	assert.Len(t, todos, 2)

	ativos, _ := uc.Ativos(context.Background())
	assert.Len(t, ativos, 2)

	inativos, err := uc.Inativos(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, inativos, "lista vacía, nunca error por no encontrado")

	porCidade, _ := uc.PorCidade(context.Background(), "São Paulo")
	assert.Len(t, porCidade, 2)

	porCidadeEEstado, _ := uc.PorCidadeEEstado(context.Background(), "São Paulo", "SP")
	assert.Len(t, porCidadeEEstado, 2)

	porTag, _ := uc.PorTag(context.Background(), "premium")
	assert.Len(t, porTag, 2)

	vip, _ := uc.VipAtivos(context.Background())
	assert.Len(t, vip, 2)

	repo.AssertExpectations(t)
}

func TestContarAtivos(t *testing.T) {
	repo := new(MockClienteRepo)
	uc := &BuscaUC{Clientes: repo}

	repo.On("CountAtivos", mock.Anything).Return(int64(7), nil)

	total, err := uc.ContarAtivos(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), total)
}

func TestBuscaPropagaErrorDeStorage(t *testing.T) {
	repo := new(MockClienteRepo)
	uc := &BuscaUC{Clientes: repo}

	boom := errors.New("mongo: down")
	repo.On("FindAll", mock.Anything).Return([]domain.Cliente(nil), boom)

	_, err := uc.Todos(context.Background())

	assert.ErrorIs(t, err, boom)
}
