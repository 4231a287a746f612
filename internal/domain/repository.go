package domain

import "context"

// ClienteRepository es el puerto de salida hacia el storage. Los lookups de
// un solo registro devuelven (nil, nil) cuando no hay match; los errores del
// storage se propagan sin traducir. El orden de los listados lo define el
// storage.
type ClienteRepository interface {
	Save(ctx context.Context, c *Cliente) (*Cliente, error)
	Update(ctx context.Context, c *Cliente) (*Cliente, error)

	FindByClienteID(ctx context.Context, clienteID string) (*Cliente, error)
	FindByCPF(ctx context.Context, cpf string) (*Cliente, error)
	FindByEmail(ctx context.Context, email string) (*Cliente, error)
	FindByID(ctx context.Context, id string) (*Cliente, error)

	FindAll(ctx context.Context) ([]Cliente, error)
	FindAllAtivos(ctx context.Context) ([]Cliente, error)
	FindAllInativos(ctx context.Context) ([]Cliente, error)
	FindByCidadeEEstado(ctx context.Context, cidade, estado string) ([]Cliente, error)
	FindByTag(ctx context.Context, tag string) ([]Cliente, error)
	FindAtivosPorCidade(ctx context.Context, cidade string) ([]Cliente, error)
	FindVipAtivos(ctx context.Context) ([]Cliente, error)
	CountAtivos(ctx context.Context) (int64, error)

	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Delete(ctx context.Context, c *Cliente) error
	DeleteByClienteID(ctx context.Context, clienteID string) error
}
