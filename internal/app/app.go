package app

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phenrril/clientes/internal/adapters/httpserver"
	"github.com/phenrril/clientes/internal/adapters/repo/mongodb"
	"github.com/phenrril/clientes/internal/usecase"
)

type App struct {
	DB       *mongo.Database
	Clientes *usecase.ClienteUC
	Buscas   *usecase.BuscaUC

	repo *mongodb.ClienteRepo
}

func NewApp(db *mongo.Database) *App {
	repo := mongodb.NewClienteRepo(db)

	return &App{
		DB:       db,
		Clientes: &usecase.ClienteUC{Clientes: repo},
		Buscas:   &usecase.BuscaUC{Clientes: repo},
		repo:     repo,
	}
}

// EnsureIndexes crea los índices únicos de la collection en el arranque.
func (a *App) EnsureIndexes(ctx context.Context) error {
	return a.repo.EnsureIndexes(ctx)
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Clientes, a.Buscas)
}
