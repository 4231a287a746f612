package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phenrril/clientes/internal/domain"
)

// ErrVersaoConflito lo devuelve Update cuando el compare-and-swap sobre
// versao no matchea ningún documento.
var ErrVersaoConflito = errors.New("conflicto de versión: el cliente fue modificado por otro proceso")

type ClienteRepo struct {
	col *mongo.Collection
}

func NewClienteRepo(db *mongo.Database) *ClienteRepo {
	return &ClienteRepo{col: db.Collection("clientes")}
}

// EnsureIndexes crea los índices únicos que respaldan la unicidad de
// clienteId, CPF y e-mail. Idempotente; se llama en el arranque.
func (r *ClienteRepo) EnsureIndexes(ctx context.Context) error {
	t := true
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clienteId", Value: 1}}, Options: &options.IndexOptions{Unique: &t}},
		{Keys: bson.D{{Key: "cpfCliente", Value: 1}}, Options: &options.IndexOptions{Unique: &t}},
		{Keys: bson.D{{Key: "emailCliente", Value: 1}}, Options: &options.IndexOptions{Unique: &t}},
	})
	return err
}

func (r *ClienteRepo) Save(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error) {
	doc := toDoc(c)
	doc.Versao = 0
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	c.Versao = 0
	return c, nil
}

// Update hace compare-and-swap sobre versao. Un MatchedCount de cero con el
// documento presente significa que otro proceso lo pisó en el medio.
func (r *ClienteRepo) Update(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error) {
	doc := toDoc(c)
	doc.Versao = c.Versao + 1

	res, err := r.col.UpdateOne(ctx,
		bson.M{"clienteId": c.ClienteID, "versao": c.Versao},
		bson.M{"$set": bson.M{
			"nomeCliente":           doc.NomeCliente,
			"emailCliente":          doc.EmailCliente,
			"telefone":              doc.Telefone,
			"endereco":              doc.Endereco,
			"ativo":                 doc.Ativo,
			"dataUltimaAtualizacao": doc.DataUltimaAtualizacao,
			"metadata":              doc.Metadata,
			"versao":                doc.Versao,
		}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrVersaoConflito
	}
	c.Versao = doc.Versao
	return c, nil
}

func (r *ClienteRepo) findOne(ctx context.Context, filter bson.M) (*domain.Cliente, error) {
	var doc clienteDoc
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomain(&doc), nil
}

func (r *ClienteRepo) FindByClienteID(ctx context.Context, clienteID string) (*domain.Cliente, error) {
	return r.findOne(ctx, bson.M{"clienteId": clienteID})
}

func (r *ClienteRepo) FindByCPF(ctx context.Context, cpf string) (*domain.Cliente, error) {
	return r.findOne(ctx, bson.M{"cpfCliente": cpf})
}

func (r *ClienteRepo) FindByEmail(ctx context.Context, email string) (*domain.Cliente, error) {
	return r.findOne(ctx, bson.M{"emailCliente": email})
}

func (r *ClienteRepo) FindByID(ctx context.Context, id string) (*domain.Cliente, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ClienteRepo) findMany(ctx context.Context, filter bson.M) ([]domain.Cliente, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Cliente{}
	for cur.Next(ctx) {
		var doc clienteDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, *toDomain(&doc))
	}
	return out, cur.Err()
}

func (r *ClienteRepo) FindAll(ctx context.Context) ([]domain.Cliente, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *ClienteRepo) FindAllAtivos(ctx context.Context) ([]domain.Cliente, error) {
	return r.findMany(ctx, bson.M{"ativo": true})
}

func (r *ClienteRepo) FindAllInativos(ctx context.Context) ([]domain.Cliente, error) {
	return r.findMany(ctx, bson.M{"ativo": false})
}

func (r *ClienteRepo) FindByCidadeEEstado(ctx context.Context, cidade, estado string) ([]domain.Cliente, error) {
	return r.findMany(ctx, bson.M{"endereco.cidade": cidade, "endereco.estado": estado})
}

func (r *ClienteRepo) FindByTag(ctx context.Context, tag string) ([]domain.Cliente, error) {
	return r.findMany(ctx, bson.M{"metadata.tags": tag})
}

func (r *ClienteRepo) FindAtivosPorCidade(ctx context.Context, cidade string) ([]domain.Cliente, error) {
	return r.findMany(ctx, bson.M{"ativo": true, "endereco.cidade": cidade})
}

func (r *ClienteRepo) FindVipAtivos(ctx context.Context) ([]domain.Cliente, error) {
	return r.findMany(ctx, bson.M{"ativo": true, "metadata.tags": "vip"})
}

func (r *ClienteRepo) CountAtivos(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"ativo": true})
}

func (r *ClienteRepo) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ClienteRepo) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return r.exists(ctx, bson.M{"cpfCliente": cpf})
}

func (r *ClienteRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"emailCliente": email})
}

func (r *ClienteRepo) Delete(ctx context.Context, c *domain.Cliente) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"clienteId": c.ClienteID})
	return err
}

func (r *ClienteRepo) DeleteByClienteID(ctx context.Context, clienteID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"clienteId": clienteID})
	return err
}
