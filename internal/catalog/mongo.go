package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vango-dev/gallery/internal/errors"
)

// Collection names used by the Mongo provider.
const (
	CategoriesCollection = "categories"
	ComponentsCollection = "components"
)

// Mongo reads the catalog from a MongoDB database. Documents are returned
// in their stored position order.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Provider = (*Mongo)(nil)

var byPosition = bson.D{{Key: "position", Value: 1}}

// ConnectMongo connects to uri and uses database name.
func ConnectMongo(ctx context.Context, uri, name string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	return &Mongo{client: client, db: client.Database(name)}, nil
}

// NewMongo wraps an existing database handle.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// Close disconnects the client if this provider created it.
func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

// Categories implements Provider.
func (m *Mongo) Categories(ctx context.Context) ([]Category, error) {
	cur, err := m.db.Collection(CategoriesCollection).Find(ctx, bson.D{}, options.Find().SetSort(byPosition))
	if err != nil {
		return nil, errors.New("E210").Wrap(err)
	}
	var out []Category
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.New("E211").Wrap(err)
	}
	return out, nil
}

// ComponentsByCategory implements Provider.
func (m *Mongo) ComponentsByCategory(ctx context.Context, categoryID string) ([]Component, error) {
	filter := bson.D{{Key: "category_id", Value: categoryID}}
	cur, err := m.db.Collection(ComponentsCollection).Find(ctx, filter, options.Find().SetSort(byPosition))
	if err != nil {
		return nil, errors.New("E210").Wrap(err)
	}
	var out []Component
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.New("E211").Wrap(err)
	}
	return out, nil
}

// ComponentBySlug implements Provider.
func (m *Mongo) ComponentBySlug(ctx context.Context, slug string) (Component, error) {
	var c Component
	err := m.db.Collection(ComponentsCollection).FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Component{}, ErrNotFound
	}
	if err != nil {
		return Component{}, errors.New("E210").Wrap(err)
	}
	return c, nil
}

// Import replaces both collections with the contents of seed.
func (m *Mongo) Import(ctx context.Context, seed *Seed) error {
	cats, _ := seed.Categories(ctx)
	catDocs := make([]any, len(cats))
	for i, c := range cats {
		catDocs[i] = positionedCategory{Position: i, Category: c}
	}
	comps := seed.Components()
	compDocs := make([]any, len(comps))
	for i, c := range comps {
		compDocs[i] = positionedComponent{Position: i, Component: c}
	}

	for name, docs := range map[string][]any{
		CategoriesCollection: catDocs,
		ComponentsCollection: compDocs,
	} {
		coll := m.db.Collection(name)
		if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
		if len(docs) == 0 {
			continue
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert %s: %w", name, err)
		}
	}
	return nil
}

// positionedCategory and positionedComponent store a record with its
// provider order.
type positionedCategory struct {
	Position int `bson:"position"`
	Category `bson:",inline"`
}

type positionedComponent struct {
	Position  int `bson:"position"`
	Component `bson:",inline"`
}
