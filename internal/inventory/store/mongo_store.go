package store

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ CatalogStore = (*MongoStore)(nil)

// MongoStore implements CatalogStore using a MongoDB collection.
type MongoStore struct {
	db         *mongo.Database
	name       string
	collection *mongo.Collection
}

// NewMongoStore creates a CatalogStore bound to the named collection of db.
func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	return &MongoStore{
		db:         db,
		name:       collection,
		collection: db.Collection(collection),
	}
}

// Reset drops the collection if it exists and creates a fresh, empty one.
func (m *MongoStore) Reset(ctx context.Context) error {
	names, err := m.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: m.name}})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if slices.Contains(names, m.name) {
		if err := m.db.Collection(m.name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop collection %s: %w", m.name, err)
		}
	}
	if err := m.db.CreateCollection(ctx, m.name); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", m.name, err)
	}
	m.collection = m.db.Collection(m.name)
	return nil
}

// Seed bulk-inserts products in order.
func (m *MongoStore) Seed(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}
	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	if _, err := m.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}

// InsertOne stores product and returns the hex form of the generated ObjectID.
func (m *MongoStore) InsertOne(ctx context.Context, product Product) (string, error) {
	res, err := m.collection.InsertOne(ctx, product)
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// UpdateMany sets all product fields on every matching document.
func (m *MongoStore) UpdateMany(ctx context.Context, filter Filter, product Product) (int64, error) {
	update := bson.M{
		"$set": bson.M{
			"name":     product.Name,
			"category": product.Category,
			"price":    product.Price,
		},
	}
	res, err := m.collection.UpdateMany(ctx, filterDoc(filter), update)
	if err != nil {
		return 0, fmt.Errorf("failed to update products: %w", err)
	}
	return res.MatchedCount, nil
}

// DeleteMany removes every matching document.
func (m *MongoStore) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	res, err := m.collection.DeleteMany(ctx, filterDoc(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	return res.DeletedCount, nil
}

// Find returns a single-use sequence over the matching documents. The query runs when the
// sequence is first ranged over and its cursor is closed before ranging returns, so a sequence
// that is never consumed holds no server resources. Query and cursor failures are yielded.
func (m *MongoStore) Find(ctx context.Context, filter Filter, opts FindOptions) (iter.Seq2[Product, error], error) {
	// the server treats 0 as "no limit" and a negative limit as a single batch
	if opts.Limit != nil && *opts.Limit <= 0 {
		return func(func(Product, error) bool) {}, nil
	}

	findOpts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}})
	if opts.Limit != nil {
		findOpts.SetLimit(*opts.Limit)
	}
	query := filterDoc(filter)

	consumed := false
	return func(yield func(Product, error) bool) {
		if consumed {
			return
		}
		consumed = true

		cursor, err := m.collection.Find(ctx, query, findOpts)
		if err != nil {
			yield(Product{}, fmt.Errorf("failed to find products: %w", err))
			return
		}
		defer cursor.Close(ctx)
		for cursor.Next(ctx) {
			var p Product
			if err := cursor.Decode(&p); err != nil {
				yield(Product{}, fmt.Errorf("failed to decode product: %w", err))
				return
			}
			if !yield(p, nil) {
				return
			}
		}
		if err := cursor.Err(); err != nil {
			yield(Product{}, fmt.Errorf("failed to read products: %w", err))
		}
	}, nil
}

// filterDoc translates a Filter into an equality query document.
func filterDoc(f Filter) bson.D {
	doc := bson.D{}
	if f.Name != nil {
		doc = append(doc, bson.E{Key: "name", Value: *f.Name})
	}
	if f.Category != nil {
		doc = append(doc, bson.E{Key: "category", Value: *f.Category})
	}
	return doc
}
