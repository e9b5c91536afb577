package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/snapdock/pkg/boardfile"
	"github.com/matzehuels/snapdock/pkg/observability"
)

// MongoConfig configures a MongoStore.
type MongoConfig struct {
	URI        string // e.g. "mongodb://localhost:27017"
	Database   string // defaults to "snapdock"
	Collection string // defaults to "snapshots"
}

// snapshotRecord is the stored document shape: the snapshot name (unique),
// the serialized board, and the write timestamp.
type snapshotRecord struct {
	Name      string             `bson:"name"`
	Board     boardfile.Document `bson:"board"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// MongoStore stores snapshots as bson documents keyed by name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "snapdock"
	}
	if cfg.Collection == "" {
		cfg.Collection = "snapshots"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Save upserts the document under name.
func (s *MongoStore) Save(ctx context.Context, name string, doc boardfile.Document) error {
	start := time.Now()
	err := s.save(ctx, name, doc)
	observability.Store().OnSave(ctx, "mongo", name, time.Since(start), err)
	return err
}

func (s *MongoStore) save(ctx context.Context, name string, doc boardfile.Document) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	rec := snapshotRecord{Name: name, Board: doc, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"name": name}, rec, options.Replace().SetUpsert(true))
	return err
}

// Load retrieves the document stored under name.
func (s *MongoStore) Load(ctx context.Context, name string) (boardfile.Document, error) {
	start := time.Now()
	doc, err := s.load(ctx, name)
	observability.Store().OnLoad(ctx, "mongo", name, time.Since(start), err)
	return doc, err
}

func (s *MongoStore) load(ctx context.Context, name string) (boardfile.Document, error) {
	if err := ValidateName(name); err != nil {
		return boardfile.Document{}, err
	}
	var rec snapshotRecord
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return boardfile.Document{}, ErrNotFound
	}
	if err != nil {
		return boardfile.Document{}, err
	}
	return rec.Board, nil
}

// List returns all stored snapshot names.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var rec snapshotRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		names = append(names, rec.Name)
	}
	return names, cur.Err()
}

// Delete removes the snapshot document.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
