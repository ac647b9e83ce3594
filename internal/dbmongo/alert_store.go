package dbmongo

import (
	"context"
	"time"

	"socialfeed/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxRecentAlerts = 200

type alertDocument struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty"`
	Type        string                 `bson:"type"`
	ContextID   string                 `bson:"context_id"`
	ContentKind string                 `bson:"content_kind"`
	AuthorID    string                 `bson:"author_id,omitempty"`
	RaisedAt    time.Time              `bson:"raised_at"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty"`
	Status      string                 `bson:"status"`
}

// AlertStore keeps crisis alerts in a Mongo collection for human review.
type AlertStore struct {
	collection *mongo.Collection
}

var _ common.AlertRepository = (*AlertStore)(nil)

func NewAlertStore(mc *MongoClient, collection string) *AlertStore {
	return &AlertStore{collection: mc.Database.Collection(collection)}
}

// EnsureIndexes creates the raised_at index used by Recent.
func (s *AlertStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "raised_at", Value: -1}},
	})
	if err != nil {
		return common.Unavailable(err, "failed to create alert index")
	}
	return nil
}

func (s *AlertStore) Insert(ctx context.Context, event common.AlertEvent) (string, error) {
	doc := toDocument(event)
	res, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", common.Unavailable(err, "failed to store alert")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

// Recent returns the newest alerts first.
func (s *AlertStore) Recent(ctx context.Context, limit int) ([]common.AlertResponse, error) {
	if limit <= 0 || limit > maxRecentAlerts {
		limit = maxRecentAlerts
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "raised_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, common.Unavailable(err, "failed to query alerts")
	}
	defer cursor.Close(ctx)

	var docs []alertDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.Unavailable(err, "failed to decode alerts")
	}

	out := make([]common.AlertResponse, len(docs))
	for i, d := range docs {
		out[i] = toResponse(d)
	}
	return out, nil
}

func toDocument(event common.AlertEvent) alertDocument {
	raisedAt := event.RaisedAt
	if raisedAt.IsZero() {
		raisedAt = time.Now().UTC()
	}
	return alertDocument{
		Type:        string(event.Type),
		ContextID:   event.ContextID,
		ContentKind: string(event.ContentKind),
		AuthorID:    event.AuthorID,
		RaisedAt:    raisedAt,
		Metadata:    event.Metadata,
		Status:      "open",
	}
}

func toResponse(d alertDocument) common.AlertResponse {
	return common.AlertResponse{
		ID:          d.ID.Hex(),
		Type:        d.Type,
		ContextID:   d.ContextID,
		ContentKind: d.ContentKind,
		AuthorID:    d.AuthorID,
		RaisedAt:    d.RaisedAt,
		Metadata:    common.AlertMetadata(d.Metadata),
	}
}
