package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

const auditCollection = "auditlogs"

// AuditRepository is append-only: it exposes no update or delete path.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Action      string             `bson:"action"`
	TargetUser  string             `bson:"targetUser,omitempty"`
	PerformedBy string             `bson:"performedBy,omitempty"`
	Details     string             `bson:"details,omitempty"`
	Timestamp   time.Time          `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditLog) error {
	doc := auditDoc{
		Action:      entry.Action,
		TargetUser:  entry.TargetUser,
		PerformedBy: entry.PerformedBy,
		Details:     entry.Details,
		Timestamp:   entry.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, page, limit int) ([]*domain.AuditLog, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.AuditLog
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, &domain.AuditLog{
			ID:          doc.ID.Hex(),
			Action:      doc.Action,
			TargetUser:  doc.TargetUser,
			PerformedBy: doc.PerformedBy,
			Details:     doc.Details,
			Timestamp:   doc.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
