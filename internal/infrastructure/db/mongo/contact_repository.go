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

const contactCollection = "contacts"

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactCollection)}
}

type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (r *ContactRepository) Insert(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	doc := contactDoc{
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *contact
	created.ID = oid.Hex()
	return &created, nil
}

func (r *ContactRepository) List(ctx context.Context, page, limit int) ([]*domain.Contact, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer cur.Close(ctx)

	var contacts []*domain.Contact
	for cur.Next(ctx) {
		var doc contactDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode contact: %w", err)
		}
		contacts = append(contacts, &domain.Contact{
			ID:        doc.ID.Hex(),
			Name:      doc.Name,
			Email:     doc.Email,
			Message:   doc.Message,
			CreatedAt: doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}
