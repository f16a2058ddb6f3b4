package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

const adminCollection = "admins"

type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(adminCollection)}
}

type adminDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user"`
	Permissions domain.Permissions `bson:"permissions"`
	AssignedAt  time.Time          `bson:"assignedAt"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *adminDoc) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Permissions: d.Permissions,
		AssignedAt:  d.AssignedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	userOID, err := primitive.ObjectIDFromHex(admin.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", admin.UserID, err)
	}

	doc := adminDoc{
		UserID:      userOID,
		Permissions: admin.Permissions,
		AssignedAt:  admin.AssignedAt,
		CreatedAt:   admin.CreatedAt,
		UpdatedAt:   admin.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *admin
	created.ID = oid.Hex()
	return &created, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *AdminRepository) FindByUserID(ctx context.Context, userID string) (*domain.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}
	return r.findOne(ctx, bson.M{"user": oid})
}

func (r *AdminRepository) findOne(ctx context.Context, filter bson.M) (*domain.Admin, error) {
	var doc adminDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AdminRepository) UpdatePermissions(ctx context.Context, id string, perms domain.Permissions) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdminNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"permissions": perms,
			"updatedAt":   time.Now().UTC(),
		},
	})
	if err != nil {
		return fmt.Errorf("update permissions: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

// EnsureIndexes enforces at most one admin record per user.
func (r *AdminRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
