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
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

const userCollection = "users"

// UserRepository persists both user variants in a single collection. The
// document field names mirror the original store layout and must not change.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Kind         string             `bson:"kind,omitempty"`
	FirstName    string             `bson:"firstName"`
	SecondName   string             `bson:"secondName,omitempty"`
	LastName     string             `bson:"lastName,omitempty"`
	BusinessName string             `bson:"businessName,omitempty"`
	Phone        string             `bson:"phone,omitempty"`
	Email        string             `bson:"email"`
	Password     string             `bson:"password"`
	Address      string             `bson:"address,omitempty"`
	ProfileImage string             `bson:"profileImage,omitempty"`
	Listings     []domain.Listing   `bson:"businessImages"`
	Location     string             `bson:"location,omitempty"`
	Bookmarks    []domain.Bookmark  `bson:"bookmarks"`
	Cart         []domain.CartItem  `bson:"cart"`
	Messages     []domain.Message   `bson:"messages"`
	Role         string             `bson:"role"`
	Approved     bool               `bson:"approved"`
	Suspended    bool               `bson:"suspended"`
	Ban          domain.Ban         `bson:"ban"`
	Client       *clientDoc         `bson:",inline"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type clientDoc struct {
	CoverImage  string             `bson:"coverImage"`
	Bio         string             `bson:"bio"`
	Website     string             `bson:"website"`
	SocialLinks domain.SocialLinks `bson:"socialLinks"`
	Status      string             `bson:"status"`
}

func toUserDoc(u *domain.User) (*userDoc, error) {
	doc := &userDoc{
		Kind:         string(u.Kind),
		FirstName:    u.FirstName,
		SecondName:   u.SecondName,
		LastName:     u.LastName,
		BusinessName: u.BusinessName,
		Phone:        u.Phone,
		Email:        u.Email,
		Password:     u.Password,
		Address:      u.Address,
		ProfileImage: u.ProfileImage,
		Listings:     u.Listings,
		Location:     u.Location,
		Bookmarks:    u.Bookmarks,
		Cart:         u.Cart,
		Messages:     u.Messages,
		Role:         u.Role,
		Approved:     u.Approved,
		Suspended:    u.Suspended,
		Ban:          u.Ban,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.ID != "" {
		oid, err := primitive.ObjectIDFromHex(u.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", u.ID, err)
		}
		doc.ID = oid
	}
	if u.Client != nil {
		doc.Client = &clientDoc{
			CoverImage:  u.Client.CoverImage,
			Bio:         u.Client.Bio,
			Website:     u.Client.Website,
			SocialLinks: u.Client.SocialLinks,
			Status:      string(u.Client.Status),
		}
	}
	return doc, nil
}

func (d *userDoc) toDomain() *domain.User {
	u := &domain.User{
		ID:           d.ID.Hex(),
		Kind:         domain.Kind(d.Kind),
		FirstName:    d.FirstName,
		SecondName:   d.SecondName,
		LastName:     d.LastName,
		BusinessName: d.BusinessName,
		Phone:        d.Phone,
		Email:        d.Email,
		Password:     d.Password,
		Address:      d.Address,
		ProfileImage: d.ProfileImage,
		Listings:     d.Listings,
		Location:     d.Location,
		Bookmarks:    d.Bookmarks,
		Cart:         d.Cart,
		Messages:     d.Messages,
		Role:         d.Role,
		Approved:     d.Approved,
		Suspended:    d.Suspended,
		Ban:          d.Ban,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	// A bare inline group decodes with zero values even for base users; the
	// kind tag decides which variant the record is.
	if u.Kind == domain.KindClient && d.Client != nil {
		u.Client = &domain.ClientProfile{
			CoverImage:  d.Client.CoverImage,
			Bio:         d.Client.Bio,
			Website:     d.Client.Website,
			SocialLinks: d.Client.SocialLinks,
			Status:      domain.ClientStatus(d.Client.Status),
		}
	}
	return u
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc, err := toUserDoc(user)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *user
	created.ID = oid.Hex()
	return &created, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	doc, err := toUserDoc(user)
	if err != nil {
		return err
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.Kind != "" {
		query["kind"] = filter.Kind
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"firstName": regex},
			bson.M{"businessName": regex},
			bson.M{"email": regex},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// EnsureIndexes creates the unique email index that backs the uniqueness
// invariant. Concurrent duplicate registrations race here; the loser gets a
// duplicate-key error surfaced as domain.ErrEmailTaken.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "kind", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
