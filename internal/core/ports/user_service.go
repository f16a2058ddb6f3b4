package ports

import (
	"context"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

// ClientProfileInput carries the optional client-only profile fields.
type ClientProfileInput struct {
	CoverImage string
	Bio        string
	Website    string
	Facebook   string
	Instagram  string
	Twitter    string
	LinkedIn   string
}

// RegisterInput carries all data needed to create an account. When AsClient
// is true the account is created as the client variant with status "pending".
type RegisterInput struct {
	FirstName    string
	SecondName   string
	LastName     string
	BusinessName string
	Phone        string
	Email        string
	Password     string
	Address      string
	Location     string
	AsClient     bool
	Client       ClientProfileInput
}

// UpdateProfileInput carries profile fields to change. Empty fields are left
// untouched; the password never travels through this path.
type UpdateProfileInput struct {
	FirstName    string
	SecondName   string
	LastName     string
	BusinessName string
	Phone        string
	Address      string
	ProfileImage string
	Location     string
	Client       *ClientProfileInput // client-only fields, ignored for base users
}

// ListingInput carries a product listing. Condition is the enum value or
// empty for unset.
type ListingInput struct {
	URL         string
	Name        string
	Price       float64
	Description string
	Location    string
	Category    string
	Type        string
	Brand       string
	Material    string
	Condition   string
	Color       string
	Features    string
}

// AuthResult is returned by Authenticate: the account plus a signed API token.
type AuthResult struct {
	Token string
	User  *domain.User
}

// UserService defines the account and marketplace use cases.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Authenticate verifies the candidate password against the stored hash and
	// rejects accounts that are not in good standing.
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	// ChangePassword re-verifies the current secret, then routes the new one
	// through the same pre-persist hashing pipeline as registration.
	ChangePassword(ctx context.Context, userID, current, next string) error
	// UpgradeToClient converts a base user into the client variant with
	// status "pending". Already-client accounts are rejected.
	UpgradeToClient(ctx context.Context, userID string, profile ClientProfileInput) (*domain.User, error)

	AddListing(ctx context.Context, userID string, input ListingInput) (*domain.Listing, error)
	UpdateListing(ctx context.Context, userID, listingID string, input ListingInput) (*domain.Listing, error)
	RemoveListing(ctx context.Context, userID, listingID string) error

	AddBookmark(ctx context.Context, userID, productID string) error
	RemoveBookmark(ctx context.Context, userID, productID string) error

	AddToCart(ctx context.Context, userID, productID string, quantity int) error
	SetCartQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, userID, productID string) error

	// SendMessage appends the message to the recipient's document. The sender
	// must be in good standing.
	SendMessage(ctx context.Context, fromID, toID, body string) error
}
