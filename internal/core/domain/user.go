package domain

import "time"

const (
	RoleUser   = "user"
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// Kind discriminates the stored user variants. Base users carry no kind tag;
// client accounts are stored in the same collection with KindClient set.
type Kind string

const KindClient Kind = "Client"

// Condition is the physical condition of a listed item. A nil *Condition on a
// listing means the seller never set one, and it must stay unset in storage.
type Condition string

const (
	ConditionUsed        Condition = "Used"
	ConditionBrandNew    Condition = "Brand New"
	ConditionRefurbished Condition = "Refurbished"
)

// Valid reports whether c is one of the allowed condition values.
func (c Condition) Valid() bool {
	switch c {
	case ConditionUsed, ConditionBrandNew, ConditionRefurbished:
		return true
	}
	return false
}

// ClientStatus is the client-facing visibility lifecycle. It is independent of
// the account-level suspended/ban flags on the base user: both axes must be
// checked when deciding account standing.
type ClientStatus string

const (
	ClientPending   ClientStatus = "pending"
	ClientApproved  ClientStatus = "approved"
	ClientSuspended ClientStatus = "suspended"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientPending, ClientApproved, ClientSuspended:
		return true
	}
	return false
}

// Listing is a product offer embedded in the seller's user document.
// The bson field names are the storage contract and must not change.
type Listing struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	URL         string     `json:"url" bson:"url"`
	Name        string     `json:"name" bson:"name"`
	Price       float64    `json:"price" bson:"price"`
	Description string     `json:"description" bson:"description"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
	Category    string     `json:"category,omitempty" bson:"category,omitempty"`
	Type        string     `json:"type,omitempty" bson:"type,omitempty"`
	Brand       string     `json:"brand,omitempty" bson:"brand,omitempty"`
	Material    string     `json:"material,omitempty" bson:"material,omitempty"`
	Condition   *Condition `json:"condition,omitempty" bson:"condition,omitempty"`
	Color       string     `json:"color,omitempty" bson:"color,omitempty"`
	Features    string     `json:"features,omitempty" bson:"features,omitempty"`
}

// Bookmark references a product the user saved for later.
type Bookmark struct {
	ProductID string    `json:"product_id" bson:"productId"`
	SavedAt   time.Time `json:"saved_at" bson:"savedAt"`
}

// CartItem references a product placed in the user's cart.
type CartItem struct {
	ProductID string    `json:"product_id" bson:"productId"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	AddedAt   time.Time `json:"added_at" bson:"addedAt"`
}

// Message is a direct message stored under the recipient's document.
type Message struct {
	From   string    `json:"from" bson:"from"`
	To     string    `json:"to" bson:"to"`
	Body   string    `json:"message" bson:"message"`
	SentAt time.Time `json:"sent_at" bson:"sentAt"`
}

// Ban is the account-level lockout record. Days of zero means indefinite.
type Ban struct {
	Status   bool      `json:"status" bson:"status"`
	Days     int       `json:"days" bson:"days"`
	BannedAt time.Time `json:"banned_at,omitempty" bson:"bannedAt,omitempty"`
}

// ActiveAt reports whether the ban is in force at the given instant.
// A ban with a day count expires once the window has passed; the stored
// record is left untouched.
func (b Ban) ActiveAt(now time.Time) bool {
	if !b.Status {
		return false
	}
	if b.Days <= 0 || b.BannedAt.IsZero() {
		return true
	}
	return now.Before(b.BannedAt.AddDate(0, 0, b.Days))
}

// SocialLinks groups a client's public profile links.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
}

// ClientProfile is the field group present only on client accounts. It is
// inlined into the user document, so a client record is a user record with
// these extra top-level fields plus kind="Client".
type ClientProfile struct {
	CoverImage  string       `json:"cover_image" bson:"coverImage"`
	Bio         string       `json:"bio" bson:"bio"`
	Website     string       `json:"website" bson:"website"`
	SocialLinks SocialLinks  `json:"social_links" bson:"socialLinks"`
	Status      ClientStatus `json:"status" bson:"status"`
}

// User is the single stored account shape: a tagged union over the base user
// and the client variant. Kind=="Client" iff Client is non-nil.
//
// Password only ever holds a bcrypt hash once the record has been through the
// persistence pipeline; plaintext never reaches a repository.
type User struct {
	ID           string         `json:"id" bson:"_id,omitempty"`
	Kind         Kind           `json:"kind,omitempty" bson:"kind,omitempty"`
	FirstName    string         `json:"first_name" bson:"firstName"`
	SecondName   string         `json:"second_name,omitempty" bson:"secondName,omitempty"`
	LastName     string         `json:"last_name,omitempty" bson:"lastName,omitempty"`
	BusinessName string         `json:"business_name,omitempty" bson:"businessName,omitempty"`
	Phone        string         `json:"phone,omitempty" bson:"phone,omitempty"`
	Email        string         `json:"email" bson:"email"`
	Password     string         `json:"-" bson:"password"`
	Address      string         `json:"address,omitempty" bson:"address,omitempty"`
	ProfileImage string         `json:"profile_image,omitempty" bson:"profileImage,omitempty"`
	Listings     []Listing      `json:"listings" bson:"businessImages"`
	Location     string         `json:"location,omitempty" bson:"location,omitempty"`
	Bookmarks    []Bookmark     `json:"bookmarks" bson:"bookmarks"`
	Cart         []CartItem     `json:"cart" bson:"cart"`
	Messages     []Message      `json:"messages" bson:"messages"`
	Role         string         `json:"role" bson:"role"`
	Approved     bool           `json:"approved" bson:"approved"`
	Suspended    bool           `json:"suspended" bson:"suspended"`
	Ban          Ban            `json:"ban" bson:"ban"`
	Client       *ClientProfile `json:"client,omitempty" bson:",inline"`
	CreatedAt    time.Time      `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time      `json:"updated_at" bson:"updatedAt"`
}

// IsClient reports whether the record is the client variant.
func (u *User) IsClient() bool {
	return u.Kind == KindClient && u.Client != nil
}

// InGoodStanding reports whether the account may act at the given instant.
// Base accounts: not suspended and not actively banned. Client accounts
// additionally must not have a suspended client status; the two axes are
// independent and both apply.
func (u *User) InGoodStanding(now time.Time) bool {
	if u.Suspended || u.Ban.ActiveAt(now) {
		return false
	}
	if u.IsClient() && u.Client.Status == ClientSuspended {
		return false
	}
	return true
}

// Validate checks required fields and enum membership. Called by the service
// layer before any write reaches a repository.
func (u *User) Validate() error {
	if u.FirstName == "" || u.Email == "" || u.Password == "" {
		return ErrValidation
	}
	switch u.Role {
	case RoleUser, RoleClient, RoleAdmin:
	default:
		return ErrValidation
	}
	if u.Kind == KindClient {
		if u.Client == nil || !u.Client.Status.Valid() {
			return ErrValidation
		}
	} else if u.Kind != "" || u.Client != nil {
		return ErrValidation
	}
	for i := range u.Listings {
		if err := u.Listings[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the listing's required fields and condition enum.
// An unset condition is valid and must stay unset.
func (l *Listing) Validate() error {
	if l.URL == "" || l.Name == "" || l.Description == "" || l.Price <= 0 {
		return ErrValidation
	}
	if l.Condition != nil && !l.Condition.Valid() {
		return ErrValidation
	}
	return nil
}
