package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type clientProfileRequest struct {
	CoverImage string `json:"cover_image"`
	Bio        string `json:"bio"`
	Website    string `json:"website"`
	Facebook   string `json:"facebook"`
	Instagram  string `json:"instagram"`
	Twitter    string `json:"twitter"`
	LinkedIn   string `json:"linkedin"`
}

type registerRequest struct {
	FirstName    string                `json:"first_name" validate:"required"`
	SecondName   string                `json:"second_name"`
	LastName     string                `json:"last_name"`
	BusinessName string                `json:"business_name"`
	Phone        string                `json:"phone"`
	Email        string                `json:"email" validate:"required,email"`
	Password     string                `json:"password" validate:"required,min=8"`
	Address      string                `json:"address"`
	Location     string                `json:"location"`
	AsClient     bool                  `json:"as_client"`
	Client       *clientProfileRequest `json:"client"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  userResponse `json:"user"`
}

// Response-only account types owned by the transport layer, kept separate
// from the domain so the JSON contract is not coupled to internal changes.

type banResponse struct {
	Active   bool       `json:"active"`
	Days     int        `json:"days"`
	BannedAt *time.Time `json:"banned_at,omitempty"`
}

type clientProfileResponse struct {
	CoverImage string `json:"cover_image"`
	Bio        string `json:"bio"`
	Website    string `json:"website"`
	Facebook   string `json:"facebook,omitempty"`
	Instagram  string `json:"instagram,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	Status     string `json:"status"`
}

type userResponse struct {
	ID           string                 `json:"id"`
	Kind         string                 `json:"kind,omitempty"`
	FirstName    string                 `json:"first_name"`
	SecondName   string                 `json:"second_name,omitempty"`
	LastName     string                 `json:"last_name,omitempty"`
	BusinessName string                 `json:"business_name,omitempty"`
	Phone        string                 `json:"phone,omitempty"`
	Email        string                 `json:"email"`
	Address      string                 `json:"address,omitempty"`
	ProfileImage string                 `json:"profile_image,omitempty"`
	Location     string                 `json:"location,omitempty"`
	Role         string                 `json:"role"`
	Approved     bool                   `json:"approved"`
	Suspended    bool                   `json:"suspended"`
	Ban          banResponse            `json:"ban"`
	Client       *clientProfileResponse `json:"client,omitempty"`
	Listings     []listingResponse      `json:"listings"`
	Bookmarks    []bookmarkResponse     `json:"bookmarks"`
	Cart         []cartItemResponse     `json:"cart"`
	Messages     []messageResponse      `json:"messages"`
	CreatedAt    time.Time              `json:"created_at"`
}
