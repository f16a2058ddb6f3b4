package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

// UserService implements account and marketplace use cases.
type UserService struct {
	repo      ports.UserRepository
	standings StandingCache
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, standings StandingCache, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{repo: repo, standings: standings, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// save routes every user write through validation and the credential pipeline
// before it reaches the repository. This is the only path to repo.Update.
func (s *UserService) save(ctx context.Context, u *domain.User, passwordChanged bool) error {
	if err := u.Validate(); err != nil {
		return err
	}
	w, err := ApplyPasswordHash(PendingWrite{User: u, PasswordChanged: passwordChanged})
	if err != nil {
		return err
	}
	w.User.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, w.User)
}

func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		SecondName:   input.SecondName,
		LastName:     input.LastName,
		BusinessName: input.BusinessName,
		Phone:        input.Phone,
		Email:        input.Email,
		Password:     input.Password,
		Address:      input.Address,
		Location:     input.Location,
		Role:         domain.RoleUser,
		Listings:     []domain.Listing{},
		Bookmarks:    []domain.Bookmark{},
		Cart:         []domain.CartItem{},
		Messages:     []domain.Message{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.AsClient {
		user.Role = domain.RoleClient
		user.Kind = domain.KindClient
		user.Client = clientProfileFromInput(input.Client)
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	w, err := ApplyPasswordHash(PendingWrite{User: user, PasswordChanged: true})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, w.User)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Bool("client", input.AsClient).Msg("user registered")
	return created, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(user.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}

	good := user.InGoodStanding(time.Now().UTC())
	if s.standings != nil {
		if err := s.standings.Set(ctx, user.ID, good); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to cache standing")
		}
	}
	if !good {
		return nil, domain.ErrAccountLocked
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *UserService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Standing reports whether the account may act, consulting the cache first
// and recomputing from the stored record on a miss.
func (s *UserService) Standing(ctx context.Context, userID string) (bool, error) {
	if s.standings != nil {
		if good, ok, err := s.standings.Get(ctx, userID); err == nil && ok {
			return good, nil
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	good := user.InGoodStanding(time.Now().UTC())
	if s.standings != nil {
		if err := s.standings.Set(ctx, userID, good); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to cache standing")
		}
	}
	return good, nil
}

func (s *UserService) ensureStanding(ctx context.Context, userID string) error {
	good, err := s.Standing(ctx, userID)
	if err != nil {
		return err
	}
	if !good {
		return domain.ErrAccountLocked
	}
	return nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	setIfPresent(&user.FirstName, input.FirstName)
	setIfPresent(&user.SecondName, input.SecondName)
	setIfPresent(&user.LastName, input.LastName)
	setIfPresent(&user.BusinessName, input.BusinessName)
	setIfPresent(&user.Phone, input.Phone)
	setIfPresent(&user.Address, input.Address)
	setIfPresent(&user.ProfileImage, input.ProfileImage)
	setIfPresent(&user.Location, input.Location)

	if input.Client != nil && user.IsClient() {
		setIfPresent(&user.Client.CoverImage, input.Client.CoverImage)
		setIfPresent(&user.Client.Bio, input.Client.Bio)
		setIfPresent(&user.Client.Website, input.Client.Website)
		setIfPresent(&user.Client.SocialLinks.Facebook, input.Client.Facebook)
		setIfPresent(&user.Client.SocialLinks.Instagram, input.Client.Instagram)
		setIfPresent(&user.Client.SocialLinks.Twitter, input.Client.Twitter)
		setIfPresent(&user.Client.SocialLinks.LinkedIn, input.Client.LinkedIn)
	}

	if err := s.save(ctx, user, false); err != nil {
		return nil, err
	}
	return user, nil
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if next == "" {
		return domain.ErrValidation
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(user.Password, current) {
		return domain.ErrInvalidCredentials
	}

	user.Password = next
	if err := s.save(ctx, user, true); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func (s *UserService) UpgradeToClient(ctx context.Context, userID string, profile ports.ClientProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsClient() {
		return nil, domain.ErrValidation
	}

	user.Kind = domain.KindClient
	user.Role = domain.RoleClient
	user.Client = clientProfileFromInput(profile)

	if err := s.save(ctx, user, false); err != nil {
		return nil, err
	}
	if s.standings != nil {
		_ = s.standings.Invalidate(ctx, userID)
	}

	s.logger.Info().Str("user_id", userID).Msg("account upgraded to client")
	return user, nil
}

func clientProfileFromInput(in ports.ClientProfileInput) *domain.ClientProfile {
	return &domain.ClientProfile{
		CoverImage: in.CoverImage,
		Bio:        in.Bio,
		Website:    in.Website,
		SocialLinks: domain.SocialLinks{
			Facebook:  in.Facebook,
			Instagram: in.Instagram,
			Twitter:   in.Twitter,
			LinkedIn:  in.LinkedIn,
		},
		Status: domain.ClientPending,
	}
}

// --- Listings ---

func (s *UserService) AddListing(ctx context.Context, userID string, input ports.ListingInput) (*domain.Listing, error) {
	if err := s.ensureStanding(ctx, userID); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	listing, err := listingFromInput(input)
	if err != nil {
		return nil, err
	}
	listing.ID = newEmbeddedID()
	user.Listings = append(user.Listings, *listing)

	if err := s.save(ctx, user, false); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *UserService) UpdateListing(ctx context.Context, userID, listingID string, input ports.ListingInput) (*domain.Listing, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range user.Listings {
		if user.Listings[i].ID == listingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrListingNotFound
	}

	listing, err := listingFromInput(input)
	if err != nil {
		return nil, err
	}
	listing.ID = listingID
	user.Listings[idx] = *listing

	if err := s.save(ctx, user, false); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *UserService) RemoveListing(ctx context.Context, userID, listingID string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	kept := user.Listings[:0]
	found := false
	for _, l := range user.Listings {
		if l.ID == listingID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return domain.ErrListingNotFound
	}
	user.Listings = kept

	return s.save(ctx, user, false)
}

func listingFromInput(in ports.ListingInput) (*domain.Listing, error) {
	l := &domain.Listing{
		URL:         in.URL,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
		Type:        in.Type,
		Brand:       in.Brand,
		Material:    in.Material,
		Color:       in.Color,
		Features:    in.Features,
	}
	if in.Condition != "" {
		c := domain.Condition(in.Condition)
		if !c.Valid() {
			return nil, domain.ErrValidation
		}
		l.Condition = &c
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// newEmbeddedID returns a random 24-char hex identifier for embedded records.
func newEmbeddedID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format("060102150405")))
	}
	return hex.EncodeToString(b)
}

// --- Bookmarks ---

func (s *UserService) AddBookmark(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return domain.ErrValidation
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	for _, b := range user.Bookmarks {
		if b.ProductID == productID {
			return nil
		}
	}
	user.Bookmarks = append(user.Bookmarks, domain.Bookmark{
		ProductID: productID,
		SavedAt:   time.Now().UTC(),
	})

	return s.save(ctx, user, false)
}

func (s *UserService) RemoveBookmark(ctx context.Context, userID, productID string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	kept := user.Bookmarks[:0]
	for _, b := range user.Bookmarks {
		if b.ProductID != productID {
			kept = append(kept, b)
		}
	}
	user.Bookmarks = kept

	return s.save(ctx, user, false)
}

// --- Cart ---

func (s *UserService) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	if productID == "" {
		return domain.ErrValidation
	}
	if quantity <= 0 {
		quantity = 1
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart[i].Quantity += quantity
			return s.save(ctx, user, false)
		}
	}
	user.Cart = append(user.Cart, domain.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	})

	return s.save(ctx, user, false)
}

func (s *UserService) SetCartQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return domain.ErrValidation
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart[i].Quantity = quantity
			return s.save(ctx, user, false)
		}
	}
	return domain.ErrValidation
}

func (s *UserService) RemoveFromCart(ctx context.Context, userID, productID string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	kept := user.Cart[:0]
	for _, item := range user.Cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	user.Cart = kept

	return s.save(ctx, user, false)
}

// --- Messages ---

// SendMessage appends the message to both participants' documents so each
// side keeps its own copy of the thread.
func (s *UserService) SendMessage(ctx context.Context, fromID, toID, body string) error {
	if body == "" || fromID == toID {
		return domain.ErrValidation
	}
	if err := s.ensureStanding(ctx, fromID); err != nil {
		return err
	}

	sender, err := s.repo.FindByID(ctx, fromID)
	if err != nil {
		return err
	}
	recipient, err := s.repo.FindByID(ctx, toID)
	if err != nil {
		return err
	}

	msg := domain.Message{
		From:   fromID,
		To:     toID,
		Body:   body,
		SentAt: time.Now().UTC(),
	}
	recipient.Messages = append(recipient.Messages, msg)
	if err := s.save(ctx, recipient, false); err != nil {
		return err
	}

	sender.Messages = append(sender.Messages, msg)
	if err := s.save(ctx, sender, false); err != nil {
		return err
	}

	s.logger.Info().Str("from", fromID).Str("to", toID).Msg("message delivered")
	return nil
}
