package handler

import (
	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerRequest) ports.RegisterInput {
	in := ports.RegisterInput{
		FirstName:    req.FirstName,
		SecondName:   req.SecondName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Email:        req.Email,
		Password:     req.Password,
		Address:      req.Address,
		Location:     req.Location,
		AsClient:     req.AsClient,
	}
	if req.Client != nil {
		in.Client = toClientProfileInput(*req.Client)
	}
	return in
}

func toClientProfileInput(req clientProfileRequest) ports.ClientProfileInput {
	return ports.ClientProfileInput{
		CoverImage: req.CoverImage,
		Bio:        req.Bio,
		Website:    req.Website,
		Facebook:   req.Facebook,
		Instagram:  req.Instagram,
		Twitter:    req.Twitter,
		LinkedIn:   req.LinkedIn,
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:           u.ID,
		Kind:         string(u.Kind),
		FirstName:    u.FirstName,
		SecondName:   u.SecondName,
		LastName:     u.LastName,
		BusinessName: u.BusinessName,
		Phone:        u.Phone,
		Email:        u.Email,
		Address:      u.Address,
		ProfileImage: u.ProfileImage,
		Location:     u.Location,
		Role:         u.Role,
		Approved:     u.Approved,
		Suspended:    u.Suspended,
		Ban:          toBanResponse(u.Ban),
		Listings:     toListingResponses(u.Listings),
		Bookmarks:    toBookmarkResponses(u.Bookmarks),
		Cart:         toCartItemResponses(u.Cart),
		Messages:     toMessageResponses(u.Messages),
		CreatedAt:    u.CreatedAt,
	}
	if u.IsClient() {
		resp.Client = &clientProfileResponse{
			CoverImage: u.Client.CoverImage,
			Bio:        u.Client.Bio,
			Website:    u.Client.Website,
			Facebook:   u.Client.SocialLinks.Facebook,
			Instagram:  u.Client.SocialLinks.Instagram,
			Twitter:    u.Client.SocialLinks.Twitter,
			LinkedIn:   u.Client.SocialLinks.LinkedIn,
			Status:     string(u.Client.Status),
		}
	}
	return resp
}

func toBanResponse(b domain.Ban) banResponse {
	resp := banResponse{Active: b.Status, Days: b.Days}
	if !b.BannedAt.IsZero() {
		t := b.BannedAt
		resp.BannedAt = &t
	}
	return resp
}

func toListingResponses(listings []domain.Listing) []listingResponse {
	out := make([]listingResponse, len(listings))
	for i, l := range listings {
		out[i] = toListingResponse(l)
	}
	return out
}

func toListingResponse(l domain.Listing) listingResponse {
	resp := listingResponse{
		ID:          l.ID,
		URL:         l.URL,
		Name:        l.Name,
		Price:       l.Price,
		Description: l.Description,
		Location:    l.Location,
		Category:    l.Category,
		Type:        l.Type,
		Brand:       l.Brand,
		Material:    l.Material,
		Color:       l.Color,
		Features:    l.Features,
	}
	if l.Condition != nil {
		c := string(*l.Condition)
		resp.Condition = &c
	}
	return resp
}

func toBookmarkResponses(bookmarks []domain.Bookmark) []bookmarkResponse {
	out := make([]bookmarkResponse, len(bookmarks))
	for i, b := range bookmarks {
		out[i] = bookmarkResponse{ProductID: b.ProductID, SavedAt: b.SavedAt}
	}
	return out
}

func toCartItemResponses(items []domain.CartItem) []cartItemResponse {
	out := make([]cartItemResponse, len(items))
	for i, item := range items {
		out[i] = cartItemResponse{ProductID: item.ProductID, Quantity: item.Quantity, AddedAt: item.AddedAt}
	}
	return out
}

func toMessageResponses(messages []domain.Message) []messageResponse {
	out := make([]messageResponse, len(messages))
	for i, m := range messages {
		out[i] = messageResponse{From: m.From, To: m.To, Body: m.Body, SentAt: m.SentAt}
	}
	return out
}
