package handler

import "time"

type listingRequest struct {
	URL         string  `json:"url" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Brand       string  `json:"brand"`
	Material    string  `json:"material"`
	Condition   string  `json:"condition" validate:"omitempty,oneof=Used 'Brand New' Refurbished"`
	Color       string  `json:"color"`
	Features    string  `json:"features"`
}

type listingResponse struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Location    string  `json:"location,omitempty"`
	Category    string  `json:"category,omitempty"`
	Type        string  `json:"type,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Material    string  `json:"material,omitempty"`
	Condition   *string `json:"condition,omitempty"`
	Color       string  `json:"color,omitempty"`
	Features    string  `json:"features,omitempty"`
}

type bookmarkRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type bookmarkResponse struct {
	ProductID string    `json:"product_id"`
	SavedAt   time.Time `json:"saved_at"`
}

type cartAddRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type cartItemResponse struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

type sendMessageRequest struct {
	To   string `json:"to" validate:"required"`
	Body string `json:"message" validate:"required"`
}

type messageResponse struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Body   string    `json:"message"`
	SentAt time.Time `json:"sent_at"`
}
