package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

// MarketplaceHandler serves the listing, bookmark, cart and messaging
// operations for the logged-in user.
type MarketplaceHandler struct {
	users ports.UserService
}

func NewMarketplaceHandler(users ports.UserService) *MarketplaceHandler {
	return &MarketplaceHandler{users: users}
}

func toListingInput(req listingRequest) ports.ListingInput {
	return ports.ListingInput{
		URL:         req.URL,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Type:        req.Type,
		Brand:       req.Brand,
		Material:    req.Material,
		Condition:   req.Condition,
		Color:       req.Color,
		Features:    req.Features,
	}
}

// AddListing publishes a new listing under the current user.
//
// @Summary      Add a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        body  body      listingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /listings [post]
func (h *MarketplaceHandler) AddListing(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.users.AddListing(c.Request().Context(), userID, toListingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toListingResponse(*listing))
}

// UpdateListing replaces a listing's fields.
//
// @Summary      Update a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Listing id"
// @Param        body  body      listingRequest  true  "Listing details"
// @Success      200   {object}  listingResponse
// @Failure      404   {object}  errorResponse
// @Router       /listings/{id} [put]
func (h *MarketplaceHandler) UpdateListing(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.users.UpdateListing(c.Request().Context(), userID, c.Param("id"), toListingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(*listing))
}

// RemoveListing deletes a listing.
//
// @Summary      Remove a listing
// @Tags         listings
// @Param        id  path  string  true  "Listing id"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /listings/{id} [delete]
func (h *MarketplaceHandler) RemoveListing(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if err := h.users.RemoveListing(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddBookmark saves a product reference. Saving the same product twice is a
// no-op.
//
// @Summary      Bookmark a product
// @Tags         bookmarks
// @Accept       json
// @Param        body  body  bookmarkRequest  true  "Product reference"
// @Success      204   "No Content"
// @Failure      400   {object}  errorResponse
// @Router       /bookmarks [post]
func (h *MarketplaceHandler) AddBookmark(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req bookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.AddBookmark(c.Request().Context(), userID, req.ProductID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveBookmark drops a saved product reference.
//
// @Summary      Remove a bookmark
// @Tags         bookmarks
// @Param        productId  path  string  true  "Product id"
// @Success      204  "No Content"
// @Router       /bookmarks/{productId} [delete]
func (h *MarketplaceHandler) RemoveBookmark(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if err := h.users.RemoveBookmark(c.Request().Context(), userID, c.Param("productId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddToCart puts a product in the cart. Quantity defaults to 1; adding an
// already-carted product increments its quantity.
//
// @Summary      Add to cart
// @Tags         cart
// @Accept       json
// @Param        body  body  cartAddRequest  true  "Product and quantity"
// @Success      204   "No Content"
// @Failure      400   {object}  errorResponse
// @Router       /cart [post]
func (h *MarketplaceHandler) AddToCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req cartAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.AddToCart(c.Request().Context(), userID, req.ProductID, req.Quantity); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetCartQuantity sets the exact quantity of a carted product.
//
// @Summary      Set cart quantity
// @Tags         cart
// @Accept       json
// @Param        productId  path  string               true  "Product id"
// @Param        body       body  cartQuantityRequest  true  "New quantity"
// @Success      204  "No Content"
// @Failure      400  {object}  errorResponse
// @Router       /cart/{productId} [put]
func (h *MarketplaceHandler) SetCartQuantity(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req cartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.SetCartQuantity(c.Request().Context(), userID, c.Param("productId"), req.Quantity); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveFromCart drops a product from the cart.
//
// @Summary      Remove from cart
// @Tags         cart
// @Param        productId  path  string  true  "Product id"
// @Success      204  "No Content"
// @Router       /cart/{productId} [delete]
func (h *MarketplaceHandler) RemoveFromCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if err := h.users.RemoveFromCart(c.Request().Context(), userID, c.Param("productId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SendMessage delivers a message to another user.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Param        body  body  sendMessageRequest  true  "Recipient and body"
// @Success      204   "No Content"
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /messages [post]
func (h *MarketplaceHandler) SendMessage(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.SendMessage(c.Request().Context(), userID, req.To, req.Body); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
