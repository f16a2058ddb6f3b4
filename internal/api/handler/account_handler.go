package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

// AccountHandler serves the logged-in user's own account.
type AccountHandler struct {
	users ports.UserService
}

func NewAccountHandler(users ports.UserService) *AccountHandler {
	return &AccountHandler{users: users}
}

// Get returns the current account.
//
// @Summary      Get own profile
// @Tags         account
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /profile [get]
func (h *AccountHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update changes profile fields. Empty fields are left untouched; the
// password never travels through this path.
//
// @Summary      Update own profile
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /profile [put]
func (h *AccountHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := ports.UpdateProfileInput{
		FirstName:    req.FirstName,
		SecondName:   req.SecondName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Address:      req.Address,
		ProfileImage: req.ProfileImage,
		Location:     req.Location,
	}
	if req.Client != nil {
		in := toClientProfileInput(*req.Client)
		input.Client = &in
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ChangePassword re-verifies the current secret before accepting a new one.
//
// @Summary      Change password
// @Tags         account
// @Accept       json
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204   "No Content"
// @Failure      401   {object}  errorResponse
// @Router       /profile/password [put]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.ChangePassword(c.Request().Context(), userID, req.Current, req.Next); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Upgrade converts a base account into a client account with status pending.
//
// @Summary      Upgrade to client account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      upgradeToClientRequest  true  "Client profile"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /profile/upgrade [post]
func (h *AccountHandler) Upgrade(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req upgradeToClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpgradeToClient(c.Request().Context(), userID, ports.ClientProfileInput{
		CoverImage: req.CoverImage,
		Bio:        req.Bio,
		Website:    req.Website,
		Facebook:   req.Facebook,
		Instagram:  req.Instagram,
		Twitter:    req.Twitter,
		LinkedIn:   req.LinkedIn,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
