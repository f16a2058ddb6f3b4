package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bazarhub/marketplace-api/internal/api/metrics"
	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

// AdminHandler serves the moderation surface. Routes mounted behind the admin
// guard, so every request here carries an admin session.
type AdminHandler struct {
	admins ports.AdminService
}

func NewAdminHandler(admins ports.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// Promote elevates a user to admin with the default permission set.
//
// @Summary      Promote a user to admin
// @Tags         admin
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      201     {object}  adminResponse
// @Failure      404     {object}  errorResponse
// @Failure      409     {object}  errorResponse
// @Router       /admin/users/{userId}/promote [post]
func (h *AdminHandler) Promote(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}

	admin, err := h.admins.Promote(c.Request().Context(), actorID, c.Param("userId"))
	if err != nil {
		return err
	}
	metrics.AdminActionsTotal.WithLabelValues("promote").Inc()
	return c.JSON(http.StatusCreated, toAdminResponse(*admin))
}

// SetPermissions replaces an admin's permission flags.
//
// @Summary      Update admin permissions
// @Tags         admin
// @Accept       json
// @Param        adminId  path  string              true  "Admin id"
// @Param        body     body  permissionsRequest  true  "Permission flags"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /admin/admins/{adminId}/permissions [put]
func (h *AdminHandler) SetPermissions(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req permissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	perms := domain.Permissions{
		ManageUsers:   req.ManageUsers,
		ManageContent: req.ManageContent,
		ViewAuditLogs: req.ViewAuditLogs,
		SuperAdmin:    req.SuperAdmin,
	}
	if err := h.admins.SetPermissions(c.Request().Context(), actorID, c.Param("adminId"), perms); err != nil {
		return err
	}
	metrics.AdminActionsTotal.WithLabelValues("set_permissions").Inc()
	return c.NoContent(http.StatusNoContent)
}

// SetClientStatus moves a client account through pending/approved/suspended.
//
// @Summary      Set client status
// @Tags         admin
// @Accept       json
// @Param        userId  path  string               true  "User id"
// @Param        body    body  clientStatusRequest  true  "New status"
// @Success      204  "No Content"
// @Failure      422  {object}  errorResponse
// @Router       /admin/users/{userId}/client-status [put]
func (h *AdminHandler) SetClientStatus(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req clientStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := domain.ClientStatus(req.Status)
	if err := h.admins.SetClientStatus(c.Request().Context(), actorID, c.Param("userId"), status); err != nil {
		return err
	}
	metrics.AdminActionsTotal.WithLabelValues("set_client_status").Inc()
	return c.NoContent(http.StatusNoContent)
}

// SetSuspended toggles the account-level lockout.
//
// @Summary      Suspend or unsuspend a user
// @Tags         admin
// @Accept       json
// @Param        userId  path  string          true  "User id"
// @Param        body    body  suspendRequest  true  "Suspension flag"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{userId}/suspend [put]
func (h *AdminHandler) SetSuspended(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req suspendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.admins.SetSuspended(c.Request().Context(), actorID, c.Param("userId"), *req.Suspended); err != nil {
		return err
	}
	metrics.AdminActionsTotal.WithLabelValues("set_suspended").Inc()
	return c.NoContent(http.StatusNoContent)
}

// BanUser locks the account, optionally for a fixed number of days.
//
// @Summary      Ban a user
// @Tags         admin
// @Accept       json
// @Param        userId  path  string      true  "User id"
// @Param        body    body  banRequest  true  "Ban length in days; 0 for indefinite"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{userId}/ban [post]
func (h *AdminHandler) BanUser(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req banRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.admins.BanUser(c.Request().Context(), actorID, c.Param("userId"), req.Days); err != nil {
		return err
	}
	metrics.AdminActionsTotal.WithLabelValues("ban").Inc()
	return c.NoContent(http.StatusNoContent)
}

// UnbanUser clears the ban entirely.
//
// @Summary      Unban a user
// @Tags         admin
// @Param        userId  path  string  true  "User id"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{userId}/ban [delete]
func (h *AdminHandler) UnbanUser(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if err := h.admins.UnbanUser(c.Request().Context(), actorID, c.Param("userId")); err != nil {
		return err
	}
	metrics.AdminActionsTotal.WithLabelValues("unban").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ListUsers pages over accounts with optional filters.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        role    query     string  false  "Filter by role"
// @Param        kind    query     string  false  "Filter by kind"
// @Param        status  query     string  false  "Filter by client status"
// @Param        search  query     string  false  "Match name, business name or email"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  userListResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.admins.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Role:   c.QueryParam("role"),
		Kind:   c.QueryParam("kind"),
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	items := make([]userResponse, 0, len(result.Items))
	for _, u := range result.Items {
		items = append(items, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, userListResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// ListAuditLogs pages over the audit trail, newest first.
//
// @Summary      List audit logs
// @Tags         admin
// @Produce     json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  auditPageResponse
// @Router       /admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.admins.ListAuditLogs(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	items := make([]auditLogResponse, 0, len(result.Items))
	for _, l := range result.Items {
		items = append(items, toAuditLogResponse(*l))
	}
	return c.JSON(http.StatusOK, auditPageResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}
