// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"quorum/internal/delivery/http/response"
	"quorum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the account and listing handlers.
type UserHandler struct {
	accountUC    usecase.AccountUsecase
	credentialUC usecase.CredentialUsecase
	viewUC       usecase.ViewUsecase
	listingUC    usecase.ListingUsecase
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(
	accountUC usecase.AccountUsecase,
	credentialUC usecase.CredentialUsecase,
	viewUC usecase.ViewUsecase,
	listingUC usecase.ListingUsecase,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		accountUC:    accountUC,
		credentialUC: credentialUC,
		viewUC:       viewUC,
		listingUC:    listingUC,
		logger:       logger,
	}
}

type signupRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type updateAccountRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// Signup handles the account provisioning request.
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.accountUC.CreateAccount(c.Request().Context(), usecase.CreateAccountInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Account created successfully")
}

// GetUser returns the public projection of a user.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	view, err := h.viewUC.PublicView(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// GetAccount returns the owner-facing projection of a user.
func (h *UserHandler) GetAccount(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	view, err := h.viewUC.SameUserView(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateAccount modifies the mutable identity fields of a user.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	view, err := h.accountUC.UpdateAccount(c.Request().Context(), userID, usecase.UpdateAccountInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Account updated successfully")
}

// DeleteAccount removes a user and its role binding.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.accountUC.RemoveAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": userID.String()}, "Account removed successfully")
}

// UpdatePassword rotates a user's password.
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.credentialUC.UpdatePassword(c.Request().Context(), userID, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": userID.String()}, "Password updated successfully")
}

// ListUsers returns the filtered, optionally paginated user listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	query := usecase.ListUsersQuery{
		FirstName: c.QueryParam("first_name"),
		CreatedAt: c.QueryParam("created_at"),
	}

	if raw := c.QueryParam("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid user id filter")
		}
		query.ID = &id
	}

	page, err := parsePageQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pagination window")
	}
	query.PageQuery = page

	result, err := h.listingUC.ListUsers(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// ListVotes returns the votes cast by a user.
func (h *UserHandler) ListVotes(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	page, err := parsePageQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pagination window")
	}

	result, err := h.listingUC.ListVotes(c.Request().Context(), usecase.ListVotesQuery{
		PageQuery: page,
		UserID:    &userID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// parsePageQuery reads the optional limit/offset pair from the query string.
// A missing value stays nil; the window only binds when both are present.
func parsePageQuery(c echo.Context) (usecase.PageQuery, error) {
	var page usecase.PageQuery

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return page, errors.New("invalid limit")
		}
		page.Limit = &limit
	}

	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return page, errors.New("invalid offset")
		}
		page.Offset = &offset
	}

	return page, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
