package handler

import (
	"log/slog"
	"net/http"

	"quorum/internal/delivery/http/response"
	"quorum/internal/domain/service"
	"quorum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler drives the recovery token flow: requesting a one-time token,
// verifying it, and revoking it.
type AuthHandler struct {
	viewUC   usecase.ViewUsecase
	tokenUC  usecase.TokenUsecase
	tokenSvc service.OneTimeTokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	viewUC usecase.ViewUsecase,
	tokenUC usecase.TokenUsecase,
	tokenSvc service.OneTimeTokenService,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		viewUC:   viewUC,
		tokenUC:  tokenUC,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

type recoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// verifiedUser is the externally visible shape of a successful verification.
// The internal auth-flow projection never crosses this boundary.
type verifiedUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
}

// RequestRecovery mints a one-time token for the account registered under the
// given email and stores it as the single outstanding token.
func (h *AuthHandler) RequestRecovery(c echo.Context) error {
	var req recoveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recovery input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	user, err := h.viewUC.AuthFlowViewByEmail(ctx, req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	token, expiresAt, err := h.tokenSvc.Mint(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to mint recovery token")
	}

	if err := h.tokenUC.IssueToken(ctx, user.ID, token); err != nil {
		return errors.WithStack(err)
	}

	// The token would normally travel out of band; it is returned here
	// because this service has no mail channel.
	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":    user.ID,
		"token":      token,
		"expires_at": expiresAt,
	}, "Recovery token issued")
}

// VerifyToken checks and consumes a one-time token.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	userID, expiresAt, err := h.tokenSvc.Inspect(req.Token)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Token is malformed")
	}

	view, err := h.tokenUC.VerifyToken(c.Request().Context(), usecase.VerifyTokenInput{
		UserID:    userID,
		Token:     req.Token,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, verifiedUser{
		ID:        view.ID,
		FirstName: view.FirstName,
		LastName:  view.LastName,
		Username:  view.Username,
		Email:     view.Email,
	}, "Token verified")
}

// RevokeToken clears the outstanding token for a user.
func (h *AuthHandler) RevokeToken(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.tokenUC.RevokeToken(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": userID.String()}, "Token revoked")
}
