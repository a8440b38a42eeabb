package handler

import (
	"context"
	"net/http"

	"github.com/spinwager/casino-backend/internal/domain/models"
	"github.com/spinwager/casino-backend/pkg/logger"
	wrap "github.com/spinwager/casino-backend/pkg/logger/wrapper"
)

type UserService interface {
	ValidateToken(ctx context.Context, authHeader string) bool
	GetProfile(ctx context.Context, authHeader string) (*models.AuthResponse, error)
}

type User struct {
	users UserService
	l     logger.Logger
}

func NewUser(service UserService, l logger.Logger) *User {
	return &User{
		users: service,
		l:     l,
	}
}

// Validate godoc
// @Summary      Validate bearer token
// @Description  Answer whether the presented token is valid, unexpired and bound to an existing user. Always responds 200 with a bare boolean body.
// @Tags         user
// @Produce      json
// @Success      200 {boolean} boolean "true or false"
// @Security     BearerAuth
// @Router       /api/user/validate [get]
func (h *User) Validate(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "validate_token")

	// This endpoint never fails the caller's request: malformed headers and
	// internal failures alike answer false with status 200.
	valid := h.users.ValidateToken(ctx, r.Header.Get("Authorization"))

	if err := writeJSON(w, http.StatusOK, valid, nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Profile godoc
// @Summary      Get user profile
// @Description  Return the live profile for the token's subject together with the presented token
// @Tags         user
// @Produce      json
// @Success      200 {object} models.AuthResponse "Profile with the presented token"
// @Failure      401 {object} map[string]interface{} "Invalid or expired token"
// @Failure      404 {object} map[string]interface{} "User not found"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Security     BearerAuth
// @Router       /api/user/profile [get]
func (h *User) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_profile")

	resp, err := h.users.GetProfile(ctx, r.Header.Get("Authorization"))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get profile", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
