// internal/app/features/auth/signup.go
package auth

import (
	"context"
	"net/http"

	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/app/system/auth"
	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/dalemusser/ridehub/internal/app/system/timeouts"
	"github.com/dalemusser/ridehub/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Capacity int    `json:"capacity,omitempty"`
}

// Signup handles POST /api/v1/auth/signup. On success it creates the user
// and returns a bearer token so the client is signed in immediately.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	if len(req.Password) < 8 {
		respond.Err(w, h.Log, apperr.Validation("password must be at least 8 characters"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respond.Err(w, h.Log, apperr.Internal(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		FullName:     req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Capacity:     req.Capacity,
	})
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	token, err := h.Tokens.Issue(auth.TokenUser{
		ID:   user.ID.Hex(),
		Name: user.FullName,
		Role: user.Role,
	})
	if err != nil {
		respond.Err(w, h.Log, apperr.Internal(err))
		return
	}

	respond.OK(w, map[string]any{"user": user, "token": token})
}
