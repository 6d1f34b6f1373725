// internal/app/features/auth/login.go
package auth

import (
	"context"
	"net/http"

	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/app/system/auth"
	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/dalemusser/ridehub/internal/app/system/timeouts"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login. Unknown email and wrong password
// return the same message so the endpoint does not confirm which addresses
// have accounts.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			err = apperr.Unauthorized("invalid email or password")
		}
		respond.Err(w, h.Log, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respond.Err(w, h.Log, apperr.Unauthorized("invalid email or password"))
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
