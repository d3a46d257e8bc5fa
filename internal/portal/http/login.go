package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/pkg/httpx"
	"github.com/psicoconecta/portal/pkg/portalapi"
	"github.com/psicoconecta/portal/pkg/slogx"
)

type LoginHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP handles password login.
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	portalapi.LoginResponse
//	@Failure		400		{object}	portalapi.APIError	"Malformed request"
//	@Failure		401		{object}	portalapi.APIError	"Invalid credentials"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		portalapi.NewError(http.StatusBadRequest, "Email and password are required").WriteError(w)
		return
	}

	token, _, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			portalapi.NewError(http.StatusUnauthorized, "Invalid credentials").WriteError(w)
			return
		}
		log.Error("login failed", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalapi.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(h.SessionService.TTL.Seconds()),
	})
}
