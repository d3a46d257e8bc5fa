package http

import (
	"net/http"

	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/pkg/httpx"
	"github.com/psicoconecta/portal/pkg/portalapi"
	"github.com/psicoconecta/portal/pkg/slogx"
)

type CurrentUserHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the authenticated user's record.
//
//	@Summary		Get current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.User
//	@Failure		401	{object}	portalapi.APIError
//	@Failure		404	{object}	portalapi.APIError
//	@Router			/api/auth/user [get].
func (h *CurrentUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		portalapi.ErrUnauthorized.WriteError(w)
		return
	}

	user, err := h.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "error", err)
		portalapi.ErrUserNotFound.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user)
}
