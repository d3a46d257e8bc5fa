package http

import (
	"net/http"

	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/pkg/httpx"
	"github.com/psicoconecta/portal/pkg/portalapi"
	"github.com/psicoconecta/portal/pkg/slogx"
)

type ChatTokenHandler struct {
	ChatTokenService *service.ChatTokenService
}

// ServeHTTP mints a short-lived WebSocket connection token for the
// authenticated user.
//
//	@Summary		Mint a chat connection token
//	@Description	Returns a short-lived token accepted only by the /ws endpoint.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalapi.ChatTokenResponse
//	@Failure		401	{object}	portalapi.APIError
//	@Router			/api/auth/ws-token [get].
func (h *ChatTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		portalapi.ErrUnauthorized.WriteError(w)
		return
	}

	token, err := h.ChatTokenService.Issue(ctx, userID)
	if err != nil {
		log.Error("failed to mint chat token", "user_id", userID, "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalapi.ChatTokenResponse{Token: token})
}
