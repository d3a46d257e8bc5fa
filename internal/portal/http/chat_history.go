package http

import (
	"errors"
	"net/http"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/pkg/httpx"
	"github.com/psicoconecta/portal/pkg/portalapi"
	"github.com/psicoconecta/portal/pkg/slogx"
)

type ChatHistoryHandler struct {
	ChatService *service.ChatService
}

// ServeHTTP returns the caller's conversation with another user and marks
// the incoming messages read.
//
//	@Summary		Get conversation history
//	@Description	Returns all messages with the other user, oldest first. The
//	@Description	role policy applies: only a patient and the psychologist may
//	@Description	read each other's conversation.
//	@Tags			Chat
//	@Security		BearerAuth
//	@Produce		json
//	@Param			otherUserId	path		string	true	"Other user's id"
//	@Success		200			{array}		domain.ChatMessage
//	@Failure		401			{object}	portalapi.APIError
//	@Failure		403			{object}	portalapi.APIError	"Pairing not allowed"
//	@Failure		404			{object}	portalapi.APIError	"Other user not found"
//	@Router			/api/chat/{otherUserId} [get].
func (h *ChatHistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		portalapi.ErrUnauthorized.WriteError(w)
		return
	}

	otherID := r.PathValue("otherUserId")
	msgs, err := h.ChatService.History(ctx, userID, otherID)
	switch {
	case err == nil:

	case errors.Is(err, service.ErrUnknownReceiver):
		portalapi.ErrUserNotFound.WriteError(w)
		return

	case errors.Is(err, service.ErrNotAllowed):
		portalapi.NewError(http.StatusForbidden, "Messaging not allowed between these users").WriteError(w)
		return

	default:
		log.Error("failed to load conversation", "user_id", userID, "other_id", otherID, "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	httpx.WriteJSON(w, http.StatusOK, msgs)
}
