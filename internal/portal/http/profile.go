package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/httpx"
	"github.com/psicoconecta/portal/pkg/portalapi"
	"github.com/psicoconecta/portal/pkg/slogx"
)

type ProfileHandler struct {
	UserService *service.UserService
}

// HandleUpdate patches the caller's profile. Identity fields (id, email,
// role) cannot be changed here.
//
//	@Summary		Update profile
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.UpdateProfileRequest	true	"Fields to change; omitted fields are left alone"
//	@Success		200		{object}	domain.User
//	@Failure		400		{object}	portalapi.APIError
//	@Failure		401		{object}	portalapi.APIError
//	@Router			/api/profile [patch].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.UpdateProfile(ctx, httpx.UserIDFromCtx(ctx), service.ProfileUpdate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		DateOfBirth:     req.DateOfBirth,
		ProfileImageURL: req.ProfileImageURL,
		PersonalNotes:   req.PersonalNotes,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrUserNotFound.WriteError(w)
			return
		}
		log.Error("failed to update profile", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user)
}

// HandleUpdateNotes replaces the caller's personal notes.
//
//	@Summary		Update personal notes
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.UpdateNotesRequest	true	"New notes"
//	@Success		200		{object}	domain.User
//	@Failure		400		{object}	portalapi.APIError
//	@Router			/api/profile/notes [patch].
func (h *ProfileHandler) HandleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.UpdatePersonalNotes(ctx, httpx.UserIDFromCtx(ctx), req.Notes)
	if err != nil {
		log.Error("failed to update notes", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user)
}
