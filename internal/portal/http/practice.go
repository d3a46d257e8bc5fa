package http

import (
	"errors"
	"net/http"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/httpx"
	"github.com/psicoconecta/portal/pkg/portalapi"
	"github.com/psicoconecta/portal/pkg/slogx"
)

// PsychologistHandler serves the practice's public psychologist profile.
type PsychologistHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the default psychologist.
//
//	@Summary	Get the practice's psychologist
//	@Tags		Practice
//	@Produce	json
//	@Success	200	{object}	domain.User
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/psychologist [get].
func (h *PsychologistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	psych, err := h.UserService.GetDefaultPsychologist(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.NewError(http.StatusNotFound, "Psychologist not found").WriteError(w)
			return
		}
		log.Error("failed to load psychologist", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, psych)
}

// PatientsHandler serves the psychologist's patient roster.
type PatientsHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns all patient accounts, newest first.
//
//	@Summary	List patients
//	@Tags		Practice
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.User
//	@Failure	403	{object}	portalapi.APIError	"Not the psychologist"
//	@Router		/api/admin/patients [get].
func (h *PatientsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	patients, err := h.UserService.ListPatients(ctx)
	if err != nil {
		log.Error("failed to list patients", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	if patients == nil {
		patients = []domain.User{}
	}
	httpx.WriteJSON(w, http.StatusOK, patients)
}
