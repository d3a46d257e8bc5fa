package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/httpx"
	"github.com/psicoconecta/portal/pkg/portalapi"
	"github.com/psicoconecta/portal/pkg/slogx"
)

type AppointmentsHandler struct {
	AppointmentService *service.AppointmentService
}

// HandleCreate books an appointment for the calling patient.
//
//	@Summary		Book an appointment
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.CreateAppointmentRequest	true	"Booking details"
//	@Success		201		{object}	domain.Appointment
//	@Failure		400		{object}	portalapi.APIError
//	@Failure		401		{object}	portalapi.APIError
//	@Failure		403		{object}	portalapi.APIError	"Not a patient"
//	@Router			/api/appointments [post].
func (h *AppointmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	a, err := h.AppointmentService.Create(ctx,
		httpx.UserIDFromCtx(ctx), req.PsychologistID, req.ScheduledAt, req.Duration, req.Notes)
	switch {
	case err == nil:

	case errors.Is(err, service.ErrInvalidAppointment):
		portalapi.ErrInvalidRequest.WriteError(w)
		return

	case errors.Is(err, store.ErrNotFound):
		portalapi.NewError(http.StatusNotFound, "Psychologist not found").WriteError(w)
		return

	default:
		log.Error("failed to create appointment", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, a)
}

// HandleList returns the caller's schedule view.
//
//	@Summary		List appointments
//	@Description	Patients see their own appointments, the psychologist sees all.
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Appointment
//	@Failure		401	{object}	portalapi.APIError
//	@Router			/api/appointments [get].
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	appts, err := h.AppointmentService.List(ctx,
		httpx.UserIDFromCtx(ctx), domain.ParseRole(httpx.RoleFromCtx(ctx)))
	if err != nil {
		log.Error("failed to list appointments", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	if appts == nil {
		appts = []domain.Appointment{}
	}
	httpx.WriteJSON(w, http.StatusOK, appts)
}

// HandleUpdate patches status, notes, or duration.
//
//	@Summary		Update an appointment
//	@Description	Patients may update their own appointments; the psychologist may update any.
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Appointment id"
//	@Param			request	body		portalapi.UpdateAppointmentRequest	true	"Fields to change"
//	@Success		200		{object}	domain.Appointment
//	@Failure		400		{object}	portalapi.APIError
//	@Failure		403		{object}	portalapi.APIError
//	@Failure		404		{object}	portalapi.APIError
//	@Router			/api/appointments/{id} [patch].
func (h *AppointmentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	a, err := h.AppointmentService.Update(ctx,
		httpx.UserIDFromCtx(ctx), domain.ParseRole(httpx.RoleFromCtx(ctx)),
		r.PathValue("id"),
		service.AppointmentUpdate{
			Status:   req.Status,
			Notes:    req.Notes,
			Duration: req.Duration,
		})
	switch {
	case err == nil:

	case errors.Is(err, service.ErrAccessDenied):
		portalapi.ErrAccessDenied.WriteError(w)
		return

	case errors.Is(err, service.ErrInvalidAppointment):
		portalapi.ErrInvalidRequest.WriteError(w)
		return

	case errors.Is(err, store.ErrNotFound):
		portalapi.ErrNotFound.WriteError(w)
		return

	default:
		log.Error("failed to update appointment", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, a)
}
