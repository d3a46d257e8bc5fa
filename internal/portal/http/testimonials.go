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

type TestimonialsHandler struct {
	TestimonialService *service.TestimonialService
}

// HandleCreate submits a testimonial. It starts unpublished.
//
//	@Summary		Submit a testimonial
//	@Tags			Testimonials
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.CreateTestimonialRequest	true	"Rating (1-5) and comment"
//	@Success		201		{object}	domain.Testimonial
//	@Failure		400		{object}	portalapi.APIError
//	@Failure		403		{object}	portalapi.APIError	"Not a patient"
//	@Router			/api/testimonials [post].
func (h *TestimonialsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	tm, err := h.TestimonialService.Create(ctx, httpx.UserIDFromCtx(ctx), req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTestimonial) {
			portalapi.NewError(http.StatusBadRequest, "Rating must be 1-5 and comment must not be empty").WriteError(w)
			return
		}
		log.Error("failed to create testimonial", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tm)
}

// HandleListPublished returns the approved testimonials for the public
// landing page.
//
//	@Summary	List published testimonials
//	@Tags		Testimonials
//	@Produce	json
//	@Success	200	{array}	domain.Testimonial
//	@Router		/api/testimonials [get].
func (h *TestimonialsHandler) HandleListPublished(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	list, err := h.TestimonialService.ListPublished(ctx)
	if err != nil {
		log.Error("failed to list testimonials", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	if list == nil {
		list = []domain.Testimonial{}
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleListAll returns every testimonial for moderation.
//
//	@Summary	List all testimonials
//	@Tags		Testimonials
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.Testimonial
//	@Failure	403	{object}	portalapi.APIError	"Not the psychologist"
//	@Router		/api/admin/testimonials [get].
func (h *TestimonialsHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	list, err := h.TestimonialService.ListAll(ctx)
	if err != nil {
		log.Error("failed to list testimonials", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	if list == nil {
		list = []domain.Testimonial{}
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleSetPublished toggles a testimonial's public visibility.
//
//	@Summary	Publish or unpublish a testimonial
//	@Tags		Testimonials
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Testimonial id"
//	@Param		request	body		portalapi.UpdateTestimonialRequest	true	"Publish flag"
//	@Success	200		{object}	domain.Testimonial
//	@Failure	400		{object}	portalapi.APIError
//	@Failure	404		{object}	portalapi.APIError
//	@Router		/api/admin/testimonials/{id} [patch].
func (h *TestimonialsHandler) HandleSetPublished(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.UpdateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsPublished == nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	tm, err := h.TestimonialService.SetPublished(ctx, r.PathValue("id"), *req.IsPublished)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to update testimonial", "error", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tm)
}
