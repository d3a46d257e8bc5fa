// Package http wires the portal's REST surface: route registration,
// middleware chains per endpoint class, and the handler structs.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/httpx"
	"github.com/psicoconecta/portal/pkg/jwtx"
	"github.com/psicoconecta/portal/pkg/slogx"

	_ "github.com/psicoconecta/portal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	SessionService     *service.SessionService
	ChatTokenService   *service.ChatTokenService
	ChatService        *service.ChatService
	UserService        *service.UserService
	AppointmentService *service.AppointmentService
	TestimonialService *service.TestimonialService

	// WSHandler serves GET /ws. It lives in the ws package; the router
	// only mounts it.
	WSHandler http.Handler
}

func NewRouter(verifier jwtx.Verifier, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerChat()
	r.registerAppointments()
	r.registerTestimonials()
	r.registerProfile()
	r.registerPractice()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			PsicoConecta Portal API
//	@version		0.1.0
//	@description	Backend for the PsicoConecta therapy portal: session auth,
//	@description	appointments, testimonials, and the real-time patient to
//	@description	psychologist chat (REST history plus a WebSocket relay at /ws).
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{SessionService: r.SessionService}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(login,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	me := &CurrentUserHandler{UserService: r.UserService}
	r.Mux.Handle("GET /api/auth/user",
		httpx.Chain(me,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Minting connection tokens is cheap to ask for and gates a socket,
	// so keep it strict.
	wsToken := &ChatTokenHandler{ChatTokenService: r.ChatTokenService}
	r.Mux.Handle("GET /api/auth/ws-token",
		httpx.Chain(wsToken,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerChat() {
	history := &ChatHistoryHandler{ChatService: r.ChatService}
	r.Mux.Handle("GET /api/chat/{otherUserId}",
		httpx.Chain(history,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// The socket authenticates with its own token, not the session
	// bearer, so no AuthnMiddleware here.
	r.Mux.Handle("GET /ws",
		httpx.Chain(r.WSHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{AppointmentService: r.AppointmentService}

	r.Mux.Handle("POST /api/appointments",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("patient"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/appointments",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PATCH /api/appointments/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTestimonials() {
	h := &TestimonialsHandler{TestimonialService: r.TestimonialService}

	// Public landing page feed.
	r.Mux.Handle("GET /api/testimonials",
		httpx.Chain(http.HandlerFunc(h.HandleListPublished),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /api/testimonials",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("patient"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/admin/testimonials",
		httpx.Chain(http.HandlerFunc(h.HandleListAll),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("psychologist"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PATCH /api/admin/testimonials/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleSetPublished),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("psychologist"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{UserService: r.UserService}

	r.Mux.Handle("PATCH /api/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PATCH /api/profile/notes",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateNotes),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPractice() {
	psych := &PsychologistHandler{UserService: r.UserService}
	r.Mux.Handle("GET /api/psychologist",
		httpx.Chain(psych,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	patients := &PatientsHandler{UserService: r.UserService}
	r.Mux.Handle("GET /api/admin/patients",
		httpx.Chain(patients,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("psychologist"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.buildVersion, r.startTime))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.buildVersion, r.startTime, r.store))
}
