package http

import (
	"net/http"

	"careconnect-server/internal/delivery/http/handler"
	"careconnect-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	schedulingHandler   *handler.SchedulingHandler
	appointmentHandler  *handler.AppointmentHandler
	teamHandler         *handler.TeamHandler
	immunizationHandler *handler.ImmunizationHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	schedulingHandler *handler.SchedulingHandler,
	appointmentHandler *handler.AppointmentHandler,
	teamHandler *handler.TeamHandler,
	immunizationHandler *handler.ImmunizationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		schedulingHandler:   schedulingHandler,
		appointmentHandler:  appointmentHandler,
		teamHandler:         teamHandler,
		immunizationHandler: immunizationHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/provider", r.authHandler.RegisterProvider).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Profile completion (any authenticated user)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("/completion", r.profileHandler.CompletionStatus).Methods(http.MethodGet)
	profile.HandleFunc("/patient", r.profileHandler.CompletePatientProfile).Methods(http.MethodPost)
	profile.HandleFunc("/provider", r.profileHandler.CompleteProviderProfile).Methods(http.MethodPost)

	// Scheduling (patients book; availability and dates are open to any
	// authenticated user so providers can see their own calendar)
	scheduling := api.PathPrefix("/scheduling").Subrouter()
	scheduling.Use(r.authMiddleware.Authenticate)
	scheduling.HandleFunc("/providers/{providerId}/slots", r.schedulingHandler.GetAvailableSlots).Methods(http.MethodGet)
	scheduling.HandleFunc("/dates", r.schedulingHandler.GetBookableDates).Methods(http.MethodGet)

	// Booking is patient-only; listings and transitions serve both roles,
	// scoped inside the usecase.
	booking := api.PathPrefix("/appointments").Subrouter()
	booking.Use(r.authMiddleware.Authenticate)
	booking.Use(middleware.RequirePatient)
	booking.HandleFunc("", r.schedulingHandler.BookAppointment).Methods(http.MethodPost)

	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Healthcare team (patient only)
	team := api.PathPrefix("/healthcare-team").Subrouter()
	team.Use(r.authMiddleware.Authenticate)
	team.Use(middleware.RequirePatient)
	team.HandleFunc("", r.teamHandler.List).Methods(http.MethodGet)
	team.HandleFunc("", r.teamHandler.Add).Methods(http.MethodPost)
	team.HandleFunc("/{providerId}", r.teamHandler.Remove).Methods(http.MethodDelete)

	// Immunizations (patient only)
	immunizations := api.PathPrefix("/immunizations").Subrouter()
	immunizations.Use(r.authMiddleware.Authenticate)
	immunizations.Use(middleware.RequirePatient)
	immunizations.HandleFunc("", r.immunizationHandler.List).Methods(http.MethodGet)
	immunizations.HandleFunc("", r.immunizationHandler.Create).Methods(http.MethodPost)
	immunizations.HandleFunc("/{id}", r.immunizationHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
