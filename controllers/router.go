package controllers

import (
	"net/http"

	"notes_share_go/auth"
	"notes_share_go/config"
	"notes_share_go/data"
	"notes_share_go/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// NewRouter wires every handler onto a gorilla/mux router. Bearer-protected
// routes live on subrouters behind the JWT middleware; the auth endpoints
// and /shared/{token} stay open.
func NewRouter(store *data.Store, jwtSvc *auth.Service, cfg *config.Config, log zerolog.Logger) *mux.Router {
	authCtrl := NewAuthController(store, jwtSvc, log)
	notesCtrl := NewNotesController(store, log)
	shareCtrl := NewShareController(store, cfg.PublicBaseURL, log)

	router := mux.NewRouter()
	router.Use(middleware.Logging(log))

	router.HandleFunc("/", Root).Methods(http.MethodGet)
	router.HandleFunc("/health", HealthCheck).Methods(http.MethodGet)

	// Open authentication routes.
	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/signup", authCtrl.Signup).Methods(http.MethodPost)
	authRouter.HandleFunc("/login", authCtrl.Login).Methods(http.MethodPost)
	authRouter.HandleFunc("/guest", authCtrl.GuestLogin).Methods(http.MethodPost)

	// Public read path: possession of the token is the whole credential.
	router.HandleFunc("/shared/{token}", shareCtrl.SharedNote).Methods(http.MethodGet)

	// Logout wants a valid credential, so it sits on its own subrouter
	// behind the JWT middleware.
	sessionRouter := router.PathPrefix("/auth").Subrouter()
	sessionRouter.Use(middleware.JWT(jwtSvc, log))
	sessionRouter.HandleFunc("/logout", authCtrl.Logout).Methods(http.MethodPost)

	notesRouter := router.PathPrefix("/notes").Subrouter()
	notesRouter.Use(middleware.JWT(jwtSvc, log))
	notesRouter.HandleFunc("/", notesCtrl.List).Methods(http.MethodGet)
	notesRouter.HandleFunc("/", notesCtrl.Create).Methods(http.MethodPost)
	notesRouter.HandleFunc("/{id:[0-9]+}", notesCtrl.Get).Methods(http.MethodGet)
	notesRouter.HandleFunc("/{id:[0-9]+}", notesCtrl.Update).Methods(http.MethodPut)
	notesRouter.HandleFunc("/{id:[0-9]+}", notesCtrl.Delete).Methods(http.MethodDelete)
	notesRouter.HandleFunc("/{id:[0-9]+}/share", shareCtrl.Share).Methods(http.MethodPost)
	notesRouter.HandleFunc("/{id:[0-9]+}/share", shareCtrl.Revoke).Methods(http.MethodDelete)

	return router
}
