package http

import (
	"net/http"

	"mapeo-backend/internal/delivery/http/handler"
	"mapeo-backend/internal/delivery/http/middleware"
	"mapeo-backend/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	usuarioHandler     *handler.UsuarioHandler
	direccionHandler   *handler.DireccionHandler
	embarazadaHandler  *handler.EmbarazadaHandler
	riesgoHandler      *handler.RiesgoHandler
	seguimientoHandler *handler.SeguimientoHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	usuarioHandler *handler.UsuarioHandler,
	direccionHandler *handler.DireccionHandler,
	embarazadaHandler *handler.EmbarazadaHandler,
	riesgoHandler *handler.RiesgoHandler,
	seguimientoHandler *handler.SeguimientoHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		usuarioHandler:     usuarioHandler,
		direccionHandler:   direccionHandler,
		embarazadaHandler:  embarazadaHandler,
		riesgoHandler:      riesgoHandler,
		seguimientoHandler: seguimientoHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// Setup registers the routes at the root, without an /api prefix, for wire
// compatibility with the deployed frontend.
func (r *Router) Setup() *mux.Router {
	r.router.HandleFunc("/", r.root).Methods(http.MethodGet)

	// Session
	r.router.HandleFunc("/check-session", r.authHandler.CheckSession).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Usuarios
	r.router.HandleFunc("/usuarios", r.usuarioHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/usuarios", r.usuarioHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/usuarios/{id}", r.usuarioHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/usuarios/{id}", r.usuarioHandler.Delete).Methods(http.MethodDelete)

	// Direcciones (no update endpoint)
	r.router.HandleFunc("/direcciones", r.direccionHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/direcciones", r.direccionHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/direcciones/{id}", r.direccionHandler.Delete).Methods(http.MethodDelete)

	// Embarazadas
	r.router.HandleFunc("/embarazadas", r.embarazadaHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/embarazadas-con-direccion", r.embarazadaHandler.ListConDireccion).Methods(http.MethodGet)
	r.router.HandleFunc("/embarazadas", r.embarazadaHandler.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/embarazadas/{id}", r.embarazadaHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/embarazadas/{id}", r.embarazadaHandler.Delete).Methods(http.MethodDelete)

	// Seguimientos (no delete endpoint)
	r.router.HandleFunc("/seguimientos", r.seguimientoHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/seguimientos", r.seguimientoHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/seguimientos/{id}", r.seguimientoHandler.Update).Methods(http.MethodPut)

	// Riesgos (no delete endpoint)
	r.router.HandleFunc("/riesgos", r.riesgoHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/reportes/riesgos", r.riesgoHandler.Report).Methods(http.MethodGet)
	r.router.HandleFunc("/riesgos", r.riesgoHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/riesgos/{id}", r.riesgoHandler.Update).Methods(http.MethodPut)

	// Logging wraps CORS so rejected origins still show up in the request log.
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) root(w http.ResponseWriter, req *http.Request) {
	response.Text(w, http.StatusOK, "Backend funcionando correctamente")
}
