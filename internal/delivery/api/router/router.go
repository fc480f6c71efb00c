// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"directorio/config"
	"directorio/internal/delivery/api/middleware"
	"directorio/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultPublicPrefix = "/files"

type RouterParams struct {
	fx.In

	UsuarioHandler  *handler.UsuarioHandler
	ComercioHandler *handler.ComercioHandler
	WebHandler      *handler.WebHandler
	FileHandler     *handler.FileHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	usuarioHandler  *handler.UsuarioHandler
	comercioHandler *handler.ComercioHandler
	webHandler      *handler.WebHandler
	fileHandler     *handler.FileHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		usuarioHandler:  params.UsuarioHandler,
		comercioHandler: params.ComercioHandler,
		webHandler:      params.WebHandler,
		fileHandler:     params.FileHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Uploaded photos
	e.GET(r.publicPrefix()+"/*", r.fileHandler.Serve)

	apiV1 := e.Group("/api/v1")
	auth := r.authMiddleware.Authenticate

	usuariosGroup := apiV1.Group("/usuarios")
	{
		usuariosGroup.POST("/signup", r.usuarioHandler.Signup)
		usuariosGroup.POST("/signin", r.usuarioHandler.Signin)
		usuariosGroup.GET("/ciudad/:ciudad", r.usuarioHandler.ListByCiudad)
		usuariosGroup.PUT("/me", r.usuarioHandler.Replace, auth)
		usuariosGroup.PATCH("/me", r.usuarioHandler.Patch, auth)
		usuariosGroup.DELETE("/me", r.usuarioHandler.Delete, auth)
	}

	// Writes need an admin usuario; the role is checked by the authorization guard.
	comerciosGroup := apiV1.Group("/comercios")
	{
		comerciosGroup.GET("", r.comercioHandler.List)
		comerciosGroup.GET("/:cif", r.comercioHandler.Get)
		comerciosGroup.POST("", r.comercioHandler.Create, auth)
		comerciosGroup.PUT("/:cif", r.comercioHandler.Replace, auth)
		comerciosGroup.PATCH("/:cif", r.comercioHandler.Patch, auth)
		comerciosGroup.DELETE("/:cif", r.comercioHandler.Delete, auth)
	}

	// Page writes act on the page owned by the calling comercio.
	websGroup := apiV1.Group("/webs")
	{
		websGroup.GET("", r.webHandler.List)
		websGroup.GET("/ciudad/:ciudad", r.webHandler.List)
		websGroup.GET("/ciudad/:ciudad/:actividad", r.webHandler.List)
		websGroup.GET("/:id", r.webHandler.Get)
		websGroup.POST("", r.webHandler.Create, auth)
		websGroup.PUT("", r.webHandler.Replace, auth)
		websGroup.PATCH("", r.webHandler.Patch, auth)
		websGroup.DELETE("", r.webHandler.Delete, auth)
		websGroup.POST("/fotos", r.webHandler.UploadFoto, auth)
		websGroup.POST("/:id/resenas", r.webHandler.CreateResena, auth)
	}
}

func (r *router) publicPrefix() string {
	if r.config == nil || r.config.Storage == nil || r.config.Storage.PublicPrefix == "" {
		return defaultPublicPrefix
	}

	return "/" + strings.Trim(r.config.Storage.PublicPrefix, "/")
}
