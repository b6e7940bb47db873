package router

import (
	"github.com/oksasatya/go-auth-portal/internal/application"
	"github.com/oksasatya/go-auth-portal/internal/container"
	handlers "github.com/oksasatya/go-auth-portal/internal/interface/http"
	"github.com/oksasatya/go-auth-portal/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container
// singletons are in place.
func InitModules(r *Registry) {
	svc := application.NewService(
		container.GetStore(),
		container.GetJWT(),
		container.GetLogger(),
	)
	authHandler := handlers.NewAuthHandler(svc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler()))
}
