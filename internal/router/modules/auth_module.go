package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-auth-portal/internal/interface/http"
	"github.com/oksasatya/go-auth-portal/internal/interface/middleware"
	"github.com/oksasatya/go-auth-portal/pkg/helpers"
)

// AuthModule wires the auth HTTP handlers into routes.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
