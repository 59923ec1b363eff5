package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/handlers"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
}
