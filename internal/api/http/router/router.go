// Package router assembles the HTTP route table for the user API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userhub-dev/userhub-server/internal/api/http/handler"
	"github.com/userhub-dev/userhub-server/internal/api/http/middleware"
	"github.com/userhub-dev/userhub-server/internal/logger"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	userHandler *handler.User
	logger      *logger.Logger
}

// New creates a new Router instance.
func New(userService handler.UserService, logger *logger.Logger) *Router {
	return &Router{
		userHandler: handler.NewUser(userService, logger),
		logger:      logger,
	}
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.NewLogging(r.logger).Handle())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/users", r.userHandler.Create)
		v1.GET("/users", r.userHandler.List)
		v1.GET("/users/:id", r.userHandler.Get)
		v1.PATCH("/users/:id", r.userHandler.Update)
		v1.DELETE("/users/:id", r.userHandler.Delete)
		v1.GET("/stats", r.userHandler.Stats)
	}

	return engine
}
