package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"participant_admin/internal/auth"
	"participant_admin/internal/config"
	"participant_admin/internal/controllers"
	"participant_admin/internal/middleware"
	"participant_admin/internal/repository"
)

// SetupRouter wires the dependency graph and mounts every route exactly
// once. Middleware is attached before any route so it applies everywhere.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	verifier := auth.NewVerifier(db)
	store := repository.NewParticipantRepository(db)
	controller := controllers.NewParticipantController(store)

	ParticipantRoutes(r, controller, middleware.RequireBasicAuth(verifier))

	return r
}
