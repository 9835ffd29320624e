package routes

import (
	"github.com/gin-gonic/gin"

	"participant_admin/internal/controllers"
)

// ParticipantRoutes mounts the participant CRUD surface under a single
// /participants group, all behind Basic Auth.
func ParticipantRoutes(r *gin.Engine, controller *controllers.ParticipantController, authRequired gin.HandlerFunc) {
	participants := r.Group("/participants")
	participants.Use(authRequired)
	{
		participants.POST("/add", controller.AddParticipant)
		participants.GET("", controller.ListParticipants)
		participants.GET("/details", controller.ListParticipantDetails)
		participants.GET("/details/:email", controller.GetPersonalDetails)
		participants.GET("/work/:email", controller.GetWorkDetails)
		participants.GET("/home/:email", controller.GetHomeDetails)
		participants.PUT("/:email", controller.UpdateParticipant)
		participants.DELETE("/:email", controller.DeleteParticipant)
	}
}
