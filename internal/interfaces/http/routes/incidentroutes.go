package routes

import (
	"github.com/gin-gonic/gin"

	incidenthandlers "civicroute/internal/interfaces/http/handlers/incident"
)

type IncidentRouteConfig struct {
	IncidentHandler *incidenthandlers.IncidentHandler
}

func SetupIncidentRoutes(engine *gin.Engine, config *IncidentRouteConfig) {
	incidents := engine.Group("/incidents")
	{
		incidents.GET("",
			config.IncidentHandler.ListIncidents)
		incidents.POST("/link",
			config.IncidentHandler.LinkIncident)
		incidents.GET("/:id",
			config.IncidentHandler.GetIncident)
	}
}
