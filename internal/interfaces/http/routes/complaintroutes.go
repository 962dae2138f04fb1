package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "civicroute/internal/interfaces/http/handlers/complaint"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.ComplaintHandler
}

func SetupComplaintRoutes(engine *gin.Engine, config *ComplaintRouteConfig) {
	complaints := engine.Group("/complaints")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		complaints.POST("",
			config.ComplaintHandler.ReceiveComplaint)
		complaints.GET("",
			config.ComplaintHandler.ListComplaints)

		// Lookup by public number (must come BEFORE /:id to avoid conflicts)
		complaints.GET("/number/:number",
			config.ComplaintHandler.GetComplaintByNumber)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		complaints.POST("/:id/assign",
			config.ComplaintHandler.AssignComplaint)
		complaints.POST("/:id/release",
			config.ComplaintHandler.ReleaseComplaint)
		complaints.PUT("/:id/answer/draft",
			config.ComplaintHandler.SaveDraftAnswer)
		complaints.POST("/:id/answer/complete",
			config.ComplaintHandler.CompleteAnswer)
		complaints.POST("/:id/archive",
			config.ComplaintHandler.ArchiveComplaint)
		complaints.POST("/:id/cancel",
			config.ComplaintHandler.CancelComplaint)
		complaints.POST("/:id/follow-ups",
			config.ComplaintHandler.CreateFollowUp)
		complaints.POST("/:id/reroutes",
			config.ComplaintHandler.RequestReroute)
		complaints.POST("/:id/normalization",
			config.ComplaintHandler.RecordNormalization)

		// Generic parameterized routes (must come LAST)
		complaints.GET("/:id",
			config.ComplaintHandler.GetComplaint)
	}

	reroutes := engine.Group("/reroutes")
	{
		reroutes.POST("/:id/approve",
			config.ComplaintHandler.ApproveReroute)
		reroutes.POST("/:id/reject",
			config.ComplaintHandler.RejectReroute)
	}
}
