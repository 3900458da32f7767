package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. The caller attaches the auth
// middleware to the group; the health check stays outside it.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	portal := api.Group("/portal")
	{
		draft := portal.Group("/draft")
		{
			draft.GET("", h.getDraft)
			draft.PUT("", h.saveDraft)
			draft.DELETE("", h.discardDraft)
			draft.POST("/next", h.advanceDraft)
			draft.POST("/previous", h.rewindDraft)
			draft.POST("/review", h.reviewDraft)
		}

		portal.POST("/submit", h.submit)

		portal.GET("/reports", h.listReports)
		portal.GET("/reports/:id/status", h.getReportStatus)
		portal.GET("/reports/:id/messages", h.getMessages)
		portal.POST("/reports/:id/messages", h.postMessage)
		portal.GET("/incidents", h.listIncidents)

		portal.POST("/feedback", h.submitFeedback)
		portal.POST("/feedback/:id/respond", h.respondFeedback)
	}
}

// RegisterSystemRoutes registers the unauthenticated system routes.
func (h *Handler) RegisterSystemRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)
}
