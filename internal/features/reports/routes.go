package reports

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the citizen endpoints on public and the administrator
// endpoints on admin. Callers attach auth and rate limiting to the groups.
func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler, submitLimit gin.HandlerFunc) {
	reports := public.Group("/reports")
	{
		if submitLimit != nil {
			reports.POST("", submitLimit, h.Submit)
		} else {
			reports.POST("", h.Submit)
		}
		reports.GET("/:reference", h.CheckStatus)
	}

	admin.GET("/dashboard", h.Dashboard)
	adminReports := admin.Group("/reports")
	{
		adminReports.GET("", h.List)
		adminReports.PATCH("/:reference/status", h.UpdateStatus)
	}
}
