package routes

import (
	"homeservices_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs      = "/jobs"
	PathEstimates = "/estimates"
	PathAnalytics = "/analytics"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Jobs         *handlers.JobHandler
	Measurements *handlers.MeasurementHandler
	Estimates    *handlers.EstimateHandler
	Analytics    *handlers.AnalyticsHandler
}

func addCRMRoutes(rg *gin.RouterGroup, h Handlers) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.Jobs.CreateJob)
		jobs.GET("/:id", h.Jobs.GetJob)
		jobs.PATCH("/:id/status", h.Jobs.UpdateJobStatus)
		jobs.POST("/:id/complete", h.Jobs.CompleteJob)

		jobs.POST("/:id/measurements", h.Measurements.AddMeasurement)
		jobs.GET("/:id/measurements", h.Measurements.ListMeasurements)
		jobs.DELETE("/:id/measurements/:measurement_id", h.Measurements.DeleteMeasurement)

		jobs.POST("/:id/estimates", h.Estimates.BuildEstimate)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/:id", h.Estimates.GetEstimate)
		estimates.PATCH("/:id/status", h.Estimates.TransitionEstimate)
	}

	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/commissions", h.Analytics.CommissionSummary)
		analytics.GET("/revenue", h.Analytics.RevenueBySource)
		analytics.GET("/export.xlsx", h.Analytics.ExportWorkbook)
	}
}
