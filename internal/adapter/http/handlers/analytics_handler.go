package handlers

import (
	"fmt"
	"net/http"
	"strings"

	response "homeservices_crm/internal/adapter/http/dto/response"
	"homeservices_crm/internal/infrastructure/reports"
	"homeservices_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves read-only rollups.
type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// CommissionSummary godoc
// @Summary Commission totals per user
// @Tags Analytics
// @Produce json
// @Param user_id query string false "User ID"
// @Param month query string false "Paid month (YYYY-MM)"
// @Success 200 {object} response.CommissionSummaryResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /analytics/commissions [get]
func (h *AnalyticsHandler) CommissionSummary(c *gin.Context) {
	userID, month := strings.TrimSpace(c.Query("user_id")), strings.TrimSpace(c.Query("month"))
	users, err := h.usecase.CommissionSummary(c.Request.Context(), userID, month)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.CommissionSummaryResponse{UserID: userID, Month: month, Users: users})
}

// RevenueBySource godoc
// @Summary Won-job revenue per lead source
// @Tags Analytics
// @Produce json
// @Param month query string false "Approval month (YYYY-MM)"
// @Success 200 {object} response.RevenueBySourceResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /analytics/revenue [get]
func (h *AnalyticsHandler) RevenueBySource(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))
	sources, err := h.usecase.RevenueBySource(c.Request.Context(), month)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRevenueBySource(month, sources))
}

// ExportWorkbook godoc
// @Summary Download the analytics rollups as an Excel workbook
// @Tags Analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param user_id query string false "User ID"
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {file} file
// @Failure 400 {object} pkg.HTTPError
// @Router /analytics/export.xlsx [get]
func (h *AnalyticsHandler) ExportWorkbook(c *gin.Context) {
	userID, month := strings.TrimSpace(c.Query("user_id")), strings.TrimSpace(c.Query("month"))
	raw, err := h.usecase.ExportWorkbook(c.Request.Context(), userID, month)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	name := "crm-report.xlsx"
	if month != "" {
		name = fmt.Sprintf("crm-report-%s.xlsx", month)
	}
	c.Header("Content-Disposition", "attachment; filename="+name)
	c.Data(http.StatusOK, reports.ContentType, raw)
}
