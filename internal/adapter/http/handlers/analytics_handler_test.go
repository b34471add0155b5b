package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeservices_crm/internal/adapter/http/handlers/mocks"
	"homeservices_crm/internal/domain/analytics"
	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/infrastructure/reports"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func analyticsRouter(h *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/analytics/commissions", h.CommissionSummary)
	r.GET("/v1/analytics/revenue", h.RevenueBySource)
	r.GET("/v1/analytics/export.xlsx", h.ExportWorkbook)
	return r
}

func TestAnalyticsHandler_CommissionSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		r := analyticsRouter(NewAnalyticsHandler(uc))

		uc.EXPECT().CommissionSummary(gomock.Any(), "u1", "2026-04").Return(map[string]analytics.CommissionTotals{
			"u1": {Frontend: decimal.NewFromInt(200), Backend: decimal.NewFromInt(100), Total: decimal.NewFromInt(300)},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/commissions?user_id=u1&month=2026-04", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Users map[string]map[string]string `json:"users"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.Users["u1"]["total"] != "300" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("bad month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		r := analyticsRouter(NewAnalyticsHandler(uc))

		uc.EXPECT().CommissionSummary(gomock.Any(), "", "April").Return(nil, entities.NewValidationError("month", "must be YYYY-MM, got %q", "April"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/commissions?month=April", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_RevenueBySource(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnalyticsUseCase(ctrl)
	r := analyticsRouter(NewAnalyticsHandler(uc))

	uc.EXPECT().RevenueBySource(gomock.Any(), "").Return(map[string]decimal.Decimal{
		"referral": decimal.RequireFromString("5000.50"),
		"website":  decimal.Zero,
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/revenue", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Sources map[string]string `json:"sources"`
		Total   string            `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if body.Sources["website"] != "0" || body.Total != "5000.5" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAnalyticsHandler_ExportWorkbook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnalyticsUseCase(ctrl)
	r := analyticsRouter(NewAnalyticsHandler(uc))

	uc.EXPECT().ExportWorkbook(gomock.Any(), "", "2026-04").Return([]byte("PK"), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/export.xlsx?month=2026-04", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != reports.ContentType {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=crm-report-2026-04.xlsx" {
		t.Fatalf("unexpected disposition %q", cd)
	}
}
