package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeservices_crm/internal/adapter/http/handlers/mocks"
	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/pricing"
	"homeservices_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func measurementRouter(h *MeasurementHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/jobs/:id/measurements", h.AddMeasurement)
	r.GET("/v1/jobs/:id/measurements", h.ListMeasurements)
	r.DELETE("/v1/jobs/:id/measurements/:measurement_id", h.DeleteMeasurement)
	return r
}

func TestMeasurementHandler_AddMeasurement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing dimensions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := measurementRouter(NewMeasurementHandler(mocks.NewMockIMeasurementUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/measurements", bytes.NewBufferString(`{"room_name":"Attic","surface_type":"ceiling"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		r := measurementRouter(NewMeasurementHandler(uc))

		uc.EXPECT().AddMeasurement(gomock.Any(), "job-1", gomock.Any()).Return(entities.Measurement{}, entities.NewValidationError("height", "must be between 1 and 50 ft"))

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/measurements", bytes.NewBufferString(`{"room_name":"Attic","surface_type":"ceiling","height":80,"width":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		r := measurementRouter(NewMeasurementHandler(uc))

		uc.EXPECT().AddMeasurement(gomock.Any(), "job-1", pricing.RawMeasurement{
			RoomName:       "Attic",
			SurfaceType:    "ceiling",
			Height:         "10",
			Width:          "12",
			InsulationType: "closed_cell",
		}).Return(entities.Measurement{ID: "m-1", JobID: "job-1", SquareFeet: decimal.NewFromInt(120)}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/measurements", bytes.NewBufferString(`{"room_name":"Attic","surface_type":"ceiling","height":10,"width":"12","insulation_type":"closed_cell"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"square_feet":"120"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("closed job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		r := measurementRouter(NewMeasurementHandler(uc))

		uc.EXPECT().AddMeasurement(gomock.Any(), "job-1", gomock.Any()).Return(entities.Measurement{}, usecase.ErrJobClosed)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/measurements", bytes.NewBufferString(`{"room_name":"Attic","surface_type":"ceiling","height":10,"width":12}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMeasurementHandler_ListAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMeasurementUseCase(ctrl)
	r := measurementRouter(NewMeasurementHandler(uc))

	uc.EXPECT().ListByJob(gomock.Any(), "job-1").Return(nil, nil)
	uc.EXPECT().DeleteMeasurement(gomock.Any(), "job-1", "m-1").Return(nil)
	uc.EXPECT().DeleteMeasurement(gomock.Any(), "job-1", "m-2").Return(usecase.ErrMeasurementLocked)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/measurements", nil))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1/measurements/m-1", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1/measurements/m-2", nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}
