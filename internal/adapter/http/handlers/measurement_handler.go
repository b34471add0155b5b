package handlers

import (
	"net/http"

	request "homeservices_crm/internal/adapter/http/dto/request"
	response "homeservices_crm/internal/adapter/http/dto/response"
	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MeasurementHandler handles room measurements under a job.
type MeasurementHandler struct {
	usecase usecase.IMeasurementUseCase
	log     *logrus.Entry
}

func NewMeasurementHandler(uc usecase.IMeasurementUseCase) *MeasurementHandler {
	return &MeasurementHandler{usecase: uc, log: logger.For("measurement", "handler")}
}

// AddMeasurement godoc
// @Summary Record a room measurement
// @Tags Measurements
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body request.MeasurementRequest true "Measurement"
// @Success 201 {object} response.MeasurementResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /jobs/{id}/measurements [post]
func (h *MeasurementHandler) AddMeasurement(c *gin.Context) {
	var payload request.MeasurementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	m, err := h.usecase.AddMeasurement(c.Request.Context(), c.Param("id"), payload.ToRaw())
	if err != nil {
		logger.LogError(h.log, "AddMeasurement", gin.H{"job_id": c.Param("id"), "room_name": payload.RoomName}, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMeasurement(m))
}

// ListMeasurements godoc
// @Summary List a job's measurements
// @Tags Measurements
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {array} response.MeasurementResponse
// @Router /jobs/{id}/measurements [get]
func (h *MeasurementHandler) ListMeasurements(c *gin.Context) {
	ms, err := h.usecase.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMeasurements(ms))
}

// DeleteMeasurement godoc
// @Summary Delete a measurement
// @Tags Measurements
// @Param id path string true "Job ID"
// @Param measurement_id path string true "Measurement ID"
// @Success 204
// @Failure 409 {object} pkg.HTTPError
// @Router /jobs/{id}/measurements/{measurement_id} [delete]
func (h *MeasurementHandler) DeleteMeasurement(c *gin.Context) {
	jobID, measurementID := c.Param("id"), c.Param("measurement_id")
	if err := h.usecase.DeleteMeasurement(c.Request.Context(), jobID, measurementID); err != nil {
		logger.LogError(h.log, "DeleteMeasurement", gin.H{"job_id": jobID, "measurement_id": measurementID}, err)
		abortWith(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
